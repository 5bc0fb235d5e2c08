package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Engine advances a State by one fixed tick at a time, reading the
// constants from the state's own Params. It is not safe for concurrent use;
// the host calls Update from a single loop.
type Engine struct {
	clock core.Clock
}

// NewEngine creates an engine that times the respawn delay with clock.
// A nil clock falls back to a SystemClock.
func NewEngine(clock core.Clock) *Engine {
	if clock == nil {
		clock = core.NewSystemClock()
	}
	return &Engine{clock: clock}
}

// Update advances s by one tick given the pointer position inputX in field
// pixels.
func (e *Engine) Update(s *State, inputX float64) {
	p := s.Params

	// Terminal states leave everything but the flags untouched.
	if s.GameOver {
		return
	}
	if s.Lives <= 0 {
		s.GameOver = true
		s.Outcome = OutcomeLose
		return
	}
	if s.noBricksRemaining() {
		s.GameOver = true
		s.Outcome = OutcomeWin
		return
	}

	s.Tick++

	// The paddle tracks the pointer even while delaying.
	s.Paddle.X = inputX - s.Paddle.W/2

	if s.Delaying {
		if e.clock.NowMillis()-s.DelayStart < p.DelayMS {
			return
		}
		s.Delaying = false
	}

	ball := &s.Ball
	ballRect := ball.Rect()

	if ballRect.Intersects(s.Paddle) {
		ball.VX, ball.VY = BounceVelocity(*ball, s.Paddle, p.MaxSpeed, p.MinBounceVY)
	}

	// Every overlapping brick breaks and reflects independently; two
	// reflections on the same axis cancel out.
	for i := range s.Bricks {
		brick := &s.Bricks[i]
		if !brick.Active {
			continue
		}
		brickRect := brick.Rect.Float()
		if !ballRect.Intersects(brickRect) {
			continue
		}

		brick.Active = false
		ball.reflect(ClassifyBrickHit(ballRect, brickRect))

		if s.noBricksRemaining() {
			s.GameOver = true
			s.Outcome = OutcomeWin
			return
		}
	}

	bounceBorders(ball, float64(p.FieldW), float64(p.BrickTopPad))

	if ball.Y+ball.H >= float64(p.FieldH) {
		e.loseLife(s)
	}

	ball.X += ball.VX
	ball.Y += ball.VY
}

// loseLife takes a life, starts the respawn delay and puts the ball back
// near the center. Game over is detected at the start of the next tick.
func (e *Engine) loseLife(s *State) {
	p := s.Params

	s.Lives--
	s.Delaying = true
	s.DelayStart = e.clock.NowMillis()

	s.Ball.X = float64(p.FieldW / 2)
	s.Ball.Y = float64(p.FieldH/2) - p.RespawnYOffset
	s.Ball.VX = p.RespawnVX
	s.Ball.VY = p.RespawnVY
}
