package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Ball is the ball in play-field pixels.
type Ball struct {
	X, Y   float64 // top-left corner
	W, H   float64
	VX, VY float64 // displacement per tick
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// CenterX returns the horizontal center of the ball.
func (b Ball) CenterX() float64 {
	return b.X + b.W/2
}

// Brick is one cell of the grid. Rect never changes after layout; Active
// only ever goes from true to false.
type Brick struct {
	Rect   core.Rect
	Active bool
}

// Outcome records how a finished game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// Phase is the coarse session state as seen by the host and renderer.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseDelaying
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDelaying:
		return "delaying"
	case PhaseGameOver:
		return "gameover"
	default:
		return "playing"
	}
}

// State is the whole mutable session. The engine is its only writer; the
// renderer and host read it between ticks.
type State struct {
	Params Params

	Running  bool
	GameOver bool
	Outcome  Outcome
	Lives    int

	Ball   Ball
	Paddle core.RectF
	Bricks []Brick

	// Delaying freezes ball and bricks after a life is lost until DelayMS
	// have passed since DelayStart.
	Delaying   bool
	DelayStart uint64

	Tick uint64 // non-terminal ticks simulated
}

// NewState creates a state initialized for a fresh game.
func NewState(p Params) *State {
	s := &State{Params: p}
	s.Initialize()
	return s
}

// Initialize resets every field to the start-of-game configuration.
func (s *State) Initialize() {
	p := s.Params

	s.Running = true
	s.GameOver = false
	s.Outcome = OutcomeNone
	s.Lives = p.Lives
	s.Delaying = false
	s.DelayStart = 0
	s.Tick = 0

	s.Ball = Ball{
		X:  float64(p.FieldW / 2),
		Y:  float64(p.FieldH / 2),
		W:  p.BallSize,
		H:  p.BallSize,
		VX: p.StartVX,
		VY: p.StartVY,
	}

	s.Paddle = core.NewRectF(
		float64(p.PaddleStartX),
		float64(p.PaddleY()),
		float64(p.PaddleW),
		float64(p.PaddleH),
	)

	s.Bricks = layoutBricks(p)
}

// layoutBricks places the grid row-major: index i sits at row i/cols,
// column i%cols.
func layoutBricks(p Params) []Brick {
	w := p.BrickWidth()
	bricks := make([]Brick, p.NumBricks())
	for i := range bricks {
		row := i / p.BrickCols
		col := i % p.BrickCols
		bricks[i] = Brick{
			Rect: core.NewRect(
				p.BrickLeftPad+col*(w+p.BrickPad),
				p.BrickTopPad+row*(p.BrickHeight+p.BrickPad),
				w,
				p.BrickHeight,
			),
			Active: true,
		}
	}
	return bricks
}

// ActiveBricks returns the number of bricks still standing.
func (s *State) ActiveBricks() int {
	n := 0
	for _, b := range s.Bricks {
		if b.Active {
			n++
		}
	}
	return n
}

// BricksDestroyed returns how many bricks have been knocked out.
func (s *State) BricksDestroyed() int {
	return len(s.Bricks) - s.ActiveBricks()
}

// Phase reports the coarse state for display.
func (s *State) Phase() Phase {
	switch {
	case s.GameOver:
		return PhaseGameOver
	case s.Delaying:
		return PhaseDelaying
	default:
		return PhasePlaying
	}
}

func (s *State) noBricksRemaining() bool {
	for _, b := range s.Bricks {
		if b.Active {
			return false
		}
	}
	return true
}
