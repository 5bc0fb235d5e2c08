package breakout

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// farInput parks the paddle at x=360..440, clear of the test scenarios.
const farInput = 400.0

func newTestSession() (*State, *Engine, *core.ManualClock) {
	clock := &core.ManualClock{}
	return NewState(Classic), NewEngine(clock), clock
}

func TestUpdateOpenField(t *testing.T) {
	s, e, _ := newTestSession()
	s.Ball.X, s.Ball.Y = 100, 100

	e.Update(s, farInput)

	if s.Ball.X != 103 || s.Ball.Y != 103 {
		t.Errorf("ball = (%v, %v), expected (103, 103)", s.Ball.X, s.Ball.Y)
	}
	if s.Ball.VX != 3 || s.Ball.VY != 3 {
		t.Errorf("velocity = (%v, %v), expected (3, 3)", s.Ball.VX, s.Ball.VY)
	}
	if s.GameOver {
		t.Error("game should not be over")
	}
	if s.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", s.Tick)
	}
	if s.Paddle.X != farInput-40 {
		t.Errorf("Paddle.X = %v, expected %v", s.Paddle.X, farInput-40)
	}
}

func TestPaddleFollowsPointerUnclamped(t *testing.T) {
	s, e, _ := newTestSession()

	e.Update(s, -100)
	if s.Paddle.X != -140 {
		t.Errorf("Paddle.X = %v, expected -140", s.Paddle.X)
	}

	e.Update(s, 600)
	if s.Paddle.X != 560 {
		t.Errorf("Paddle.X = %v, expected 560", s.Paddle.X)
	}
}

func TestPaddleBounceConservesSpeed(t *testing.T) {
	// Paddle at x=160..240 for inputX=200.
	centers := []float64{156, 160, 175, 190, 200, 210, 225, 240, 244}

	for _, cx := range centers {
		s, e, _ := newTestSession()
		s.Ball.X, s.Ball.Y = cx-5, 295
		s.Ball.VX, s.Ball.VY = 2, 5

		e.Update(s, 200)

		speed := s.Ball.VX*s.Ball.VX + s.Ball.VY*s.Ball.VY
		if math.Abs(speed-36) > 1e-6 {
			t.Errorf("center %v: speed² = %v, expected 36", cx, speed)
		}
		if s.Ball.VY >= 0 {
			t.Errorf("center %v: VY = %v, expected negative", cx, s.Ball.VY)
		}
		if s.Lives != 3 {
			t.Errorf("center %v: lost a life on a paddle bounce", cx)
		}
	}
}

func TestPaddleBounceCenterGoesStraightUp(t *testing.T) {
	s, e, _ := newTestSession()
	s.Ball.X, s.Ball.Y = 195, 295

	e.Update(s, 200)

	if s.Ball.VX != 0 || s.Ball.VY != -6 {
		t.Errorf("velocity = (%v, %v), expected (0, -6)", s.Ball.VX, s.Ball.VY)
	}
	if s.Ball.Y != 289 {
		t.Errorf("Ball.Y = %v, expected 289", s.Ball.Y)
	}
}

func TestBrickSideHit(t *testing.T) {
	s, e, _ := newTestSession()
	// Brick 6 spans x=99..190, y=34..49; clear its left neighbour.
	s.Bricks[5].Active = false
	s.Ball.X, s.Ball.Y = 92, 38
	s.Ball.VX, s.Ball.VY = 3, 1

	e.Update(s, farInput)

	if s.Bricks[6].Active {
		t.Error("brick 6 should be destroyed")
	}
	if s.Ball.VX != -3 || s.Ball.VY != 1 {
		t.Errorf("velocity = (%v, %v), expected (-3, 1)", s.Ball.VX, s.Ball.VY)
	}
	if s.Ball.X != 89 {
		t.Errorf("Ball.X = %v, expected 89", s.Ball.X)
	}
}

func TestBrickVerticalHit(t *testing.T) {
	s, e, _ := newTestSession()
	// Brick 16 spans x=99..190, y=72..87.
	s.Ball.X, s.Ball.Y = 140, 80
	s.Ball.VX, s.Ball.VY = 3, -3

	e.Update(s, farInput)

	if s.Bricks[16].Active {
		t.Error("brick 16 should be destroyed")
	}
	if s.Ball.VX != 3 || s.Ball.VY != 3 {
		t.Errorf("velocity = (%v, %v), expected (3, 3)", s.Ball.VX, s.Ball.VY)
	}
	if got := s.ActiveBricks(); got != 19 {
		t.Errorf("ActiveBricks() = %d, expected 19", got)
	}
}

func TestSimultaneousHitsCancel(t *testing.T) {
	s, e, _ := newTestSession()
	// Straddles the gap between bricks 5 and 6: right-face hit on 5,
	// left-face hit on 6.
	s.Ball.X, s.Ball.Y = 92, 38
	s.Ball.VX, s.Ball.VY = 3, 1

	e.Update(s, farInput)

	if s.Bricks[5].Active || s.Bricks[6].Active {
		t.Error("both overlapped bricks should be destroyed")
	}
	if s.Ball.VX != 3 {
		t.Errorf("VX = %v, expected the two side flips to cancel", s.Ball.VX)
	}
}

func TestWinSameTick(t *testing.T) {
	s, e, _ := newTestSession()
	for i := 1; i < len(s.Bricks); i++ {
		s.Bricks[i].Active = false
	}
	// Brick 0 spans x=4..95, y=15..30.
	s.Ball.X, s.Ball.Y = 40, 25
	s.Ball.VX, s.Ball.VY = 3, -3

	e.Update(s, farInput)

	if !s.GameOver || s.Outcome != OutcomeWin {
		t.Fatalf("GameOver=%v Outcome=%v, expected win", s.GameOver, s.Outcome)
	}
	if s.Ball.X != 40 || s.Ball.Y != 25 {
		t.Errorf("ball moved on the winning tick: (%v, %v)", s.Ball.X, s.Ball.Y)
	}
	if s.Ball.VY != 3 {
		t.Errorf("VY = %v, expected the winning hit to reflect", s.Ball.VY)
	}
	if s.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", s.Lives)
	}
}

func TestLifeLossSequence(t *testing.T) {
	s, e, clock := newTestSession()
	clock.Millis = 5000
	s.Ball.X, s.Ball.Y = 200, 311

	e.Update(s, farInput)

	if s.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", s.Lives)
	}
	if !s.Delaying || s.DelayStart != 5000 {
		t.Errorf("Delaying=%v DelayStart=%d, expected true/5000", s.Delaying, s.DelayStart)
	}
	if s.Ball.X != 243 || s.Ball.Y != 149 {
		t.Errorf("ball = (%v, %v), expected (243, 149)", s.Ball.X, s.Ball.Y)
	}
	if s.Ball.VX != 3 || s.Ball.VY != 4 {
		t.Errorf("velocity = (%v, %v), expected (3, 4)", s.Ball.VX, s.Ball.VY)
	}
	if s.GameOver {
		t.Error("game should not be over with lives left")
	}
}

func TestDelayFreezesBallNotPaddle(t *testing.T) {
	s, e, clock := newTestSession()
	clock.Millis = 5000
	s.Ball.X, s.Ball.Y = 200, 311
	e.Update(s, farInput)

	frozen := s.Snapshot()

	for i, input := range []float64{100, 250, 300} {
		clock.Advance(500 * time.Millisecond)
		if i == 2 {
			clock.Millis = 6999
		}
		e.Update(s, input)

		if s.Ball != (Ball{X: frozen.BallX, Y: frozen.BallY, W: 10, H: 10, VX: frozen.BallVX, VY: frozen.BallVY}) {
			t.Errorf("tick %d: ball moved during delay: %+v", i, s.Ball)
		}
		if s.Paddle.X != input-40 {
			t.Errorf("tick %d: Paddle.X = %v, expected %v", i, s.Paddle.X, input-40)
		}
		if !s.Delaying {
			t.Errorf("tick %d: delay ended early", i)
		}
	}

	clock.Millis = 7000
	e.Update(s, farInput)

	if s.Delaying {
		t.Error("delay should end after 2000ms")
	}
	if s.Ball.X != frozen.BallX+3 || s.Ball.Y != frozen.BallY+4 {
		t.Errorf("ball = (%v, %v), expected to resume moving", s.Ball.X, s.Ball.Y)
	}
}

func TestLastLifeEndsOnNextTick(t *testing.T) {
	s, e, _ := newTestSession()
	s.Lives = 1
	s.Ball.X, s.Ball.Y = 200, 311

	e.Update(s, farInput)

	if s.Lives != 0 {
		t.Fatalf("Lives = %d, expected 0", s.Lives)
	}
	if s.GameOver {
		t.Error("game over should be detected on the following tick")
	}

	before := s.Snapshot()
	e.Update(s, 100)

	if !s.GameOver || s.Outcome != OutcomeLose {
		t.Fatalf("GameOver=%v Outcome=%v, expected lose", s.GameOver, s.Outcome)
	}
	if s.Ball.X != before.BallX || s.Ball.Y != before.BallY || s.Paddle.X != before.PaddleX {
		t.Error("terminal tick should not move ball or paddle")
	}
	if s.Tick != before.Tick {
		t.Errorf("Tick = %d, expected %d", s.Tick, before.Tick)
	}
}

func TestTerminalStateIsFinal(t *testing.T) {
	s, e, clock := newTestSession()
	s.Lives = 0
	e.Update(s, farInput)

	want := s.Snapshot()
	for _, input := range []float64{0, 123, 480, -50} {
		clock.Advance(3 * time.Second)
		e.Update(s, input)

		got := s.Snapshot()
		if got.Hash() != want.Hash() {
			t.Fatalf("state changed after game over with input %v", input)
		}
	}
}

func TestCeilingIsBrickPadding(t *testing.T) {
	s, e, _ := newTestSession()
	for i := range Classic.BrickCols {
		s.Bricks[i].Active = false
	}
	s.Ball.X, s.Ball.Y = 200, 14
	s.Ball.VX, s.Ball.VY = 3, -3

	e.Update(s, farInput)

	if s.Ball.VY != 3 {
		t.Errorf("VY = %v, expected ceiling reflection", s.Ball.VY)
	}
	if s.Ball.X != 203 || s.Ball.Y != 17 {
		t.Errorf("ball = (%v, %v), expected (203, 17)", s.Ball.X, s.Ball.Y)
	}
}

func TestBricksNeverReactivate(t *testing.T) {
	clock := &core.ManualClock{}
	s := NewState(Classic)
	e := NewEngine(clock)

	prev := s.Snapshot().BrickActive
	for tick := 0; tick < 20000 && !s.GameOver; tick++ {
		clock.Advance(16 * time.Millisecond)
		e.Update(s, s.Ball.CenterX()+17)

		cur := s.Snapshot().BrickActive
		for i := range cur {
			if cur[i] && !prev[i] {
				t.Fatalf("tick %d: brick %d reactivated", tick, i)
			}
		}
		prev = cur

		if s.Lives < 0 {
			t.Fatalf("tick %d: Lives = %d", tick, s.Lives)
		}
		if math.IsNaN(s.Ball.VX) || math.IsNaN(s.Ball.VY) {
			t.Fatalf("tick %d: NaN velocity", tick)
		}
	}
}

func TestNilClockFallsBack(t *testing.T) {
	e := NewEngine(nil)
	if e.clock == nil {
		t.Error("NewEngine(nil) should install a clock")
	}
}

func TestLifeLossBoundary(t *testing.T) {
	tests := []struct {
		name      string
		y         float64
		wantLives int
	}{
		{"bottom edge at field height", 310, 2},
		{"bottom edge past field height", 311, 2},
		{"bottom edge just above", 309.9, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, e, _ := newTestSession()
			s.Ball.X, s.Ball.Y = 200, tc.y

			e.Update(s, farInput)

			if s.Lives != tc.wantLives {
				t.Errorf("Lives = %d, expected %d", s.Lives, tc.wantLives)
			}
			if lost := tc.wantLives < 3; s.Delaying != lost {
				t.Errorf("Delaying = %v, expected %v", s.Delaying, lost)
			}
			if tc.wantLives == 3 && s.Ball.Y != tc.y+3 {
				t.Errorf("Ball.Y = %v, expected %v", s.Ball.Y, tc.y+3)
			}
		})
	}
}
