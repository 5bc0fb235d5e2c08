package breakout

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func runAutopilot(seed int64, ticks int) *State {
	clock := &core.ManualClock{}
	s := NewState(Classic)
	e := NewEngine(clock)
	pilot := NewAutopilot(s, seed, 0, DefaultAutopilotSpread)

	for range ticks {
		if s.GameOver {
			break
		}
		clock.Advance(16 * time.Millisecond)
		e.Update(s, pilot.Aim(s))
	}
	return s
}

func TestAutopilotDeterministic(t *testing.T) {
	a := runAutopilot(7, 5000).Snapshot()
	b := runAutopilot(7, 5000).Snapshot()

	if a.Hash() != b.Hash() {
		t.Error("same seed produced different runs")
	}
}

func TestAutopilotStaysInField(t *testing.T) {
	s := NewState(Classic)
	pilot := NewAutopilot(s, 1, 1000, 0)

	s.Ball.X = -500
	if got := pilot.Aim(s); got != 0 {
		t.Errorf("Aim() = %v, expected clamp to 0", got)
	}

	s.Ball.X = 5000
	if got := pilot.Aim(s); got != 480 {
		t.Errorf("Aim() = %v, expected clamp to 480", got)
	}
}

func TestAutopilotSpeedCap(t *testing.T) {
	s := NewState(Classic)
	pilot := NewAutopilot(s, 1, 5, 0)
	start := s.Paddle.CenterX()

	s.Ball.X = 400
	s.Ball.VY = 3
	if got := pilot.Aim(s); got != start+5 {
		t.Errorf("Aim() = %v, expected %v", got, start+5)
	}
}

func TestAutopilotHoldsWhileRising(t *testing.T) {
	s := NewState(Classic)
	pilot := NewAutopilot(s, 1, 5, 0)
	start := s.Paddle.CenterX()

	s.Ball.X = 400
	s.Ball.VY = -3
	if got := pilot.Aim(s); got != start {
		t.Errorf("Aim() = %v, expected the pointer to hold at %v", got, start)
	}
}
