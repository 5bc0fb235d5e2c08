package breakout

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Autopilot defaults.
const (
	DefaultAutopilotSpeed  = 9.0  // pointer pixels per tick
	DefaultAutopilotSpread = 30.0 // max aim offset from the ball center
)

// Autopilot drives the pointer for headless runs. It chases the ball with a
// capped speed and aims off-center by a random offset that is re-rolled
// after every upward bounce, so runs vary with the seed but repeat exactly
// for the same one.
type Autopilot struct {
	rng    *rand.Rand
	speed  float64
	spread float64

	pointer float64
	offset  float64
	rising  bool
}

// NewAutopilot creates an autopilot for a fresh state s.
func NewAutopilot(s *State, seed int64, speed, spread float64) *Autopilot {
	if speed <= 0 {
		speed = DefaultAutopilotSpeed
	}
	if spread < 0 {
		spread = DefaultAutopilotSpread
	}
	a := &Autopilot{
		rng:     rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness, not security
		speed:   speed,
		spread:  spread,
		pointer: s.Paddle.CenterX(),
	}
	a.roll()
	return a
}

// Aim returns the pointer position for the next tick.
func (a *Autopilot) Aim(s *State) float64 {
	rising := s.Ball.VY < 0
	if rising && !a.rising {
		a.roll()
	}
	a.rising = rising

	target := s.Ball.CenterX() + a.offset
	if !rising {
		diff := target - a.pointer
		if math.Abs(diff) > a.speed {
			diff = math.Copysign(a.speed, diff)
		}
		a.pointer += diff
	}

	a.pointer = core.ClampF(a.pointer, 0, float64(s.Params.FieldW))
	return a.pointer
}

func (a *Autopilot) roll() {
	a.offset = (a.rng.Float64()*2 - 1) * a.spread
}
