package breakout

import "math"

// Snapshot is a flat copy of the session, used for determinism checks and
// the headless run summary.
type Snapshot struct {
	Tick     uint64
	Lives    int
	GameOver bool
	Outcome  string
	Delaying bool

	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64

	BricksRemaining int
	BrickActive     []bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

// Snapshot copies the state.
func (s *State) Snapshot() Snapshot {
	active := make([]bool, len(s.Bricks))
	for i, b := range s.Bricks {
		active[i] = b.Active
	}

	return Snapshot{
		Tick:     s.Tick,
		Lives:    s.Lives,
		GameOver: s.GameOver,
		Outcome:  s.Outcome.String(),
		Delaying: s.Delaying,

		PaddleX: s.Paddle.X,
		BallX:   s.Ball.X,
		BallY:   s.Ball.Y,
		BallVX:  s.Ball.VX,
		BallVY:  s.Ball.VY,

		BricksRemaining: s.ActiveBricks(),
		BrickActive:     active,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + boolBits(snap.GameOver)
	h = h*31 + boolBits(snap.Delaying)

	for _, f := range []float64{snap.PaddleX, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY} {
		h = h*31 + math.Float64bits(f)
	}

	for _, a := range snap.BrickActive {
		h = h*31 + boolBits(a)
	}

	for _, r := range snap.Outcome {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
