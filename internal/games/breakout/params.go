// Package breakout implements a single-screen brick breaker: a pointer-driven
// paddle, a fixed brick grid, three lives and a win/lose end state.
//
// The simulation runs in play-field pixels. State holds everything that
// changes, Engine.Update advances it by one fixed tick, and Game adapts the
// pair to the platform's registry.Game interface.
package breakout

import "sort"

// Params is the table of constants for one build variant of the game.
// Values are fixed at compile time; nothing here is read from user config.
type Params struct {
	Name  string
	Title string

	// Play field in pixels.
	FieldW int
	FieldH int

	PaddleW         int
	PaddleH         int
	PaddleBottomPad int
	PaddleStartX    int

	BallSize float64
	MaxSpeed float64

	// Launch velocity at game start.
	StartVX float64
	StartVY float64

	// Velocity after a life is lost. Not normalised to MaxSpeed.
	RespawnVX      float64
	RespawnVY      float64
	RespawnYOffset float64

	BrickRows    int
	BrickCols    int
	BrickLeftPad int
	BrickTopPad  int // also the ceiling for the ball
	BrickPad     int
	BrickHeight  int

	DelayMS uint64
	Lives   int

	// MinBounceVY bounds how flat a paddle bounce may get. It keeps the
	// bounce-law radicand positive and the rebound strictly upward.
	MinBounceVY float64
}

// BrickWidth returns the width of one grid cell, truncated to whole pixels.
func (p Params) BrickWidth() int {
	if p.BrickCols <= 0 {
		return 0
	}
	available := p.FieldW - 2*p.BrickLeftPad - p.BrickCols*p.BrickPad + p.BrickPad
	return available / p.BrickCols
}

// NumBricks returns the size of the brick grid.
func (p Params) NumBricks() int {
	return p.BrickRows * p.BrickCols
}

// PaddleY returns the fixed top edge of the paddle.
func (p Params) PaddleY() int {
	return p.FieldH - p.PaddleBottomPad - p.PaddleH
}

// Classic is the reference 480x320 layout with a 4x5 grid.
var Classic = Params{
	Name:  "classic",
	Title: "Breakout",

	FieldW: 480,
	FieldH: 320,

	PaddleW:         80,
	PaddleH:         10,
	PaddleBottomPad: 10,
	PaddleStartX:    70,

	BallSize: 10,
	MaxSpeed: 6,

	StartVX: 3,
	StartVY: 3,

	RespawnVX:      3,
	RespawnVY:      4,
	RespawnYOffset: 15,

	BrickRows:    4,
	BrickCols:    5,
	BrickLeftPad: 4,
	BrickTopPad:  15,
	BrickPad:     4,
	BrickHeight:  15,

	DelayMS: 2000,
	Lives:   3,

	MinBounceVY: 0.5,
}

// Dense is the 5x7 grid variant; narrower bricks, same speeds and timings.
var Dense = func() Params {
	p := Classic
	p.Name = "dense"
	p.Title = "Breakout (Dense)"
	p.BrickRows = 5
	p.BrickCols = 7
	return p
}()

var variants = map[string]Params{
	Classic.Name: Classic,
	Dense.Name:   Dense,
}

// Variant looks up a built-in variant by name.
func Variant(name string) (Params, bool) {
	p, ok := variants[name]
	return p, ok
}

// Variants returns all built-in variants sorted by name.
func Variants() []Params {
	out := make([]Params, 0, len(variants))
	for _, p := range variants {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
