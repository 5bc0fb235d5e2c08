package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BounceVelocity applies the paddle bounce law. Horizontal speed grows
// linearly with the ball's offset from the paddle center, reaching maxSpeed
// at the paddle edges; vertical speed is whatever keeps the total at
// maxSpeed, always upward.
//
// |vx| is capped at sqrt(maxSpeed² - minVY²) first, so the radicand never
// drops below minVY² and vy is never zero or NaN. The cap is tighter than
// maxSpeed on purpose: hits within a fraction of a pixel of the paddle edge
// saturate slightly early instead of leaving horizontally.
func BounceVelocity(ball Ball, paddle core.RectF, maxSpeed, minVY float64) (vx, vy float64) {
	if paddle.W <= 0 {
		return 0, -maxSpeed
	}

	offset := ball.CenterX() - paddle.CenterX()
	vx = 2 * maxSpeed / paddle.W * offset

	limit := maxHorizontal(maxSpeed, minVY)
	vx = core.ClampF(vx, -limit, limit)

	vy = -math.Sqrt(maxSpeed*maxSpeed - vx*vx)
	return vx, vy
}

// maxHorizontal is the largest |vx| a bounce may produce.
func maxHorizontal(maxSpeed, minVY float64) float64 {
	minVY = core.ClampF(minVY, 0, maxSpeed)
	return math.Sqrt(maxSpeed*maxSpeed - minVY*minVY)
}

// HitAxis is the velocity component a brick hit reflects.
type HitAxis int

const (
	HitVertical HitAxis = iota // top or bottom face: flip VY
	HitSide                    // left or right face: flip VX
)

// ClassifyBrickHit decides which face of the brick an overlapping ball hit.
//
// Canonical edge rule: the ball came in through the right face when its left
// edge lies within [brick.Left, brick.Right) and its right edge is past the
// brick's right edge; mirrored for the left face. Anything else, including a
// ball wider than the brick, is a vertical hit.
func ClassifyBrickHit(ball, brick core.RectF) HitAxis {
	fromRight := brick.X <= ball.X && ball.X < brick.Right() && ball.Right() > brick.Right()
	fromLeft := ball.X < brick.X && brick.X < ball.Right() && ball.Right() <= brick.Right()

	if fromRight || fromLeft {
		return HitSide
	}
	return HitVertical
}

// reflect flips the velocity component for the given axis.
func (b *Ball) reflect(axis HitAxis) {
	switch axis {
	case HitSide:
		b.VX = -b.VX
	case HitVertical:
		b.VY = -b.VY
	}
}

// bounceBorders reflects the ball off the side walls and the ceiling.
// The ceiling is the brick top padding, not row zero.
func bounceBorders(b *Ball, fieldW, ceiling float64) {
	if b.X < 0 {
		b.VX = -b.VX
	}
	if b.Y < ceiling {
		b.VY = -b.VY
	}
	if b.X+b.W >= fieldW {
		b.VX = -b.VX
	}
}
