package physics

import (
	"time"

	"github.com/lixenwraith/vi-pong/vmath"
)

// Ball is the moving body, tracked by its float center
// Speed is authoritative: VX/VY are derived from it on bounce and launch only,
// so between those events hypot(VX, VY) may lag behind Speed
type Ball struct {
	X, Y          float64
	VX, VY        float64
	Speed         float64
	Width, Height float64

	originX, originY float64
	boundHeight      float64

	profile BallProfile
	rng     vmath.RandSource
}

// NewBall creates a ball centered at (x, y) with a random launch direction
// A nil rng falls back to a time-seeded FastRand
func NewBall(x, y, width, height float64, boundHeight int, profile BallProfile, rng vmath.RandSource) *Ball {
	if rng == nil {
		rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	b := &Ball{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		originX:     x,
		originY:     y,
		boundHeight: float64(boundHeight),
		profile:     profile,
		rng:         rng,
		Speed:       profile.BaseSpeed,
	}
	b.randomizeVelocity()
	return b
}

// Profile returns the tuning the ball was built with
func (b *Ball) Profile() BallProfile {
	return b.profile
}

func (b *Ball) randomizeVelocity() {
	angle := vmath.Uniform(b.rng, -b.profile.LaunchAngle, b.profile.LaunchAngle)
	dir := vmath.RandomSign(b.rng)
	b.Launch(dir, angle)
}

// Launch derives the velocity from the current Speed
// dir selects horizontal travel (+1 right, -1 left), angle tilts it in radians
func (b *Ball) Launch(dir, angle float64) {
	b.VX, b.VY = vmath.Polar(b.Speed, angle, dir)
}

// Accelerate scales Speed only; the velocity picks it up on the next bounce
func (b *Ball) Accelerate(factor float64) {
	b.Speed *= factor
}

// Move integrates one frame and resolves the top and bottom boundaries
// Returns ContactWall on a boundary bounce, ContactNone otherwise
func (b *Ball) Move() Contact {
	b.X += b.VX
	b.Y += b.VY

	if b.Top() <= 0 {
		b.Y = b.Height / 2
		b.VY = -b.VY
		return ContactWall
	}
	if b.Bottom() >= b.boundHeight {
		b.Y = b.boundHeight - b.Height/2
		b.VY = -b.VY
		return ContactWall
	}
	return ContactNone
}

// Reset recenters the ball at (cx, cy), restores base speed and picks a new direction
func (b *Ball) Reset(cx, cy float64) {
	b.X = cx
	b.Y = cy
	b.Speed = b.profile.BaseSpeed
	b.randomizeVelocity()
}

// ResetToOrigin resets to the spawn position
func (b *Ball) ResetToOrigin() {
	b.Reset(b.originX, b.originY)
}

// Origin returns the spawn center
func (b *Ball) Origin() (x, y float64) {
	return b.originX, b.originY
}

// Rect returns the collision rectangle snapped to integer units
func (b *Ball) Rect() vmath.Rect {
	return vmath.RectFromCenter(b.X, b.Y, b.Width, b.Height)
}

func (b *Ball) Top() float64    { return b.Y - b.Height/2 }
func (b *Ball) Bottom() float64 { return b.Y + b.Height/2 }
func (b *Ball) Left() float64   { return b.X - b.Width/2 }
func (b *Ball) Right() float64  { return b.X + b.Width/2 }
