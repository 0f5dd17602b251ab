package physics

import (
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Paddle is a vertically movable rectangle, top-left anchored in integer units
type Paddle struct {
	X, Y          int
	Width, Height int
	Speed         int     // Travel per frame
	Deadzone      float64 // AutoTrack tolerance around the paddle center
}

// NewPaddle creates a paddle with the default tracking deadzone
func NewPaddle(x, y, width, height, speed int) *Paddle {
	return &Paddle{
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		Speed:    speed,
		Deadzone: parameter.TrackDeadzone,
	}
}

// Move shifts the paddle by dy (positive is down) and clamps it to [0, boundHeight-Height]
func (p *Paddle) Move(dy, boundHeight int) {
	p.Y = vmath.ClampInt(p.Y+dy, 0, boundHeight-p.Height)
}

// AutoTrack steps the paddle one Speed toward the ball center
// Holds still while the ball is within Deadzone of the paddle center
func (p *Paddle) AutoTrack(ball *Ball, boundHeight int) {
	center := p.CenterY()
	switch {
	case ball.Y < center-p.Deadzone:
		p.Move(-p.Speed, boundHeight)
	case ball.Y > center+p.Deadzone:
		p.Move(p.Speed, boundHeight)
	}
}

// CenterY returns the vertical midpoint
func (p *Paddle) CenterY() float64 {
	return float64(p.Y) + float64(p.Height)/2
}

// Rect returns the collision rectangle
func (p *Paddle) Rect() vmath.Rect {
	return vmath.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}
