package physics

import (
	"math"

	"github.com/lixenwraith/vi-pong/vmath"
)

// CheckCollision resolves at most one paddle contact for the current frame
//
// Order:
//  1. Rect overlap with player, then opponent
//  2. Swept X-axis test against the paddle the ball is travelling toward
//     (right: opponent, left: player), gated by vertical overlap at the current position
//
// On contact the ball is pushed just outside the paddle face and bounced
func (b *Ball) CheckCollision(player, opponent *Paddle) Contact {
	rect := b.Rect()

	if rect.Overlaps(player.Rect()) {
		if b.VX < 0 {
			b.X = float64(player.X+player.Width) + b.Width/2
		} else {
			b.X = float64(player.X) - b.Width/2
		}
		b.bounceOffPaddle(player)
		return ContactPlayer
	}

	if rect.Overlaps(opponent.Rect()) {
		if b.VX > 0 {
			b.X = float64(opponent.X) - b.Width/2
		} else {
			b.X = float64(opponent.X+opponent.Width) + b.Width/2
		}
		b.bounceOffPaddle(opponent)
		return ContactOpponent
	}

	// Tunneling guard: a fast ball can jump a thin paddle between frames
	prevX := b.X - b.VX
	if b.VX > 0 {
		slabLeft := float64(opponent.X)
		if prevX < slabLeft && b.X >= slabLeft && b.spansPaddle(opponent) {
			b.X = slabLeft - b.Width/2
			b.bounceOffPaddle(opponent)
			return ContactOpponent
		}
	} else {
		slabRight := float64(player.X + player.Width)
		if prevX > slabRight && b.X <= slabRight && b.spansPaddle(player) {
			b.X = slabRight + b.Width/2
			b.bounceOffPaddle(player)
			return ContactPlayer
		}
	}

	return ContactNone
}

// spansPaddle reports vertical overlap between ball extent and paddle, edges inclusive
func (b *Ball) spansPaddle(p *Paddle) bool {
	return vmath.SpanOverlap(b.Top(), b.Bottom(), float64(p.Y), float64(p.Y+p.Height))
}

// bounceOffPaddle reverses horizontal travel and tilts the return by impact offset
// offset = (ballY - paddleCenter) / halfHeight in [-1, 1]; a dead-center hit
// yields +0 and is lifted to +MinVertical, so center returns drift downward
func (b *Ball) bounceOffPaddle(p *Paddle) {
	offset := b.ImpactOffset(p)

	b.Speed *= b.profile.Growth
	b.VX = -vmath.CopySign(b.Speed, b.VX)
	b.VY = offset * (b.Speed * b.profile.VerticalGain)
	if math.Abs(b.VY) < b.profile.MinVertical {
		b.VY = vmath.CopySign(b.profile.MinVertical, b.VY)
	}
}

// ImpactOffset returns the normalized hit position the bounce would use, without mutating
func (b *Ball) ImpactOffset(p *Paddle) float64 {
	return vmath.Clamp((b.Y-p.CenterY())/(float64(p.Height)/2), -1, 1)
}
