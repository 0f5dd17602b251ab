package engine

import (
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/vmath"
)

// BallState is the drawable part of the ball
type BallState struct {
	X, Y          float64
	Width, Height float64
	VX, VY        float64
	Speed         float64
}

// Snapshot is a value copy of everything a renderer or HUD reads
type Snapshot struct {
	Frame         int64
	Width, Height int

	Ball     BallState
	Player   vmath.Rect
	Opponent vmath.Rect

	PlayerScore   int
	OpponentScore int
	TargetScore   int
	Cooldown      int

	GameOver bool
	Winner   physics.Side
}

// Snapshot captures the current frame
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Frame:  e.frame,
		Width:  e.width,
		Height: e.height,
		Ball: BallState{
			X:      e.ball.X,
			Y:      e.ball.Y,
			Width:  e.ball.Width,
			Height: e.ball.Height,
			VX:     e.ball.VX,
			VY:     e.ball.VY,
			Speed:  e.ball.Speed,
		},
		Player:        e.player.Rect(),
		Opponent:      e.opponent.Rect(),
		PlayerScore:   e.playerScore,
		OpponentScore: e.opponentScore,
		TargetScore:   e.targetScore,
		Cooldown:      e.cooldown,
		GameOver:      e.IsGameOver(),
		Winner:        e.Winner(),
	}
}
