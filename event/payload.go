package event

import "github.com/lixenwraith/vi-pong/physics"

// PaddleHitPayload names the paddle the ball bounced off
type PaddleHitPayload struct {
	Side physics.Side
}

// ScorePayload carries the scorer and the scoreline after the point
type ScorePayload struct {
	Scorer        physics.Side
	PlayerScore   int
	OpponentScore int
}

// MatchOverPayload carries the match result; Winner is SideNone only on a tie at target
type MatchOverPayload struct {
	Winner        physics.Side
	PlayerScore   int
	OpponentScore int
}

// ReplayPayload carries the normalized match length
type ReplayPayload struct {
	BestOf      int
	TargetScore int
}
