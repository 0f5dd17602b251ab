package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/status"
)

// IsGameOver reports whether either side reached the target score
func (e *Engine) IsGameOver() bool {
	return e.playerScore >= e.targetScore || e.opponentScore >= e.targetScore
}

// Winner returns the side that reached the target with a strict lead
// A tie at or above the target yields SideNone
func (e *Engine) Winner() physics.Side {
	if e.playerScore >= e.targetScore && e.playerScore > e.opponentScore {
		return physics.SidePlayer
	}
	if e.opponentScore >= e.targetScore && e.opponentScore > e.playerScore {
		return physics.SideOpponent
	}
	return physics.SideNone
}

// RequestReplay starts a new best-of-N match
// Even bestOf is bumped to the next odd value; target becomes ceil(bestOf/2)
// Resets scores, ball, cooldown, frame counter and edge detectors; paddles stay put
func (e *Engine) RequestReplay(bestOf int) error {
	if bestOf <= 0 {
		return fmt.Errorf("%w: best-of must be positive, got %d", ErrInvalidConfiguration, bestOf)
	}
	if bestOf%2 == 0 {
		// Even values are at most MaxInt-1, so the bump cannot overflow
		bestOf++
	}
	// ceil(bestOf/2) for odd bestOf, without the bestOf+1 overflow at MaxInt
	e.targetScore = bestOf/2 + 1
	e.playerScore = 0
	e.opponentScore = 0

	e.ball.ResetToOrigin()
	e.cooldown = e.cfg.Rally.CooldownFrames
	e.frame = 0

	e.lastWallHit = false
	e.lastPaddleHit = false
	e.matchOverSent = false
	e.rallyHits = 0
	e.longestRally = 0

	e.mMatches.Add(1)
	e.mPoints.Store(0)
	e.publishMetrics()

	e.emit(event.EventReplay, &event.ReplayPayload{BestOf: bestOf, TargetScore: e.targetScore})
	log.Printf("Restarted match: best_of=%d, target_score=%d", bestOf, e.targetScore)
	return nil
}

func (e *Engine) PlayerScore() int   { return e.playerScore }
func (e *Engine) OpponentScore() int { return e.opponentScore }
func (e *Engine) TargetScore() int   { return e.targetScore }

// Frame returns frames advanced since the match started
func (e *Engine) Frame() int64 { return e.frame }

// Cooldown returns frames left with paddle collisions suppressed
func (e *Engine) Cooldown() int { return e.cooldown }

// Events returns the queue the engine publishes notifications into
func (e *Engine) Events() *event.Queue { return e.events }

// Metrics returns the registry the engine publishes into
func (e *Engine) Metrics() *status.Registry { return e.metrics }

// Width and Height return the playfield size
func (e *Engine) Width() int  { return e.width }
func (e *Engine) Height() int { return e.height }

// Ball returns a copy of the ball state
func (e *Engine) Ball() physics.Ball { return *e.ball }

// Player returns a copy of the left paddle
func (e *Engine) Player() physics.Paddle { return *e.player }

// Opponent returns a copy of the right paddle
func (e *Engine) Opponent() physics.Paddle { return *e.opponent }
