package engine

import (
	"testing"

	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/vmath"
)

// newTestEngine returns a default engine with a fixed seed
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(DefaultConfig(), WithRand(vmath.NewFastRand(1)))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	e.Events().Clear()
	return e
}

// parkBall freezes the ball at (x, y) so frames advance without contacts
func parkBall(e *Engine, x, y float64) {
	e.ball.X, e.ball.Y = x, y
	e.ball.VX, e.ball.VY = 0, 0
}

// countEvents drains the queue and tallies by type
func countEvents(e *Engine) map[event.EventType]int {
	counts := make(map[event.EventType]int)
	for _, ev := range e.Events().Consume() {
		counts[ev.Type]++
	}
	return counts
}
