package event

import (
	"testing"

	"github.com/lixenwraith/vi-pong/physics"
)

type recordingHandler struct {
	types []EventType
	seen  []GameEvent
}

func (h *recordingHandler) HandleEvent(ev GameEvent) { h.seen = append(h.seen, ev) }
func (h *recordingHandler) EventTypes() []EventType  { return h.types }

func TestRouterDispatchByType(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)

	sound := &recordingHandler{types: []EventType{EventWallHit, EventPaddleHit, EventScore}}
	hud := &recordingHandler{types: []EventType{EventScore}}
	r.Register(sound)
	r.Register(hud)

	q.Push(GameEvent{Type: EventWallHit})
	q.Push(GameEvent{Type: EventPaddleHit, Payload: &PaddleHitPayload{Side: physics.SidePlayer}})
	q.Push(GameEvent{Type: EventScore, Payload: &ScorePayload{Scorer: physics.SideOpponent, OpponentScore: 1}})

	if n := r.DispatchAll(); n != 3 {
		t.Errorf("Expected 3 dispatched events, got %d", n)
	}
	if len(sound.seen) != 3 {
		t.Errorf("Expected sound handler to see 3 events, got %d", len(sound.seen))
	}
	if len(hud.seen) != 1 {
		t.Fatalf("Expected hud handler to see 1 event, got %d", len(hud.seen))
	}

	p, ok := hud.seen[0].Payload.(*ScorePayload)
	if !ok {
		t.Fatalf("Expected *ScorePayload, got %T", hud.seen[0].Payload)
	}
	if p.Scorer != physics.SideOpponent || p.OpponentScore != 1 {
		t.Errorf("Unexpected payload %+v", p)
	}

	if n := r.DispatchAll(); n != 0 {
		t.Errorf("Expected drained queue, dispatched %d", n)
	}
}

func TestRouterHandlerFunc(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)

	var order []EventType
	r.Register(HandlerFunc{
		Types: []EventType{EventScore, EventMatchOver},
		Fn:    func(ev GameEvent) { order = append(order, ev.Type) },
	})

	if r.HandlerCount(EventScore) != 1 || r.HandlerCount(EventWallHit) != 0 {
		t.Error("Unexpected handler registration counts")
	}

	q.Push(GameEvent{Type: EventScore})
	q.Push(GameEvent{Type: EventWallHit})
	q.Push(GameEvent{Type: EventMatchOver})
	r.DispatchAll()

	if len(order) != 2 || order[0] != EventScore || order[1] != EventMatchOver {
		t.Errorf("Expected [Score MatchOver], got %v", order)
	}
}
