package event

// EventType represents the type of game event
type EventType int

const (
	// EventWallHit fires when the ball starts touching the top or bottom boundary
	// Trigger: Engine.AdvanceFrame, rising edge of wall contact
	// Consumer: audio | Payload: nil
	EventWallHit EventType = iota + 1

	// EventPaddleHit fires when the ball starts touching a paddle
	// Trigger: Engine.AdvanceFrame, rising edge of paddle contact
	// Consumer: audio | Payload: *PaddleHitPayload
	EventPaddleHit

	// EventScore fires once per point
	// Trigger: ball crossing the left or right boundary
	// Consumer: audio, HUD | Payload: *ScorePayload
	EventScore

	// EventMatchOver fires once when a score reaches the target
	// Trigger: scoring frame that ends the match
	// Consumer: driver menu | Payload: *MatchOverPayload
	EventMatchOver

	// EventReplay fires after the match state has been reset for a new match
	// Trigger: Engine.RequestReplay
	// Consumer: HUD | Payload: *ReplayPayload
	EventReplay
)

var typeNames = map[EventType]string{
	EventWallHit:   "WallHit",
	EventPaddleHit: "PaddleHit",
	EventScore:     "Score",
	EventMatchOver: "MatchOver",
	EventReplay:    "Replay",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single notification produced during a frame
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
