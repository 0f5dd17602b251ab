package parameter

// Playfield
const (
	// PlayfieldWidth is the logical arena width in simulation units
	PlayfieldWidth = 800

	// PlayfieldHeight is the logical arena height in simulation units
	PlayfieldHeight = 600
)

// Paddles
const (
	PaddleWidth  = 10
	PaddleHeight = 100

	// PaddleSpeed is the per-frame vertical travel for both manual and tracked movement
	PaddleSpeed = 7

	// PaddleMargin is the gap between a paddle and its side wall
	PaddleMargin = 10

	// TrackDeadzone is the vertical tolerance within which the AI paddle holds still
	TrackDeadzone = 6.0
)

// Ball body
const (
	BallWidth  = 12.0
	BallHeight = 12.0
)
