package parameter

import "time"

// Rally pacing
const (
	// SpeedRampInterval is the number of frames between time-based speed ramps (~3s at 60 FPS)
	SpeedRampInterval = 180

	// SpeedRampFactor multiplies ball speed every SpeedRampInterval frames
	SpeedRampFactor = 1.05

	// ResetCooldownFrames suppresses paddle collision checks after a serve
	ResetCooldownFrames = 10

	// ServeAngle bounds the random serve angle after a point (radians)
	ServeAngle = 0.3
)

// Match
const (
	// DefaultTargetScore is the points needed to win a fresh match
	DefaultTargetScore = 5

	// DefaultBestOf is preselected in the replay menu
	DefaultBestOf = 5
)

// Replay menu choices offered after game over
var BestOfChoices = []int{3, 5, 7}

// Loop timing
const (
	// FrameUpdateInterval is the fixed simulation tick (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MenuPollInterval paces the game-over screen
	MenuPollInterval = 33 * time.Millisecond

	// IntentHoldDuration keeps a pressed direction active; terminals report no key release
	IntentHoldDuration = 120 * time.Millisecond
)
