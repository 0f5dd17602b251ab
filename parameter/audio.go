package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length, trades latency for underruns
	AudioBufferDuration = 100 * time.Millisecond
)

// Paddle Hit Sound
const (
	PaddleSoundDuration = 70 * time.Millisecond
	PaddleSoundAttack   = 3 * time.Millisecond
	PaddleSoundRelease  = 40 * time.Millisecond
)

// Wall Bounce Sound
const (
	WallSoundDuration = 50 * time.Millisecond
	WallSoundAttack   = 2 * time.Millisecond
	WallSoundRelease  = 30 * time.Millisecond
)

// Score Sound
const (
	ScoreSoundNote1Duration = 120 * time.Millisecond
	ScoreSoundNote2Duration = 260 * time.Millisecond
	ScoreSoundAttack        = 5 * time.Millisecond
	ScoreSoundNote1Release  = 60 * time.Millisecond
	ScoreSoundNote2Release  = 200 * time.Millisecond
)

// Match Over Sound
const (
	MatchSoundDuration           = 700 * time.Millisecond
	MatchSoundAttack             = 5 * time.Millisecond
	MatchSoundFundamentalRelease = 650 * time.Millisecond
	MatchSoundOvertoneRelease    = 250 * time.Millisecond
)
