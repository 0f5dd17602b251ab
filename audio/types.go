package audio

import (
	"errors"
)

// SoundType identifies a cue played in response to rally events
type SoundType int

const (
	SoundPaddle SoundType = iota // Ball returned by a paddle
	SoundWall                    // Ball bounced off top or bottom
	SoundScore                   // Point scored
	SoundMatch                   // Match decided
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundPaddle: "paddle",
	SoundWall:   "wall",
	SoundScore:  "score",
	SoundMatch:  "match",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a config key to its SoundType
func ParseSoundType(name string) (SoundType, error) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), nil
		}
	}
	return 0, ErrUnknownSound
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrUnknownSound  = errors.New("unknown sound type")
)
