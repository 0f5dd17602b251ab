package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
)

// SoundManager plays rally cues through a single speaker mixer
// Every method is safe to call before Initialize or after Cleanup; playback is then skipped
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	scoreCtrl   *beep.Ctrl
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager, nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	sr := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.scoreCtrl = nil

	// beep has no speaker close; an empty mixer leaves no artifacts
	sm.initialized = false
}

// SetMuted toggles playback without releasing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play starts a cue
// Paddle, wall and match cues overlap freely; a new score cue cuts off the previous one
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if st == SoundScore {
		if sm.scoreCtrl != nil {
			// A nil streamer makes the mixer drop the old control on its next pass
			sm.scoreCtrl.Streamer = nil
		}
		sm.scoreCtrl = &beep.Ctrl{Streamer: streamer}
		sm.mixer.Add(sm.scoreCtrl)
		return
	}
	sm.mixer.Add(streamer)
}

// HandleEvent maps rally events to cues
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPaddleHit:
		sm.Play(SoundPaddle)
	case event.EventWallHit:
		sm.Play(SoundWall)
	case event.EventScore:
		sm.Play(SoundScore)
	case event.EventMatchOver:
		sm.Play(SoundMatch)
	}
}

// EventTypes returns the events that trigger a cue
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPaddleHit,
		event.EventWallHit,
		event.EventScore,
		event.EventMatchOver,
	}
}
