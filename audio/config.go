package audio

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "VI_PONG_AUDIO_ENABLED"
	EnvMasterVolume = "VI_PONG_MASTER_VOLUME"
	EnvSFXVolumes   = "VI_PONG_SFX_VOLUMES"
	EnvSampleRate   = "VI_PONG_SAMPLE_RATE"
)

// AudioConfig controls playback of the rally cues
type AudioConfig struct {
	Enabled bool
	// MasterVolume scales every cue, range [0, 1]
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.6,
		EffectVolumes: map[SoundType]float64{
			SoundPaddle: 1.0,
			SoundWall:   0.7,
			SoundScore:  1.0,
			SoundMatch:  0.8,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// volumeFor returns the final gain of a cue
func (c *AudioConfig) volumeFor(st SoundType) float64 {
	return c.EffectVolumes[st] * c.MasterVolume
}

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values are logged and ignored
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		} else {
			log.Printf("Ignoring %s=%q: %v", EnvAudioEnabled, enabled, err)
		}
	}

	// Master volume is given in percent
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		} else {
			log.Printf("Ignoring %s=%q: %v", EnvMasterVolume, volume, err)
		}
	}

	// Per-cue volumes as a JSON object keyed by sound name
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err != nil {
			log.Printf("Ignoring %s: %v", EnvSFXVolumes, err)
		}
		for name, v := range volumes {
			st, err := ParseSoundType(name)
			if err != nil {
				log.Printf("Ignoring %s key %q: %v", EnvSFXVolumes, name, err)
				continue
			}
			cfg.EffectVolumes[st] = vmath.Clamp(v, 0, 1)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		} else {
			log.Printf("Ignoring %s=%q", EnvSampleRate, sampleRate)
		}
	}

	return cfg
}
