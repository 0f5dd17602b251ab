package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// oscillator is a finite tone, optionally sweeping linearly from startFreq to endFreq
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	total     int
	position  int
	wave      WaveType
	rate      float64
	noise     *vmath.FastRand
}

// NewOscillator creates a fixed-pitch tone of the given duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates a tone gliding from startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		total:     rate.N(duration),
		wave:      wave,
		rate:      float64(rate),
		noise:     vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.total)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / o.rate
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack, flat sustain and linear release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s; attack and release are clipped to fit duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
	}
}

// gain returns the envelope level at sample pos
func (e *envelope) gain(pos int) float64 {
	switch {
	case pos >= e.total:
		return 0
	case pos < e.attack:
		return float64(pos) / float64(e.attack)
	case pos >= e.total-e.release:
		return float64(e.total-pos) / float64(e.release)
	default:
		return 1
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// sineTone returns beep's generator sine, falling back to the local oscillator
// when freq is above Nyquist for the configured rate; the caller's envelope bounds its length
func sineTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, duration, WaveSine, rate)
	}
	return tone
}

// newVolume wraps s with a linear gain; zero or negative gain is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePaddleSound generates a short square "pock" dropping in pitch
func CreatePaddleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone := NewSweep(520.0, 440.0, parameter.PaddleSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(tone, parameter.PaddleSoundDuration, parameter.PaddleSoundAttack, parameter.PaddleSoundRelease, rate)

	return newVolume(shaped, cfg.volumeFor(SoundPaddle)*0.5)
}

// CreateWallSound generates a dull triangle thud with a noise transient
func CreateWallSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewOscillator(220.0, parameter.WallSoundDuration, WaveTriangle, rate)
	bodyShaped := NewEnvelope(body, parameter.WallSoundDuration, parameter.WallSoundAttack, parameter.WallSoundRelease, rate)

	click := NewOscillator(0, parameter.WallSoundAttack*4, WaveNoise, rate)
	clickShaped := NewEnvelope(click, parameter.WallSoundAttack*4, 0, parameter.WallSoundAttack*3, rate)

	mixed := beep.Mix(
		newVolume(bodyShaped, 0.8),
		newVolume(clickShaped, 0.2),
	)
	return newVolume(mixed, cfg.volumeFor(SoundWall))
}

// CreateScoreSound generates a rising two-note chime
func CreateScoreSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5
	n1 := NewOscillator(659.25, parameter.ScoreSoundNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, parameter.ScoreSoundNote1Duration, parameter.ScoreSoundAttack, parameter.ScoreSoundNote1Release, rate)

	// A5
	n2 := NewOscillator(880.0, parameter.ScoreSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, parameter.ScoreSoundNote2Duration, parameter.ScoreSoundAttack, parameter.ScoreSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volumeFor(SoundScore))
}

// CreateMatchSound generates a long bell with an octave overtone
func CreateMatchSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (A4)
	fund := sineTone(440.0, parameter.MatchSoundDuration, rate)
	fundShaped := NewEnvelope(fund, parameter.MatchSoundDuration, parameter.MatchSoundAttack, parameter.MatchSoundFundamentalRelease, rate)

	over := sineTone(880.0, parameter.MatchSoundDuration, rate)
	overShaped := NewEnvelope(over, parameter.MatchSoundDuration, parameter.MatchSoundAttack, parameter.MatchSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.volumeFor(SoundMatch))
}

// GetSoundEffect returns a fresh streamer for the given cue, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundPaddle:
		return CreatePaddleSound(cfg)
	case SoundWall:
		return CreateWallSound(cfg)
	case SoundScore:
		return CreateScoreSound(cfg)
	case SoundMatch:
		return CreateMatchSound(cfg)
	default:
		return nil
	}
}
