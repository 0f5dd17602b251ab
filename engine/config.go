package engine

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
)

// Config holds every tunable of a match
// Zero values are not meaningful; start from DefaultConfig and override
type Config struct {
	// Seed for serve and launch sampling, 0 seeds from the wall clock
	Seed        uint64 `toml:"seed"`
	TargetScore int    `toml:"target_score"`

	Playfield PlayfieldConfig `toml:"playfield"`
	Paddle    PaddleConfig    `toml:"paddle"`
	Ball      BallConfig      `toml:"ball"`
	Rally     RallyConfig     `toml:"rally"`
}

type PlayfieldConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type PaddleConfig struct {
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Speed    int     `toml:"speed"`
	Margin   int     `toml:"margin"`
	Deadzone float64 `toml:"deadzone"`
}

type BallConfig struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	BaseSpeed    float64 `toml:"base_speed"`
	Growth       float64 `toml:"growth"`
	VerticalGain float64 `toml:"vertical_gain"`
	MinVertical  float64 `toml:"min_vertical"`
	LaunchAngle  float64 `toml:"launch_angle"`
}

type RallyConfig struct {
	RampInterval   int     `toml:"ramp_interval"`
	RampFactor     float64 `toml:"ramp_factor"`
	CooldownFrames int     `toml:"cooldown_frames"`
	ServeAngle     float64 `toml:"serve_angle"`
}

// DefaultConfig returns the classic 800x600 first-to-5 setup
func DefaultConfig() Config {
	return Config{
		TargetScore: parameter.DefaultTargetScore,
		Playfield: PlayfieldConfig{
			Width:  parameter.PlayfieldWidth,
			Height: parameter.PlayfieldHeight,
		},
		Paddle: PaddleConfig{
			Width:    parameter.PaddleWidth,
			Height:   parameter.PaddleHeight,
			Speed:    parameter.PaddleSpeed,
			Margin:   parameter.PaddleMargin,
			Deadzone: parameter.TrackDeadzone,
		},
		Ball: BallConfig{
			Width:        parameter.BallWidth,
			Height:       parameter.BallHeight,
			BaseSpeed:    physics.DefaultBallProfile.BaseSpeed,
			Growth:       physics.DefaultBallProfile.Growth,
			VerticalGain: physics.DefaultBallProfile.VerticalGain,
			MinVertical:  physics.DefaultBallProfile.MinVertical,
			LaunchAngle:  physics.DefaultBallProfile.LaunchAngle,
		},
		Rally: RallyConfig{
			RampInterval:   parameter.SpeedRampInterval,
			RampFactor:     parameter.SpeedRampFactor,
			CooldownFrames: parameter.ResetCooldownFrames,
			ServeAngle:     parameter.ServeAngle,
		},
	}
}

// BallProfile converts the ball section into the physics profile
func (c Config) BallProfile() physics.BallProfile {
	return physics.BallProfile{
		BaseSpeed:    c.Ball.BaseSpeed,
		Growth:       c.Ball.Growth,
		VerticalGain: c.Ball.VerticalGain,
		MinVertical:  c.Ball.MinVertical,
		LaunchAngle:  c.Ball.LaunchAngle,
	}
}

// Validate reports the first setting that would break the simulation
// All failures wrap ErrInvalidConfiguration
func (c Config) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.TargetScore >= 1, "target_score must be >= 1"},
		{c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield dimensions must be positive"},
		{c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle dimensions must be positive"},
		{c.Paddle.Height <= c.Playfield.Height, "paddle taller than playfield"},
		{c.Paddle.Speed >= 0 && c.Paddle.Margin >= 0 && c.Paddle.Deadzone >= 0, "paddle speed, margin and deadzone must be non-negative"},
		{2*(c.Paddle.Margin+c.Paddle.Width) < c.Playfield.Width, "paddles do not fit the playfield"},
		{c.Ball.Width > 0 && c.Ball.Height > 0, "ball dimensions must be positive"},
		{isWhole(c.Ball.Width) && isWhole(c.Ball.Height), "ball dimensions must be whole units"},
		{c.Ball.Height < float64(c.Playfield.Height), "ball taller than playfield"},
		{c.Ball.BaseSpeed > 0, "ball base_speed must be positive"},
		{c.Ball.Growth > 1, "ball growth must be > 1"},
		{c.Rally.RampFactor >= 1, "ramp_factor must be >= 1"},
		{c.Ball.VerticalGain >= 0 && c.Ball.MinVertical >= 0, "vertical gain and floor must be non-negative"},
		{c.Ball.LaunchAngle >= 0 && c.Rally.ServeAngle >= 0, "angles must be non-negative"},
		{c.Rally.RampInterval > 0, "ramp_interval must be positive"},
		{c.Rally.CooldownFrames >= 0, "cooldown_frames must be non-negative"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfiguration, chk.msg)
		}
	}
	return nil
}

// isWhole reports whether v has no fractional part
// The collision rect is integral, so a fractional ball would collide smaller than it moves
func isWhole(v float64) bool {
	return v == math.Trunc(v)
}

// ParseConfig decodes TOML over DefaultConfig and validates the result
// Unknown keys are rejected so typos do not silently fall back to defaults
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfiguration, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML config file
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
