package physics

import "github.com/lixenwraith/vi-pong/parameter"

// BallProfile groups the tunables of ball motion and bounce response
// Profiles are plain values; callers copy and override fields as needed
type BallProfile struct {
	BaseSpeed    float64 // Speed restored on every reset
	Growth       float64 // Speed multiplier per paddle bounce (>1)
	VerticalGain float64 // Impact offset to vertical velocity factor
	MinVertical  float64 // Floor for |VY| after a bounce
	LaunchAngle  float64 // Reset samples the launch angle from [-LaunchAngle, LaunchAngle]
}

// DefaultBallProfile mirrors the classic tuning
var DefaultBallProfile = BallProfile{
	BaseSpeed:    parameter.BallBaseSpeed,
	Growth:       parameter.BallSpeedGrowth,
	VerticalGain: parameter.BallVerticalGain,
	MinVertical:  parameter.BallMinVerticalSpeed,
	LaunchAngle:  parameter.BallLaunchAngle,
}
