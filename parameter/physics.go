package parameter

// Ball physics
const (
	// BallBaseSpeed is the speed a ball has after every serve or reset
	BallBaseSpeed = 5.0

	// BallSpeedGrowth multiplies speed on each paddle bounce
	BallSpeedGrowth = 1.02

	// BallVerticalGain scales impact offset into vertical velocity
	BallVerticalGain = 0.6

	// BallMinVerticalSpeed keeps returns from going perfectly horizontal
	BallMinVerticalSpeed = 0.5

	// BallLaunchAngle bounds the random launch angle on Ball.Reset (radians)
	BallLaunchAngle = 0.4
)
