package game

const (
	// MaxClipPlanes is the capacity of the clip plane set tracked by the slide solver.
	MaxClipPlanes = 5
	// MaxBumps is the number of iterations the slide solver may take in one tick.
	MaxBumps = 4

	GroundCheckDist = float32(2.0)
	StopEpsilon     = float32(0.1)
	// MaxFloorNormal is the minimum Z of a surface normal still considered a floor.
	MaxFloorNormal = float32(0.7)
	// DistEpsilon is how far traces back off from a hit surface.
	DistEpsilon = float32(0.03125)

	FallPunchThreshold  = float32(350.0)
	FallDamageThreshold = float32(580.0)
	FallPunchMultiplier = float32(0.013)
	MaxFallPunch        = float32(8.0)

	DeadMaxSpeed = float32(1.0)
	LadderSpeed  = float32(200.0)

	// JumpLeaveGroundSpeed is the upward speed above which the ground probe
	// refuses to report ground contact.
	JumpLeaveGroundSpeed = float32(180.0)

	WalkSpeedFactor  = float32(0.52)
	WaterSpeedFactor = float32(0.8)

	DuckTime = float32(0.4)

	StandingViewHeight = float32(28.0)
	DuckedViewHeight   = float32(12.0)

	// Standing hull half extents (32x32x72 units).
	StandingHalfWidth  = float32(16.0)
	StandingHalfHeight = float32(36.0)
	// Ducked hull half height (32x32x36 units).
	DuckedHalfHeight = float32(18.0)
)
