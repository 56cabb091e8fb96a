package parameter

// Escape Start
const (
	// EscapeStartDuration is the scripted intro length before the tunnel run begins (seconds)
	EscapeStartDuration = 6.0
)

// Escape Tunnel
const (
	// EscapeTunnelCountdown is the initial tunnel timer (seconds)
	EscapeTunnelCountdown = 75.0

	// EscapeTunnelLength is the world-space distance from tunnel entry to exit
	EscapeTunnelLength = 400.0

	// EscapeCompleteProgress is the progress ratio at which the tunnel is considered cleared
	EscapeCompleteProgress = 0.95

	// EscapeTimeoutDamage is damage applied when the tunnel timer expires
	EscapeTimeoutDamage = 25.0

	// EscapeTimeoutGrace is extra time granted after a tunnel timer expiry (seconds)
	EscapeTimeoutGrace = 15.0

	// EscapeChasePushback is how far the collapse wall is pushed back on timer expiry
	EscapeChasePushback = 30.0

	// EscapeChaseStartDistance is the collapse wall's initial distance behind the player
	EscapeChaseStartDistance = 60.0

	// EscapeChaseSpeed is the collapse wall's closing speed in units/sec
	EscapeChaseSpeed = 4.5
)

// Surface Run
const (
	// SurfaceRunArrivalRadius is the distance to the holdout position that ends the run
	SurfaceRunArrivalRadius = 8.0

	// SurfaceRunETA is the extraction ETA shown during the run (seconds)
	SurfaceRunETA = 300.0
)

// Hive Collapse
const (
	// CollapseCountdown is the total time to reach the extraction beacon (seconds)
	CollapseCountdown = 90.0

	// CollapseGrace is the extra time granted by soft-fail recovery (seconds)
	CollapseGrace = 20.0

	// CollapseRecoverFraction is how far toward the beacon the player is moved on soft-fail
	CollapseRecoverFraction = 0.4

	// CollapseArrivalRadius is the distance to the beacon that triggers extraction
	CollapseArrivalRadius = 6.0

	// CollapseChaserLostDistance is how far behind the player an enemy must fall
	// before it is lost to the collapse and removed
	CollapseChaserLostDistance = 55.0

	// CollapseChaserInterval is seconds between chaser spawns behind the player
	CollapseChaserInterval = 7.0
)

// Victory cinematic beat offsets (seconds from cinematic start)
const (
	// VictoryBeatApproach is when the dropship approach line plays
	VictoryBeatApproach = 0.0

	// VictoryBeatHover is when the dropship reaches hover
	VictoryBeatHover = 4.0

	// VictoryBeatLanding is when the landing dust-off plays
	VictoryBeatLanding = 8.0

	// VictoryBeatBoarding is when the boarding handoff fires
	VictoryBeatBoarding = 12.5

	// VictoryBeatEpilogue is when control hands off to the epilogue phase
	VictoryBeatEpilogue = 16.0
)
