package mission

import (
	"fmt"
	"math"
)

// Phase is one of the seven mutually-exclusive top-level mission stages
type Phase uint8

const (
	PhaseEscapeStart Phase = iota
	PhaseEscapeTunnel
	PhaseSurfaceRun
	PhaseHoldout
	PhaseHiveCollapse
	PhaseVictory
	PhaseEpilogue
)

func (p Phase) String() string {
	switch p {
	case PhaseEscapeStart:
		return "escape_start"
	case PhaseEscapeTunnel:
		return "escape_tunnel"
	case PhaseSurfaceRun:
		return "surface_run"
	case PhaseHoldout:
		return "holdout"
	case PhaseHiveCollapse:
		return "hive_collapse"
	case PhaseVictory:
		return "victory"
	case PhaseEpilogue:
		return "epilogue"
	}
	return "unknown"
}

// PhaseState carries every phase-level timer and progress metric. One
// value exists per mission attempt; only the active phase's update
// function mutates it.
type PhaseState struct {
	Phase   Phase
	Elapsed float64

	// EscapeCountdown is the tunnel timer during escape_tunnel
	EscapeCountdown float64

	// ExtractionETA is the dropship countdown shown from the surface run on
	ExtractionETA float64

	// CollapseCountdown mirrors the collapse model's remaining time
	CollapseCountdown float64

	// EscapeProgress is the 0..1 tunnel completion ratio
	EscapeProgress float64

	// ChaseDistance is how far behind the player the collapse wall sits
	ChaseDistance float64

	// DistanceToTarget is the current distance to the active objective
	DistanceToTarget float64

	// Recoveries counts soft-fail recoveries granted during hive_collapse
	Recoveries int
}

// FormatTimer renders a second count for the HUD, clamping negatives to 0s
func FormatTimer(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	whole := int(math.Ceil(seconds))
	if whole >= 60 {
		return fmt.Sprintf("%d:%02d", whole/60, whole%60)
	}
	return fmt.Sprintf("%ds", whole)
}

// CollapseHUDDisplay renders the collapse countdown. The underlying timer
// may run negative while soft-fail recovery is pending; the display never
// shows less than 0s and never more than the total.
func CollapseHUDDisplay(remaining, total float64) string {
	if remaining < 0 {
		remaining = 0
	}
	if total > 0 && remaining > total {
		remaining = total
	}
	return "ESCAPE: " + FormatTimer(remaining)
}
