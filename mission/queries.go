package mission

import (
	"github.com/daedron/hivefall/parameter"
	"github.com/daedron/hivefall/wave"
)

// Phase-query getters used by frontends to render HUD text. Read-only;
// none of these mutate mission state.

// Phase returns the active top-level phase
func (d *Director) Phase() Phase {
	return d.phase.Phase
}

// State returns a copy of the full phase-level state
func (d *Director) State() PhaseState {
	return d.phase
}

// WaveNumber returns the 1-indexed current wave, 0 before the first
func (d *Director) WaveNumber() int {
	return d.wave.Current
}

// WaveSub returns the wave machine's sub-phase
func (d *Director) WaveSub() wave.SubPhase {
	return d.wave.Sub
}

// EnemiesRemaining counts live plus still-queued units for the active wave
func (d *Director) EnemiesRemaining() int {
	return d.wave.Remaining
}

// EnemiesKilled counts kills recorded in the current wave cycle
func (d *Director) EnemiesKilled() int {
	return d.wave.Killed
}

// TotalKills counts every kill over the whole mission
func (d *Director) TotalKills() int {
	return d.totalKills
}

// MechIntegrity returns the ally's current integrity percentage
func (d *Director) MechIntegrity() float64 {
	return d.mech.Integrity
}

// Enemies returns the live enemy list for frontends that draw markers.
// Callers must treat it as read-only.
func (d *Director) Enemies() []*Enemy {
	return d.enemies
}

// CollapseIntensity returns the 0..1 collapse ramp, or 0 outside the
// hive_collapse phase
func (d *Director) CollapseIntensity() float64 {
	if d.collapse == nil {
		return 0
	}
	return d.collapse.Intensity()
}

// HUDClock renders the timer relevant to the current phase
func (d *Director) HUDClock() string {
	switch d.phase.Phase {
	case PhaseEscapeTunnel:
		return "COLLAPSE: " + FormatTimer(d.phase.EscapeCountdown)
	case PhaseSurfaceRun, PhaseHoldout:
		return "EXTRACTION: " + FormatTimer(d.phase.ExtractionETA)
	case PhaseHiveCollapse:
		return CollapseHUDDisplay(d.phase.CollapseCountdown, parameter.CollapseCountdown)
	}
	return ""
}
