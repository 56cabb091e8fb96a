package wave

import "github.com/daedron/hivefall/parameter"

// integrityCaps is the per-wave ceiling on the ally mech's integrity.
// The schedule is monotonic non-increasing: the mech takes accumulated
// battle damage between waves and the cap only ever pulls integrity down.
var integrityCaps = []float64{100, 100, 80, 65, 50, 35, 20}

// IntegrityCap returns the integrity ceiling for a 1-indexed wave.
// Wave numbers outside the schedule return 100.
func IntegrityCap(waveNum int) float64 {
	if waveNum < 1 || waveNum > len(integrityCaps) {
		return 100
	}
	return integrityCaps[waveNum-1]
}

// Mech is the ally support unit's combat state
type Mech struct {
	Integrity float64
	FireTimer float64
}

// NewMech returns a mech at full integrity
func NewMech() Mech {
	return Mech{Integrity: 100}
}

// ApplyWaveCap clamps integrity to the wave's ceiling at wave start.
// It never restores integrity already lost below the cap.
func (m Mech) ApplyWaveCap(waveNum int) Mech {
	ceiling := IntegrityCap(waveNum)
	if m.Integrity > ceiling {
		m.Integrity = ceiling
	}
	return m
}

// Decay applies the continuous per-second integrity loss during active combat
func (m Mech) Decay(dt float64) Mech {
	m.Integrity -= parameter.MechIntegrityDecayRate * dt
	if m.Integrity < 0 {
		m.Integrity = 0
	}
	return m
}

// Damage scales base damage by the current integrity fraction, so a
// battered mech keeps shooting but hits progressively softer.
func (m Mech) Damage(base float64) float64 {
	return base * m.Integrity / 100
}
