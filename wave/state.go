package wave

import (
	"math/rand"

	"github.com/daedron/hivefall/parameter"
)

// SubPhase is the wave sub-state within the holdout phase
type SubPhase uint8

const (
	SubWaiting SubPhase = iota
	SubIntermission
	SubAnnouncement
	SubActive
)

func (s SubPhase) String() string {
	switch s {
	case SubWaiting:
		return "waiting"
	case SubIntermission:
		return "intermission"
	case SubAnnouncement:
		return "announcement"
	case SubActive:
		return "active"
	}
	return "waiting"
}

// State is the complete wave machine state. It is a plain value: update
// functions take a State and return the next one, so tests can construct
// any point in the cycle directly.
type State struct {
	// Current is the 1-indexed wave number, 0 before the first wave
	Current int

	Sub     SubPhase
	Elapsed float64

	// Remaining covers every unit of the wave: live enemies plus units
	// still queued to spawn
	Remaining int
	Killed    int

	SpawnTimer float64
	Pending    []Group

	// Cursor rotates through perimeter spawn points across the holdout
	Cursor int

	// StartedAt is the mission clock value when the wave went active
	StartedAt float64
}

// TickResult reports everything a single Tick decided, so the caller can
// perform the side effects (instantiation, narration, audio) itself.
type TickResult struct {
	// Announced is set when the intermission ended and the banner phase began
	Announced bool

	// Started is set when the announcement ended and the wave went active
	Started bool

	// Spawns lists categories to instantiate this tick, in drain order
	Spawns []Category

	// Completed is set when the active wave finished (all spawned, all dead)
	Completed bool

	// AllDone is set alongside Completed on the final wave
	AllDone bool
}

// StartIntermission begins the countdown for the given 1-indexed wave.
// A wave number with no catalog entry returns the state unchanged; that
// guards the post-final-wave call and any off-by-one at the table edge.
func StartIntermission(s State, waveNum int) State {
	if _, ok := Lookup(waveNum); !ok {
		return s
	}
	s.Current = waveNum
	s.Sub = SubIntermission
	s.Elapsed = parameter.WaveIntermissionDuration
	return s
}

// RecordKill notes one enemy death. Completion is not decided here; the
// next Tick checks the full invariant so a wave with queued spawns can
// never complete early.
func RecordKill(s State) State {
	if s.Remaining > 0 {
		s.Remaining--
	}
	s.Killed++
	return s
}

// IsComplete reports the sole completion condition for an active wave:
// nothing left alive and nothing left to spawn.
func IsComplete(s State) bool {
	return s.Sub == SubActive && s.Remaining == 0 && len(s.Pending) == 0
}

// Tick advances the wave machine by dt seconds. now is the mission clock,
// recorded when a wave goes active. The catalog config is scaled by d at
// announcement end, so difficulty applies to counts and cadence alike.
func Tick(s State, dt float64, d Difficulty, rng *rand.Rand, now float64) (State, TickResult) {
	var res TickResult

	switch s.Sub {
	case SubIntermission:
		s.Elapsed -= dt
		if s.Elapsed <= 0 {
			s.Sub = SubAnnouncement
			s.Elapsed = 0
			res.Announced = true
		}

	case SubAnnouncement:
		s.Elapsed += dt
		if s.Elapsed >= parameter.WaveAnnouncementDuration {
			cfg, ok := Lookup(s.Current)
			if !ok {
				return s, res
			}
			scaled := Scale(cfg, d)
			s.Pending = BuildQueue(scaled, rng)
			s.Remaining = scaled.TotalCount()
			s.Sub = SubActive
			s.Elapsed = 0
			s.SpawnTimer = 0
			s.StartedAt = now
			res.Started = true
		}

	case SubActive:
		s.Elapsed += dt
		s, res.Spawns = drainSpawns(s, dt, d)

		if IsComplete(s) {
			res.Completed = true
			s.Cursor += parameter.SpawnCursorWaveStride
			if s.Current >= TotalWaves() {
				s.Sub = SubWaiting
				s.Elapsed = 0
				res.AllDone = true
			} else {
				s = StartIntermission(s, s.Current+1)
			}
		}
	}

	return s, res
}

// drainSpawns pops units off the head group while the spawn timer allows.
// One unit per timer expiry keeps arrivals paced at the wave cadence even
// when dt is large.
func drainSpawns(s State, dt float64, d Difficulty) (State, []Category) {
	if len(s.Pending) == 0 {
		return s, nil
	}

	cfg, ok := Lookup(s.Current)
	if !ok {
		return s, nil
	}
	cadence := Scale(cfg, d).Cadence

	s.SpawnTimer -= dt
	if s.SpawnTimer > 0 {
		return s, nil
	}

	// Copy before mutating so the caller's previous State value stays intact
	pending := append([]Group(nil), s.Pending...)
	var spawns []Category
	for s.SpawnTimer <= 0 && len(pending) > 0 {
		spawns = append(spawns, pending[0].Category)
		pending[0].Count--
		if pending[0].Count <= 0 {
			pending = pending[1:]
		}
		s.SpawnTimer += cadence
	}
	s.Pending = pending
	if len(s.Pending) == 0 {
		s.SpawnTimer = 0
	}
	return s, spawns
}
