package wave

import (
	"math/rand"
	"testing"

	"github.com/daedron/hivefall/parameter"
)

func TestStartIntermission(t *testing.T) {
	s := StartIntermission(State{}, 1)

	if s.Sub != SubIntermission {
		t.Errorf("expected intermission, got %v", s.Sub)
	}
	if s.Current != 1 {
		t.Errorf("expected wave 1, got %d", s.Current)
	}
	if s.Elapsed != parameter.WaveIntermissionDuration {
		t.Errorf("expected countdown %v, got %v", parameter.WaveIntermissionDuration, s.Elapsed)
	}
}

func TestStartIntermissionOutOfRangeIsNoop(t *testing.T) {
	tests := []struct {
		name string
		num  int
	}{
		{"Zero", 0},
		{"Negative", -3},
		{"Past final wave", TotalWaves() + 1},
		{"Far past", 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := State{Current: 2, Sub: SubActive, Remaining: 5}
			got := StartIntermission(orig, tt.num)
			if got.Current != orig.Current || got.Sub != orig.Sub || got.Remaining != orig.Remaining {
				t.Errorf("state changed for invalid wave %d: %+v", tt.num, got)
			}
		})
	}
}

func TestIntermissionCountsDownToAnnouncement(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := StartIntermission(State{}, 1)

	s, res := Tick(s, parameter.WaveIntermissionDuration-0.1, DifficultyNormal, rng, 0)
	if res.Announced || s.Sub != SubIntermission {
		t.Fatalf("announced too early: %+v", s)
	}

	s, res = Tick(s, 0.2, DifficultyNormal, rng, 0)
	if !res.Announced {
		t.Fatal("expected announcement")
	}
	if s.Sub != SubAnnouncement {
		t.Errorf("expected announcement sub-phase, got %v", s.Sub)
	}
}

func TestAnnouncementPopulatesActiveWave(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := State{Current: 1, Sub: SubAnnouncement}

	s, res := Tick(s, parameter.WaveAnnouncementDuration, DifficultyNormal, rng, 33.5)
	if !res.Started {
		t.Fatal("expected wave start")
	}
	if s.Sub != SubActive {
		t.Errorf("expected active, got %v", s.Sub)
	}

	cfg, _ := Lookup(1)
	want := Scale(cfg, DifficultyNormal).TotalCount()
	if s.Remaining != want {
		t.Errorf("expected %d remaining, got %d", want, s.Remaining)
	}
	if len(s.Pending) == 0 {
		t.Error("expected pending spawn groups")
	}
	if s.StartedAt != 33.5 {
		t.Errorf("expected start timestamp recorded, got %v", s.StartedAt)
	}
}

func TestActiveDrainsOneUnitPerCadence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := State{
		Current: 1,
		Sub:     SubActive,
		Pending: []Group{{Category: CategoryDrone, Count: 2}, {Category: CategoryHusk, Count: 1}},
	}
	cfg, _ := Lookup(1)
	cadence := cfg.Cadence

	s, res := Tick(s, 0.01, DifficultyNormal, rng, 0)
	if len(res.Spawns) != 1 || res.Spawns[0] != CategoryDrone {
		t.Fatalf("expected first drone spawn, got %v", res.Spawns)
	}

	s, res = Tick(s, cadence/2, DifficultyNormal, rng, 0)
	if len(res.Spawns) != 0 {
		t.Fatalf("spawned before cadence elapsed: %v", res.Spawns)
	}

	s, res = Tick(s, cadence, DifficultyNormal, rng, 0)
	if len(res.Spawns) != 1 {
		t.Fatalf("expected one spawn after cadence, got %v", res.Spawns)
	}

	// Large dt drains multiple units at once
	s, res = Tick(s, cadence*5, DifficultyNormal, rng, 0)
	if len(res.Spawns) != 1 || res.Spawns[0] != CategoryHusk {
		t.Fatalf("expected final husk spawn, got %v", res.Spawns)
	}
	if len(s.Pending) != 0 {
		t.Errorf("expected empty queue, got %v", s.Pending)
	}
}

func TestRecordKill(t *testing.T) {
	s := State{Sub: SubActive, Remaining: 3, Killed: 1}

	s = RecordKill(s)
	if s.Remaining != 2 || s.Killed != 2 {
		t.Errorf("expected 2/2, got %d remaining %d killed", s.Remaining, s.Killed)
	}

	for i := 0; i < 2; i++ {
		s = RecordKill(s)
	}
	if s.Remaining != 0 {
		t.Errorf("expected 0 remaining, got %d", s.Remaining)
	}

	// Underflow guard
	s = RecordKill(s)
	if s.Remaining != 0 {
		t.Errorf("remaining went negative: %d", s.Remaining)
	}
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name string
		s    State
		want bool
	}{
		{"Active and drained", State{Sub: SubActive}, true},
		{"Enemies left", State{Sub: SubActive, Remaining: 1}, false},
		{"Spawns queued", State{Sub: SubActive, Pending: []Group{{CategoryDrone, 1}}}, false},
		{"Both pending", State{Sub: SubActive, Remaining: 2, Pending: []Group{{CategoryHusk, 2}}}, false},
		{"Not active", State{Sub: SubIntermission}, false},
		{"Waiting", State{Sub: SubWaiting}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsComplete(tt.s); got != tt.want {
				t.Errorf("IsComplete(%+v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestWaveCompletionStartsNextIntermission(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := State{Current: 3, Sub: SubActive, Cursor: 2}

	s, res := Tick(s, 0.016, DifficultyNormal, rng, 0)
	if !res.Completed {
		t.Fatal("expected completion")
	}
	if res.AllDone {
		t.Error("mid-mission wave should not report all done")
	}
	if s.Current != 4 || s.Sub != SubIntermission {
		t.Errorf("expected wave 4 intermission, got wave %d %v", s.Current, s.Sub)
	}
	if s.Cursor != 2+parameter.SpawnCursorWaveStride {
		t.Errorf("expected cursor rotated by stride, got %d", s.Cursor)
	}
}

func TestFinalWaveCompletionSignalsAllDone(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := State{Current: TotalWaves(), Sub: SubActive}

	s, res := Tick(s, 0.016, DifficultyNormal, rng, 0)
	if !res.Completed || !res.AllDone {
		t.Fatalf("expected completed+all done, got %+v", res)
	}
	if s.Sub != SubWaiting {
		t.Errorf("expected waiting terminal state, got %v", s.Sub)
	}
	if s.Current != TotalWaves() {
		t.Errorf("current wave changed past final: %d", s.Current)
	}
}

func TestFullWaveCycle(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	s := StartIntermission(State{}, 1)

	var spawned int
	clock := 0.0
	for i := 0; i < 10000; i++ {
		var res TickResult
		dt := 0.25
		clock += dt
		s, res = Tick(s, dt, DifficultyNormal, rng, clock)
		spawned += len(res.Spawns)

		// Kill everything as soon as it spawns
		for range res.Spawns {
			s = RecordKill(s)
		}
		if res.Completed {
			break
		}
	}

	cfg, _ := Lookup(1)
	want := Scale(cfg, DifficultyNormal).TotalCount()
	if spawned != want {
		t.Errorf("expected %d spawn signals over wave 1, got %d", want, spawned)
	}
	if s.Current != 2 || s.Sub != SubIntermission {
		t.Errorf("expected wave 2 intermission after cycle, got %d %v", s.Current, s.Sub)
	}
}
