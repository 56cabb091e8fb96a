package collapse

import (
	"math/rand"
	"testing"

	"github.com/daedron/hivefall/parameter"
	"github.com/daedron/hivefall/vmath"
)

func testModel() *Model {
	rng := rand.New(rand.NewSource(1))
	return NewModel(vmath.Vec3{X: 200}, nil, nil, rng)
}

func TestIntensityRamp(t *testing.T) {
	tests := []struct {
		name      string
		remaining float64
		want      float64
	}{
		{"Fresh", 90, 0},
		{"Halfway", 45, 0.5},
		{"Nearly done", 9, 0.9},
		{"Exhausted", 0, 1},
		{"Past exhausted", -10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Model{Total: 90, Remaining: tt.remaining}
			got := m.Intensity()
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("expected intensity %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIntensityMonotonicOverTicks(t *testing.T) {
	m := testModel()
	rng := rand.New(rand.NewSource(2))

	prev := m.Intensity()
	for i := 0; i < 200; i++ {
		m.Tick(0.5, vmath.Vec3{}, rng)
		cur := m.Intensity()
		if cur < prev {
			t.Fatalf("intensity decreased: %v -> %v at tick %d", prev, cur, i)
		}
		prev = cur
	}
}

func TestDebrisCadenceShrinksWithIntensity(t *testing.T) {
	if diff := debrisCadence(0) - parameter.DebrisBaseCadence; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected base cadence at intensity 0, got %v", debrisCadence(0))
	}
	if diff := debrisCadence(1) - parameter.DebrisMinCadence; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected min cadence at intensity 1, got %v", debrisCadence(1))
	}
	mid := debrisCadence(0.5)
	if mid >= parameter.DebrisBaseCadence || mid <= parameter.DebrisMinCadence {
		t.Errorf("mid cadence %v outside expected band", mid)
	}
}

func TestExpiredDebrisRemovedWithoutDamage(t *testing.T) {
	m := testModel()
	m.Debris = []Debris{{
		ID:       99,
		Pos:      vmath.Vec3{X: 500, Y: 20}, // far from the player, still airborne
		Lifetime: 0.1,
	}}

	var rep Report
	m.updateDebris(0.5, vmath.Vec3{}, &rep)

	if len(m.Debris) != 0 {
		t.Error("expired debris not removed")
	}
	if rep.PlayerDamage != 0 {
		t.Errorf("out-of-range debris dealt %v damage", rep.PlayerDamage)
	}
	if len(rep.Removed) != 1 || rep.Removed[0] != 99 {
		t.Errorf("expected visual 99 removed, got %v", rep.Removed)
	}
}

func TestLandingDebrisDamagesNearbyPlayer(t *testing.T) {
	m := testModel()
	m.Debris = []Debris{{
		ID:       5,
		Pos:      vmath.Vec3{Y: 0.2},
		Vel:      vmath.Vec3{Y: -10},
		Lifetime: 3,
	}}

	var rep Report
	m.updateDebris(0.1, vmath.Vec3{}, &rep)

	if rep.PlayerDamage != parameter.DebrisDamage {
		t.Errorf("expected %v damage, got %v", parameter.DebrisDamage, rep.PlayerDamage)
	}
	if len(m.Debris) != 0 {
		t.Error("landed debris should be removed")
	}
}

func TestPodDirectHitDamagesExactlyOnce(t *testing.T) {
	m := testModel()
	m.Pods = []Pod{{
		ID:  7,
		Pos: vmath.Vec3{Y: 0.5},
		Vel: vmath.Vec3{Y: -parameter.PodFallSpeed},
	}}
	player := vmath.Vec3{}

	var first Report
	m.updatePods(0.1, player, &first)
	if first.PlayerDamage != parameter.PodDirectHitDamage {
		t.Fatalf("expected direct hit damage %v, got %v",
			parameter.PodDirectHitDamage, first.PlayerDamage)
	}
	if first.Impacts != 1 {
		t.Errorf("expected one impact, got %d", first.Impacts)
	}

	// Subsequent fade-out ticks must not damage again
	for i := 0; i < 5; i++ {
		var rep Report
		m.updatePods(0.1, player, &rep)
		if rep.PlayerDamage != 0 {
			t.Fatalf("pod dealt damage again on fade tick %d", i)
		}
	}
}

func TestImpactedPodFadesOutAndRemovesShadow(t *testing.T) {
	m := testModel()
	m.Pods = []Pod{{
		ID: 7, ShadowID: 8,
		Pos: vmath.Vec3{X: 50, Y: 0.5},
		Vel: vmath.Vec3{Y: -parameter.PodFallSpeed},
	}}

	var rep Report
	m.updatePods(0.1, vmath.Vec3{}, &rep)

	for i := 0; i < 100 && len(m.Pods) > 0; i++ {
		rep = Report{}
		m.updatePods(0.1, vmath.Vec3{}, &rep)
	}
	if len(m.Pods) != 0 {
		t.Fatal("pod never faded out")
	}
	if len(rep.Removed) != 2 {
		t.Errorf("expected pod and shadow visuals removed, got %v", rep.Removed)
	}
}

func TestWallStaggeredActivation(t *testing.T) {
	m := &Model{Total: 90, Remaining: 90}
	m.Walls = []Wall{
		{Stagger: 0},   // threshold 0.2
		{Stagger: 0.5}, // threshold 0.35
		{Stagger: 1},   // threshold 0.5
	}

	m.updateWalls(1.0, 0.25)
	if m.Walls[0].Progress == 0 {
		t.Error("first wall should be falling at intensity 0.25")
	}
	if m.Walls[1].Progress != 0 || m.Walls[2].Progress != 0 {
		t.Error("later walls activated before their thresholds")
	}

	m.updateWalls(1.0, 0.4)
	if m.Walls[1].Progress == 0 {
		t.Error("second wall should be falling at intensity 0.4")
	}
	if m.Walls[2].Progress != 0 {
		t.Error("third wall activated early")
	}
}

func TestFallenWallIsInert(t *testing.T) {
	m := &Model{Total: 90, Remaining: 90}
	m.Walls = []Wall{{Stagger: 0, Progress: 0.99}}

	m.updateWalls(10, 1)
	if m.Walls[0].Progress != 1 {
		t.Errorf("expected progress clamped to 1, got %v", m.Walls[0].Progress)
	}

	m.updateWalls(10, 1)
	if m.Walls[0].Progress != 1 {
		t.Errorf("fallen wall moved: %v", m.Walls[0].Progress)
	}
}

func TestPickupCollectedOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewModel(vmath.Vec3{X: 200}, []vmath.Vec3{{X: 1}}, nil, rng)

	var rep Report
	m.collectPickups(vmath.Vec3{}, &rep)
	if rep.Healed != parameter.PickupHealAmount {
		t.Fatalf("expected heal %v, got %v", parameter.PickupHealAmount, rep.Healed)
	}

	rep = Report{}
	m.collectPickups(vmath.Vec3{}, &rep)
	if rep.Healed != 0 {
		t.Error("pickup collected twice")
	}
}

func TestDisposeClearsPhaseScopedLists(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewModel(vmath.Vec3{X: 200}, []vmath.Vec3{{X: 1}}, []vmath.Vec3{{X: 2}}, rng)
	m.Tick(0.5, vmath.Vec3{}, rng)

	m.Dispose()
	if len(m.Debris) != 0 || len(m.Pods) != 0 || len(m.Pickups) != 0 || len(m.Walls) != 0 {
		t.Error("dispose left phase-scoped entities behind")
	}
}
