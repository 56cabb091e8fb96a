package vmath

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestLerp(t *testing.T) {
	a := Vec3{X: 0, Y: 10, Z: -4}
	b := Vec3{X: 100, Y: 10, Z: 16}

	tests := []struct {
		name string
		t    float64
		want Vec3
	}{
		{"Start", 0, a},
		{"End", 1, b},
		{"Midpoint", 0.5, Vec3{X: 50, Y: 10, Z: 6}},
		{"Forty percent", 0.4, Vec3{X: 40, Y: 10, Z: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(a, b, tt.t)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) || !near(got.Z, tt.want.Z) {
				t.Errorf("Lerp(t=%v) = %+v, expected %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	v := Normalize(Vec3{X: 3, Y: 0, Z: 4})
	if !near(Mag(v), 1) {
		t.Errorf("normalized magnitude = %v", Mag(v))
	}
	if !near(v.X, 0.6) || !near(v.Z, 0.8) {
		t.Errorf("unexpected direction %+v", v)
	}

	zero := Normalize(Vec3{})
	if zero != (Vec3{}) {
		t.Errorf("normalizing zero should stay zero, got %+v", zero)
	}
}

func TestDist(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 6, Z: 3}
	if !near(Dist(a, b), 5) {
		t.Errorf("Dist = %v, expected 5", Dist(a, b))
	}
	if !near(DistSq(a, b), 25) {
		t.Errorf("DistSq = %v, expected 25", DistSq(a, b))
	}
}

func TestOnRingStaysOnRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	center := Vec3{X: 60, Y: 2}
	for i := 0; i < 50; i++ {
		p := OnRing(center, 35, rng)
		if !near(Dist(p, center), 35) {
			t.Fatalf("ring point %+v at distance %v", p, Dist(p, center))
		}
		if p.Y != center.Y {
			t.Fatalf("ring point left the horizontal plane: %+v", p)
		}
	}
}

func TestJitterBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	v := Vec3{X: 10, Y: 5, Z: -10}
	for i := 0; i < 50; i++ {
		j := Jitter(v, 4, rng)
		if math.Abs(j.X-v.X) > 4 || math.Abs(j.Z-v.Z) > 4 {
			t.Fatalf("jitter exceeded spread: %+v", j)
		}
		if j.Y != v.Y {
			t.Fatalf("jitter moved Y: %+v", j)
		}
	}
}
