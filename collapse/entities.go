package collapse

import "github.com/daedron/hivefall/vmath"

// Debris is a small falling rock chunk with a hard lifetime
type Debris struct {
	ID       uint64
	Pos      vmath.Vec3
	Vel      vmath.Vec3
	Spin     float64
	Lifetime float64
}

// Pod is a large falling seedpod hazard. It damages on the impact tick
// only, then lingers briefly while fading out.
type Pod struct {
	ID       uint64
	ShadowID uint64
	Pos      vmath.Vec3
	Vel      vmath.Vec3
	Impacted bool
	HitDealt bool
	Fade     float64
}

// Pickup is a health drop along the escape route
type Pickup struct {
	ID        uint64
	Pos       vmath.Vec3
	Collected bool
	Heal      float64
}

// Wall is a crumbling structure. Progress runs 0..1; once fully fallen
// the wall is inert. Stagger spreads activation thresholds so walls do
// not fall in lockstep.
type Wall struct {
	ID       uint64
	Pos      vmath.Vec3
	Height   float64
	Progress float64
	Stagger  float64
}
