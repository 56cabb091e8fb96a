package vmath

import (
	"math"
	"math/rand"
)

// Vec3 is a float64 3D vector for world-space positions and velocities
type Vec3 struct {
	X, Y, Z float64
}

func Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func Mag(v Vec3) float64 {
	return math.Sqrt(MagSq(v))
}

func Normalize(v Vec3) Vec3 {
	mag := Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

func Dist(a, b Vec3) float64 {
	return Mag(Sub(a, b))
}

func DistSq(a, b Vec3) float64 {
	return MagSq(Sub(a, b))
}

// Lerp interpolates from a toward b by t in [0,1]
func Lerp(a, b Vec3, t float64) Vec3 {
	return Add(a, Scale(Sub(b, a), t))
}

// OnRing returns a point on a horizontal circle of the given radius
// around center, at a random angle drawn from rng
func OnRing(center Vec3, radius float64, rng *rand.Rand) Vec3 {
	angle := rng.Float64() * 2 * math.Pi
	return Vec3{
		X: center.X + math.Cos(angle)*radius,
		Y: center.Y,
		Z: center.Z + math.Sin(angle)*radius,
	}
}

// Jitter displaces v horizontally by up to ±spread on X and Z
func Jitter(v Vec3, spread float64, rng *rand.Rand) Vec3 {
	return Vec3{
		X: v.X + (rng.Float64()*2-1)*spread,
		Y: v.Y,
		Z: v.Z + (rng.Float64()*2-1)*spread,
	}
}
