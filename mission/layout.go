package mission

import (
	"github.com/daedron/hivefall/vmath"
	"github.com/daedron/hivefall/wave"
)

// Layout is the mission's fixed world geometry. The orchestrator treats
// it as read-only; a frontend can supply its own or use DefaultLayout.
type Layout struct {
	TunnelEntry vmath.Vec3
	TunnelExit  vmath.Vec3
	Holdout     wave.Arena
	Beacon      vmath.Vec3
	Pickups     []vmath.Vec3
	Walls       []vmath.Vec3
}

// DefaultLayout is the shipped mission geometry: a straight tunnel, an
// eight-point holdout perimeter with two breach points, and the collapse
// route east toward the extraction beacon.
func DefaultLayout() Layout {
	return Layout{
		TunnelEntry: vmath.Vec3{X: -400},
		TunnelExit:  vmath.Vec3{},
		Holdout: wave.Arena{
			Objective: vmath.Vec3{X: 60},
			Perimeter: []vmath.Vec3{
				{X: 90, Z: 0}, {X: 82, Z: 22}, {X: 60, Z: 30}, {X: 38, Z: 22},
				{X: 30, Z: 0}, {X: 38, Z: -22}, {X: 60, Z: -30}, {X: 82, Z: -22},
			},
			Breaches: []vmath.Vec3{
				{X: 95, Z: 10}, {X: 95, Z: -10}, {X: 25, Z: 0},
			},
		},
		Beacon: vmath.Vec3{X: 220},
		Pickups: []vmath.Vec3{
			{X: 100}, {X: 140, Z: 5}, {X: 180, Z: -5},
		},
		Walls: []vmath.Vec3{
			{X: 80, Z: 8}, {X: 110, Z: -6}, {X: 135, Z: 10},
			{X: 160, Z: -8}, {X: 190, Z: 6},
		},
	}
}
