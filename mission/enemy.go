package mission

import (
	"github.com/daedron/hivefall/vmath"
	"github.com/daedron/hivefall/wave"
)

// Enemy is one live hostile owned by the phase that spawned it. Death
// deactivates rather than removes, so visual disposal can lag a frame;
// the list itself is purged on wave completion and phase exit.
type Enemy struct {
	ID        uint64
	Category  wave.Category
	Pos       vmath.Vec3
	Vel       vmath.Vec3
	Health    float64
	MaxHealth float64
	Active    bool
}

func newEnemy(id uint64, c wave.Category, pos vmath.Vec3) *Enemy {
	stats := c.Stats()
	return &Enemy{
		ID:        id,
		Category:  c,
		Pos:       pos,
		Health:    stats.Health,
		MaxHealth: stats.Health,
		Active:    true,
	}
}

// nearestActive returns the closest active enemy to pos within maxDist,
// or nil if none qualifies
func nearestActive(enemies []*Enemy, pos vmath.Vec3, maxDist float64) *Enemy {
	var best *Enemy
	bestSq := maxDist * maxDist
	for _, e := range enemies {
		if !e.Active {
			continue
		}
		d := vmath.DistSq(e.Pos, pos)
		if d <= bestSq {
			best = e
			bestSq = d
		}
	}
	return best
}
