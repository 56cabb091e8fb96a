package wave

import (
	"math/rand"

	"github.com/daedron/hivefall/parameter"
	"github.com/daedron/hivefall/vmath"
)

// Arena is the holdout spawn geometry. Any of the point lists may be
// empty; ResolveSpawn always produces a usable position regardless.
type Arena struct {
	Perimeter []vmath.Vec3
	Breaches  []vmath.Vec3
	Objective vmath.Vec3
}

// ResolveSpawn picks a world position for a spawning enemy and returns the
// (possibly advanced) perimeter cursor. Selection is layered: broodmothers
// prefer the first breach points, everything else walks the perimeter ring
// with a rotating cursor, then breaches, then a ring around the objective.
func ResolveSpawn(a Arena, c Category, cursor int, rng *rand.Rand) (vmath.Vec3, int) {
	if c == CategoryBrood && len(a.Breaches) > 0 {
		n := len(a.Breaches)
		if n > 2 {
			n = 2
		}
		p := a.Breaches[rng.Intn(n)]
		return vmath.Jitter(p, parameter.SpawnBreachJitter, rng), cursor
	}

	if len(a.Perimeter) > 0 {
		idx := (cursor + rng.Intn(parameter.SpawnCursorRandomSpan)) % len(a.Perimeter)
		p := vmath.Jitter(a.Perimeter[idx], parameter.SpawnPerimeterSpread, rng)
		if rng.Float64() < parameter.SpawnCursorAdvanceChance {
			cursor = (cursor + 1) % len(a.Perimeter)
		}
		return p, cursor
	}

	if len(a.Breaches) > 0 {
		p := a.Breaches[rng.Intn(len(a.Breaches))]
		return vmath.Jitter(p, parameter.SpawnBreachFullJitter, rng), cursor
	}

	return vmath.OnRing(a.Objective, parameter.SpawnFallbackRingRadius, rng), cursor
}
