package wave

import (
	"math/rand"

	"github.com/daedron/hivefall/parameter"
)

// Group is a pending spawn batch, consumed one unit at a time
type Group struct {
	Category Category
	Count    int
}

// chunk splits count into groups of at most size units
func chunk(out []Group, c Category, count, size int) []Group {
	for count > 0 {
		n := count
		if n > size {
			n = size
		}
		out = append(out, Group{Category: c, Count: n})
		count -= n
	}
	return out
}

// BuildQueue turns a wave config into a shuffled list of spawn groups.
// Regular categories arrive in chunks so a species never dumps all at
// once; broodmothers always get their own single-unit group. Deterministic
// for a fixed rng.
func BuildQueue(cfg Config, rng *rand.Rand) []Group {
	groups := make([]Group, 0, 8)
	groups = chunk(groups, CategoryDrone, cfg.Drones, parameter.SpawnChunkSize)
	groups = chunk(groups, CategoryHusk, cfg.Husks, parameter.SpawnChunkSize)
	groups = chunk(groups, CategorySpitter, cfg.Spitters, parameter.SpawnChunkSize)
	groups = chunk(groups, CategorySapper, cfg.Sappers, parameter.SpawnChunkSize)
	groups = chunk(groups, CategoryBrood, cfg.Broods, 1)

	rng.Shuffle(len(groups), func(i, j int) {
		groups[i], groups[j] = groups[j], groups[i]
	})
	return groups
}
