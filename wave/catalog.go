package wave

// Config is one wave's immutable setup, looked up by 1-indexed wave number
type Config struct {
	Drones   int
	Husks    int
	Spitters int
	Broods   int
	Sappers  int

	// Cadence is seconds between individual spawns while draining the queue
	Cadence float64

	Title  string
	Detail string

	// Cue is an optional narrative line delivered at announcement
	Cue string

	// Resupply marks waves that drop an ammo/health resupply at intermission
	Resupply bool
}

// TotalCount sums every category in the config
func (c Config) TotalCount() int {
	return c.Drones + c.Husks + c.Spitters + c.Broods + c.Sappers
}

var catalog = []Config{
	{
		Drones: 6, Husks: 3,
		Cadence: 1.8,
		Title:   "WAVE 1", Detail: "Scouts probing the perimeter",
		Cue: "They know we're here. Hold the line.",
	},
	{
		Drones: 8, Husks: 5, Spitters: 2,
		Cadence: 1.6,
		Title:   "WAVE 2", Detail: "Spitters on the ridge",
		Cue: "Ranged contacts, watch the high ground.",
	},
	{
		Drones: 10, Husks: 6, Spitters: 3, Sappers: 1,
		Cadence: 1.5,
		Title:   "WAVE 3", Detail: "Sappers moving on the barricades",
		Resupply: true,
	},
	{
		Drones: 10, Husks: 8, Spitters: 4, Sappers: 2,
		Cadence: 1.3,
		Title:   "WAVE 4", Detail: "Main force committed",
		Cue: "That's the bulk of the nest. Keep firing.",
	},
	{
		Drones: 12, Husks: 8, Spitters: 5, Broods: 1, Sappers: 2,
		Cadence: 1.2,
		Title:   "WAVE 5", Detail: "Broodmother breach",
		Cue:      "Something big just tore through the east wall!",
		Resupply: true,
	},
	{
		Drones: 14, Husks: 10, Spitters: 6, Broods: 1, Sappers: 3,
		Cadence: 1.1,
		Title:   "WAVE 6", Detail: "The hive empties",
	},
	{
		Drones: 16, Husks: 12, Spitters: 7, Broods: 2, Sappers: 4,
		Cadence: 1.0,
		Title:   "WAVE 7", Detail: "Everything they have left",
		Cue:      "Last push. Dropship is inbound, make it count.",
		Resupply: true,
	},
}

// TotalWaves is the number of waves in the mission
func TotalWaves() int {
	return len(catalog)
}

// Lookup returns the config for a 1-indexed wave number. Out-of-range
// numbers report ok=false so callers can treat them as no-ops.
func Lookup(n int) (Config, bool) {
	if n < 1 || n > len(catalog) {
		return Config{}, false
	}
	return catalog[n-1], true
}
