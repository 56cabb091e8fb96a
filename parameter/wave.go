package parameter

// Wave timing
const (
	// WaveIntermissionDuration is the breather between waves (seconds)
	WaveIntermissionDuration = 12.0

	// WaveAnnouncementDuration is how long the wave title banner holds (seconds)
	WaveAnnouncementDuration = 3.5

	// FinalWaveTimeout is the scripted cutoff during the last wave's active
	// sub-phase; the hive starts coming down whether the wave is cleared or not
	FinalWaveTimeout = 120.0
)

// Spawn queue
const (
	// SpawnChunkSize is the maximum units per shuffled spawn group
	SpawnChunkSize = 4

	// SpawnCursorRandomSpan is the random offset (0..N-1) added to the
	// perimeter cursor when resolving a spawn position
	SpawnCursorRandomSpan = 3

	// SpawnCursorAdvanceChance is the probability the perimeter cursor
	// advances by one after a resolve
	SpawnCursorAdvanceChance = 0.35

	// SpawnCursorWaveStride is how far the cursor rotates on wave completion
	SpawnCursorWaveStride = 3

	// SpawnPerimeterSpread is the radial jitter around a perimeter point
	SpawnPerimeterSpread = 3.0

	// SpawnBreachJitter is the small displacement around a breach point
	SpawnBreachJitter = 1.5

	// SpawnBreachFullJitter is the wide displacement used when falling back
	// to breach points for non-elite categories
	SpawnBreachFullJitter = 4.0

	// SpawnFallbackRingRadius is the ring radius around the objective used
	// when no spawn geometry is configured at all
	SpawnFallbackRingRadius = 35.0
)

// Mech support fire
const (
	// MechBaseDamage is the ally's damage per shot at full integrity
	MechBaseDamage = 18.0

	// MechFireInterval is seconds between ally support shots
	MechFireInterval = 1.6

	// MechIntegrityDecayRate is integrity lost per second during active combat
	MechIntegrityDecayRate = 0.4

	// MechFireRange is the maximum distance at which the ally engages
	MechFireRange = 45.0
)

// Player actions
const (
	// GrenadeDamage is applied to every enemy inside GrenadeRadius
	GrenadeDamage = 60.0

	// GrenadeRadius is the grenade blast radius
	GrenadeRadius = 7.0

	// GrenadeCooldown is seconds between grenade throws
	GrenadeCooldown = 6.0

	// MeleeDamage is applied to the nearest enemy inside MeleeRange
	MeleeDamage = 40.0

	// MeleeRange is the melee reach
	MeleeRange = 2.5

	// MeleeCooldown is seconds between melee swings
	MeleeCooldown = 1.2

	// FlareCooldown is seconds between flare shots
	FlareCooldown = 10.0

	// ReloadCooldown is seconds between reload requests
	ReloadCooldown = 2.0
)
