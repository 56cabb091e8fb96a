package parameter

// Debris
const (
	// DebrisBaseCadence is seconds between debris spawns at intensity 0
	DebrisBaseCadence = 1.2

	// DebrisMinCadence is the cadence floor reached at intensity 1
	DebrisMinCadence = 0.35

	// DebrisExtraAtHalf is extra simultaneous debris once intensity passes 0.5
	DebrisExtraAtHalf = 1

	// DebrisExtraAtSurge is extra simultaneous debris once intensity passes 0.8
	DebrisExtraAtSurge = 2

	// DebrisLifetime is seconds a debris chunk lives if it never lands
	DebrisLifetime = 6.0

	// DebrisFallSpeed is the initial downward speed of a debris chunk
	DebrisFallSpeed = 9.0

	// DebrisSpawnHeight is how far above the player debris appears
	DebrisSpawnHeight = 25.0

	// DebrisSpawnSpread is the horizontal scatter of debris around the player
	DebrisSpawnSpread = 18.0

	// DebrisHitRadius is the proximity at which landing debris damages the player
	DebrisHitRadius = 2.0

	// DebrisDamage is applied when debris lands within DebrisHitRadius
	DebrisDamage = 8.0
)

// Seedpod hazards
const (
	// PodBaseCadence is seconds between seedpod drops at intensity 0
	PodBaseCadence = 6.0

	// PodCadenceShrink is the multiplicative cadence reduction per unit intensity
	PodCadenceShrink = 0.55

	// PodExtraThreshold is the intensity above which extra pods may drop
	PodExtraThreshold = 0.7

	// PodExtraChance is the probability of an extra pod above PodExtraThreshold
	PodExtraChance = 0.35

	// PodFallSpeed is the downward speed of a seedpod
	PodFallSpeed = 14.0

	// PodSpawnHeight is how far above the ground pods appear
	PodSpawnHeight = 30.0

	// PodSpawnSpread is the horizontal scatter of pods ahead of the player
	PodSpawnSpread = 12.0

	// PodDirectHitRadius is the proximity at which an impacting pod deals heavy damage
	PodDirectHitRadius = 3.0

	// PodDirectHitDamage is applied exactly once on a direct pod impact
	PodDirectHitDamage = 35.0

	// PodFadeDuration is seconds an impacted pod lingers before removal
	PodFadeDuration = 1.5
)

// Walls and pickups
const (
	// WallActivationBase is the intensity floor before any wall starts falling
	WallActivationBase = 0.2

	// WallActivationSpan scales a wall's stagger value into its activation threshold
	WallActivationSpan = 0.3

	// WallFallDuration is seconds for a wall to go from standing to fully fallen
	WallFallDuration = 5.0

	// PickupHealAmount is health restored by one pickup
	PickupHealAmount = 20.0

	// PickupRadius is the collection distance for a health pickup
	PickupRadius = 2.0

	// HazardGravity is the downward acceleration applied to falling hazards
	HazardGravity = 12.0
)
