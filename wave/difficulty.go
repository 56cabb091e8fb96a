package wave

import "math"

// Difficulty selects the enemy count and cadence multiplier
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
	DifficultyNightmare
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	case DifficultyNightmare:
		return "nightmare"
	}
	return "normal"
}

// ParseDifficulty maps a config string to a difficulty, defaulting to normal
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	case "nightmare":
		return DifficultyNightmare
	}
	return DifficultyNormal
}

// Multiplier returns the enemy count multiplier for the difficulty
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyEasy:
		return 0.7
	case DifficultyHard:
		return 1.3
	case DifficultyNightmare:
		return 1.6
	}
	return 1.0
}

// scaleCount multiplies and rounds half-up, floored at min
func scaleCount(count int, mult float64, min int) int {
	scaled := int(math.Floor(float64(count)*mult + 0.5))
	if scaled < min {
		return min
	}
	return scaled
}

// Scale applies the difficulty multiplier to a wave config. Husks are the
// always-present backbone and never drop below one; broodmother counts are
// a designed constant and are never scaled. Cadence scales inversely so
// harder difficulties spawn both more enemies and faster.
func Scale(cfg Config, d Difficulty) Config {
	mult := d.Multiplier()
	out := cfg
	out.Drones = scaleCount(cfg.Drones, mult, 0)
	out.Husks = scaleCount(cfg.Husks, mult, 1)
	out.Spitters = scaleCount(cfg.Spitters, mult, 0)
	out.Sappers = scaleCount(cfg.Sappers, mult, 0)
	out.Cadence = cfg.Cadence * (2 - mult)
	return out
}
