package wave

// Category is a closed enemy species tag. Keeping this a small enum with a
// static stats table makes an invalid species unrepresentable.
type Category uint8

const (
	CategoryDrone Category = iota
	CategoryHusk
	CategorySpitter
	CategoryBrood
	CategorySapper
	categoryCount
)

func (c Category) String() string {
	switch c {
	case CategoryDrone:
		return "drone"
	case CategoryHusk:
		return "husk"
	case CategorySpitter:
		return "spitter"
	case CategoryBrood:
		return "brood"
	case CategorySapper:
		return "sapper"
	}
	return "unknown"
}

// Stats holds the per-category combat profile
type Stats struct {
	Health float64
	Speed  float64
	Damage float64
}

var statsTable = [categoryCount]Stats{
	CategoryDrone:   {Health: 30, Speed: 6.5, Damage: 5},
	CategoryHusk:    {Health: 60, Speed: 4.0, Damage: 10},
	CategorySpitter: {Health: 45, Speed: 3.5, Damage: 8},
	CategoryBrood:   {Health: 400, Speed: 2.2, Damage: 30},
	CategorySapper:  {Health: 80, Speed: 3.0, Damage: 14},
}

// Stats returns the static combat profile for the category
func (c Category) Stats() Stats {
	if c >= categoryCount {
		return Stats{}
	}
	return statsTable[c]
}
