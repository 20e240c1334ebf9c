package domain

import "math"

// mmiBand maps a PGA upper bound (exclusive) to a Modified Mercalli level.
type mmiBand struct {
	below float64
	level int
}

// Instrumental-intensity bands for MMI IV through IX.
var mmiBands = []mmiBand{
	{below: 0.039, level: 4},
	{below: 0.092, level: 5},
	{below: 0.18, level: 6},
	{below: 0.34, level: 7},
	{below: 0.65, level: 8},
	{below: 1.24, level: 9},
}

// ModifiedMercalli estimates Modified Mercalli Intensity (1–12) from PGA in g.
func ModifiedMercalli(pga float64) int {
	switch {
	case pga < 0.0017:
		return 1
	case pga < 0.014:
		// II and III spread logarithmically between perceptible and light shaking.
		return 2 + int(math.Log10(pga/0.0017)/math.Log10(8.2))
	}
	for _, b := range mmiBands {
		if pga < b.below {
			return b.level
		}
	}
	return min(12, 10+int((pga-1.24)/0.5))
}
