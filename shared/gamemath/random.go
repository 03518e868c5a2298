package gamemath

import (
	"math"
	"math/rand/v2"
)

// RandomWithinRange returns a uniform integer in [min, max]. Reversed bounds are swapped.
func RandomWithinRange(r *rand.Rand, min, max int) int {
	if min == max {
		return min
	}
	if max < min {
		min, max = max, min
	}
	return r.IntN(max-min+1) + min
}

// RandomFloatSteps returns min plus a uniform whole number of units, never exceeding max.
// Rotation limits are drawn this way so every star turns a whole number of radians
// past the lower bound.
func RandomFloatSteps(r *rand.Rand, min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	steps := int(math.Floor(max - min))
	if steps <= 0 {
		return min
	}
	return min + float64(r.IntN(steps+1))
}

// RandomIndex picks a uniform index into a collection of length n
func RandomIndex(r *rand.Rand, n int) int {
	if n <= 1 {
		return 0
	}
	return r.IntN(n)
}

// RandomCoordinate returns a uniform integer coordinate in [0, extent)
func RandomCoordinate(r *rand.Rand, extent int) float64 {
	if extent <= 0 {
		return 0
	}
	return float64(r.IntN(extent))
}
