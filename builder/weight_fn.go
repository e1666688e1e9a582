package builder

import "math/rand"

// DefaultEdgeWeight is the weight assigned to each edge when no custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics with ErrInvalidWeightRange if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(ErrInvalidWeightRange.Error())
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics with ErrInvalidWeightRange unless 0 ≤ min ≤ max.
// If rng is nil, it yields min.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(ErrInvalidWeightRange.Error())
	}
	span := max - min

	return func(rng *rand.Rand) float64 {
		if rng == nil || span == 0 {
			return min
		}

		return min + rng.Float64()*span
	}
}
