package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn returns the slack, ≥ 0, added to an edge's Manhattan span.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn adds no slack: every edge weighs exactly its span.
func DefaultWeightFn(_ *rand.Rand) int64 { return 0 }

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max].
// Panics if min < 0 or max < min. A nil rng yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		span := max - min
		if span == math.MaxInt64 {
			// [0, MaxInt64] is exactly Int63's range
			return min + rng.Int63()
		}

		return min + rng.Int63n(span+1)
	}
}
