// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// value_fn.go - capacity and cost distributions.

package builder

import (
	"fmt"
	"math/rand"
)

// ValueFn produces an edge capacity or cost given an optional *rand.Rand.
// It must be deterministic for a given RNG seed.
type ValueFn func(rng *rand.Rand) int64

// ConstantFn returns a ValueFn that always yields value.
func ConstantFn(value int64) ValueFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformFn returns a ValueFn sampling uniformly in [min, max] inclusive.
// Panics if max < min. If rng is nil, yields min.
// Complexity: O(1) time, O(1) space.
func UniformFn(min, max int64) ValueFn {
	if max < min {
		panic(fmt.Sprintf("UniformFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
