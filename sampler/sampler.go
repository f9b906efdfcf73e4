// Package sampler draws items at random with probability proportional to a weight.
package sampler

import (
	"math"
	"math/rand/v2"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
)

// DrawIndex returns the index of one of the weights, drawn with probability
// weights[i] / sum(weights).
//
// It fails with ErrPrecondition if weights is empty, if any weight is negative
// or not finite, or if the weights sum to zero or overflow.
func DrawIndex(rng *rand.Rand, weights []float64) (int, error) {
	if len(weights) == 0 {
		return -1, seaofstars.Preconditionf("no weights to draw from")
	}
	total := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return -1, seaofstars.Preconditionf("weight %d is %v, want a finite value >= 0", i, w)
		}
		total += w
	}
	if total <= 0 || math.IsInf(total, 0) {
		return -1, seaofstars.Preconditionf("weights sum to %v, want a finite value > 0", total)
	}

	target := rng.Float64() * total
	cumulative := 0.0
	last := -1
	for i, w := range weights {
		if w == 0 {
			continue
		}
		last = i
		cumulative += w
		if target < cumulative {
			return i, nil
		}
	}

	// Rounding can leave target at or above the final cumulative sum.
	return last, nil
}

// Draw returns one of items, weighted by weight(item).
//
// It fails with ErrPrecondition under the same conditions as DrawIndex.
func Draw[T any](rng *rand.Rand, items []T, weight func(T) float64) (T, error) {
	weights := make([]float64, len(items))
	for i, item := range items {
		weights[i] = weight(item)
	}
	var zero T
	idx, err := DrawIndex(rng, weights)
	if err != nil {
		return zero, err
	}
	return items[idx], nil
}

// DrawPaired draws from items using a parallel weights slice.
// Mismatched lengths fail with ErrPrecondition.
func DrawPaired[T any](rng *rand.Rand, items []T, weights []float64) (T, error) {
	var zero T
	if len(items) != len(weights) {
		return zero, seaofstars.Preconditionf("%d items but %d weights", len(items), len(weights))
	}
	idx, err := DrawIndex(rng, weights)
	if err != nil {
		return zero, err
	}
	return items[idx], nil
}
