// Package randomness provides the seeded random source used by every
// probabilistic formula in the analogy engine: coin flips, uniform and
// weighted choices, probabilistic comparisons, and a coarse square-root
// noise injector. A Randomness constructed from the same seed produces the
// same sequence of decisions, which keeps whole runs reproducible.
package randomness

import (
	"math"
	"math/rand"
	"sort"
)

// Randomness wraps a seeded PRNG behind the handful of primitives the
// engine actually uses. It is not safe for concurrent use; each session
// owns its own instance.
type Randomness struct {
	rng *rand.Rand
}

// New returns a Randomness seeded with the given value.
func New(seed int64) *Randomness {
	return &Randomness{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0, 1).
func (r *Randomness) Float64() float64 {
	return r.rng.Float64()
}

// CoinFlip returns true with probability p.
func (r *Randomness) CoinFlip(p float64) bool {
	return r.rng.Float64() < p
}

// FairCoinFlip returns true with probability 0.5.
func (r *Randomness) FairCoinFlip() bool {
	return r.CoinFlip(0.5)
}

// Choice returns a uniformly chosen element of seq. It panics on an empty
// sequence; callers must not pass one.
func Choice[T any](r *Randomness, seq []T) T {
	return seq[r.rng.Intn(len(seq))]
}

// WeightedChoice picks an element of seq with probability proportional to
// its weight, via a cumulative-sum search. An empty sequence yields the
// zero value and ok=false; callers treat that as "no candidate", not an
// error. When every weight is zero the first element wins (the search
// lands on the first cumulative entry).
func WeightedChoice[T any](r *Randomness, seq []T, weights []float64) (T, bool) {
	var zero T
	if len(seq) == 0 {
		return zero, false
	}
	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		total += w
		cum[i] = total
	}
	target := r.rng.Float64() * total
	i := sort.SearchFloat64s(cum, target)
	if i >= len(seq) {
		i = len(seq) - 1
	}
	return seq[i], true
}

// WeightedGreaterThan returns true with probability first/(first+second),
// making strength comparisons probabilistic rather than strict. Two zero
// weights compare false.
func (r *Randomness) WeightedGreaterThan(first, second float64) bool {
	total := first + second
	if total == 0 {
		return false
	}
	return r.CoinFlip(first / total)
}

// SqrtBlur returns value +/- sqrt(value) by coin flip.
func (r *Randomness) SqrtBlur(value float64) float64 {
	root := math.Sqrt(value)
	if r.FairCoinFlip() {
		return value + root
	}
	return value - root
}
