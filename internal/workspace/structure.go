// Package workspace implements the structures built over the puzzle
// strings during a run: letters, bonds, groups, correspondences,
// descriptions and rules, together with the shared strength/happiness/
// salience model every structure uses to decide how stable, important and
// salient it currently is. All strengths live in [0, 100] and are derived
// fresh each tick from current concept activations; nothing here persists
// across ticks.
package workspace

import "math"

// Structure is the contract every workspace structure implements. Concrete
// types embed Strengths and supply their own internal/external strength
// formulas plus a Break that removes every back-reference atomically.
type Structure interface {
	UpdateInternalStrength()
	UpdateExternalStrength()
	Strength() *Strengths
	Break()
}

// Strengths is the shared strength state embedded in every structure.
type Strengths struct {
	InternalStrength float64
	ExternalStrength float64
	TotalStrength    float64
}

// Strength returns the embedded strength state; it satisfies the Structure
// interface for embedders.
func (s *Strengths) Strength() *Strengths { return s }

// UpdateTotalStrength recombines internal and external strength into the
// total. The blend is self-weighted: internal strength weighs itself, and
// external strength gets the complement, so an already confident structure
// listens mostly to itself.
func (s *Strengths) UpdateTotalStrength() {
	s.TotalStrength = WeightedAverage(
		WeightedValue{s.InternalStrength, s.InternalStrength},
		WeightedValue{s.ExternalStrength, 100.0 - s.InternalStrength},
	)
}

// TotalWeakness is 100 minus total strength raised to 0.95. Note the
// exponent: a maximally strong structure still has weakness ~20.6.
func (s *Strengths) TotalWeakness() float64 {
	return 100.0 - math.Pow(s.TotalStrength, 0.95)
}

// UpdateStrength runs the full per-tick strength recomputation for a
// structure: internal, then external, then the total blend.
func UpdateStrength(s Structure) {
	s.UpdateInternalStrength()
	s.UpdateExternalStrength()
	s.Strength().UpdateTotalStrength()
}
