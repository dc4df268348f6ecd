// Package temperature implements the global control value that biases how
// deterministic the engine's choices are. Temperature runs from 100 (fully
// random) down to 0 (fully committed); it is fed each tick from workspace
// unhappiness and rule weakness, and stays clamped at 100 for an initial
// settling window so early structures do not freeze the run.
package temperature

import "math"

// clampTime is the codelet time before which temperature reads as 100
// regardless of the fed value.
const clampTime = 30

// Temperature holds the current global temperature and its clamp state.
type Temperature struct {
	actual        float64
	lastUnclamped float64
	clamped       bool
}

// New returns a temperature clamped at 100.
func New() *Temperature {
	t := &Temperature{}
	t.Reset()
	return t
}

// Reset restores the initial clamped, fully hot state.
func (t *Temperature) Reset() {
	t.actual = 100.0
	t.lastUnclamped = 100.0
	t.clamped = true
}

// Update feeds a new temperature value. While clamped the actual value
// stays at 100 but the fed value is remembered.
func (t *Temperature) Update(value float64) {
	t.lastUnclamped = value
	if t.clamped {
		t.actual = 100.0
	} else {
		t.actual = value
	}
}

// TryUnclamp releases the clamp once the scheduler clock passes the
// settling window.
func (t *Temperature) TryUnclamp(currentTime int) {
	if t.clamped && currentTime >= clampTime {
		t.clamped = false
	}
}

// Clamped reports whether the settling clamp is still in force.
func (t *Temperature) Clamped() bool {
	return t.clamped
}

// Value returns the effective temperature.
func (t *Temperature) Value() float64 {
	if t.clamped {
		return 100.0
	}
	return t.actual
}

// LastUnclampedValue returns the most recently fed value, ignoring the
// clamp. Useful for reporting the temperature an answer was found at.
func (t *Temperature) LastUnclampedValue() float64 {
	return t.lastUnclamped
}

// AdjustedProbability bends an input probability according to temperature:
// hot temperatures flatten it toward 0.5 (more randomness), cold
// temperatures sharpen it toward its extreme. 0, 0.5 and 1 are fixed
// points, and the mapping is monotonic in temperature. The exponent family
// is the same one AdjustedValue uses.
func (t *Temperature) AdjustedProbability(value float64) float64 {
	if value == 0 || value == 0.5 {
		return value
	}
	if value < 0.5 {
		return 1.0 - t.AdjustedProbability(1.0-value)
	}
	sharpness := (100.0-t.Value())/30.0 + 0.5
	adjusted := 0.5 + 0.5*math.Pow(2.0*value-1.0, 1.0/sharpness)
	return math.Min(adjusted, 1.0)
}

// AdjustedValue sharpens a raw selection weight as temperature falls:
// value^((100-t)/30 + 0.5). At full heat this is close to a square root
// (flattening differences); when cold it strongly favors large values.
func (t *Temperature) AdjustedValue(value float64) float64 {
	return math.Pow(value, (100.0-t.Value())/30.0+0.5)
}
