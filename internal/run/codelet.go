package run

import "copycat/internal/randomness"

// Codelet is a pending unit of work: a named action with an urgency and
// the model time it was posted at. Codelets are inert values; the Rack
// decides which one surfaces next.
type Codelet struct {
	Name      string
	Urgency   float64
	Birthdate int
}

// NewCodelet stamps the codelet with the current model time.
func NewCodelet(name string, urgency float64, currentTime int) *Codelet {
	return &Codelet{
		Name:      name,
		Urgency:   urgency,
		Birthdate: currentTime,
	}
}

// Rack holds the codelets the active concepts keep suggesting. Fully
// active nodes repost their codelets every tick, so the rack's contents
// mirror where the network's attention currently is.
type Rack struct {
	pending []*Codelet
}

// NewRack returns an empty rack.
func NewRack() *Rack {
	return &Rack{}
}

// Post enqueues a codelet.
func (r *Rack) Post(codelet *Codelet) {
	r.pending = append(r.pending, codelet)
}

// Pending returns the queued codelets, oldest first.
func (r *Rack) Pending() []*Codelet {
	return r.pending
}

// Choose removes and returns one codelet, picked with probability
// proportional to urgency, or nil when the rack is empty.
func (r *Rack) Choose(rand *randomness.Randomness) *Codelet {
	if len(r.pending) == 0 {
		return nil
	}
	weights := make([]float64, len(r.pending))
	for i, codelet := range r.pending {
		weights[i] = codelet.Urgency
	}
	chosen, _ := randomness.WeightedChoice(rand, r.pending, weights)
	for i, codelet := range r.pending {
		if codelet == chosen {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			break
		}
	}
	return chosen
}

// Reset drops all pending codelets.
func (r *Rack) Reset() {
	r.pending = nil
}
