package slipnet

import (
	"math"

	"copycat/internal/randomness"
)

// jumpThreshold is the activation above which a node may probabilistically
// snap to full activation during integration.
const jumpThreshold = 55.0

// fullActivationMargin absorbs float drift when testing for full activation.
const fullActivationMargin = 1e-5

// Node is a single concept in the network. Activation is always kept in
// [0, 100]; Buffer accumulates pending deltas within a tick and is zeroed
// when the tick integrates. A clamped node ignores decay and integration
// and stays at 100.
type Node struct {
	net *Slipnet

	Name                string
	Depth               float64 // conceptual depth, 0-100; deeper decays less
	IntrinsicLinkLength float64
	ShrunkLinkLength    float64 // 0.4 * intrinsic, used when fully active

	Activation float64
	Buffer     float64
	Clamped    bool

	// Ownership sets of links by role. Outgoing holds every link leaving
	// this node regardless of role; Incoming the mirror.
	CategoryLinks       []*Link
	InstanceLinks       []*Link
	PropertyLinks       []*Link
	LateralSlipLinks    []*Link
	LateralNonSlipLinks []*Link
	Incoming            []*Link
	Outgoing            []*Link

	// Codelets names the scheduler actions this concept suggests when
	// active. The scheduler itself lives outside this module.
	Codelets []string
}

func newNode(net *Slipnet, name string, depth, length float64) *Node {
	return &Node{
		net:                 net,
		Name:                name,
		Depth:               depth,
		IntrinsicLinkLength: length,
		ShrunkLinkLength:    length * 0.4,
	}
}

// Net returns the network this node belongs to.
func (n *Node) Net() *Slipnet {
	return n.net
}

// Reset zeroes activation and buffer.
func (n *Node) Reset() {
	n.Buffer = 0.0
	n.Activation = 0.0
}

// ClampHigh forces activation to 100 and marks the node immune to decay
// and integration until unclamped.
func (n *Node) ClampHigh() {
	n.Clamped = true
	n.Activation = 100.0
}

// Unclamp lets the node's activation evolve normally again.
func (n *Node) Unclamp() {
	n.Clamped = false
}

// Category returns the node reached by the first category link, or nil.
func (n *Node) Category() *Node {
	if len(n.CategoryLinks) == 0 {
		return nil
	}
	return n.CategoryLinks[0].Destination
}

// FullyActive reports whether activation is at the ceiling, within a small
// float margin.
func (n *Node) FullyActive() bool {
	return n.Activation > 100.0-fullActivationMargin
}

// DegreeOfAssociation is 100 minus the node's link length, using the shrunk
// length while the node is fully active.
func (n *Node) DegreeOfAssociation() float64 {
	length := n.IntrinsicLinkLength
	if n.FullyActive() {
		length = n.ShrunkLinkLength
	}
	return 100.0 - length
}

// BondDegreeOfAssociation is the boosted association used when this node
// labels a bond category: sqrt(100 - length) * 11, capped at 100.
func (n *Node) BondDegreeOfAssociation() float64 {
	length := n.IntrinsicLinkLength
	if n.FullyActive() {
		length = n.ShrunkLinkLength
	}
	return math.Min(100.0, math.Sqrt(100.0-length)*11.0)
}

// Linked reports whether other is the destination of any outgoing link.
func (n *Node) Linked(other *Node) bool {
	for _, l := range n.Outgoing {
		if l.PointsAt(other) {
			return true
		}
	}
	return false
}

// SlipLinked reports whether other is reachable by a lateral slip link.
func (n *Node) SlipLinked(other *Node) bool {
	for _, l := range n.LateralSlipLinks {
		if l.PointsAt(other) {
			return true
		}
	}
	return false
}

// Related reports same-or-linked.
func (n *Node) Related(other *Node) bool {
	return n == other || n.Linked(other)
}

// RelatedNode returns the node linked to this one by the given relation
// label, or nil if no such link exists. The identity relation returns the
// node itself.
func (n *Node) RelatedNode(relation *Node) *Node {
	if relation == n.net.Identity {
		return n
	}
	for _, l := range n.Outgoing {
		if l.Label == relation {
			return l.Destination
		}
	}
	return nil
}

// BondCategory returns the label of the link from this node to destination,
// or nil if the nodes are unlinked. A node maps to itself by identity.
func (n *Node) BondCategory(destination *Node) *Node {
	if n == destination {
		return n.net.Identity
	}
	for _, l := range n.Outgoing {
		if l.Destination == destination {
			return l.Label
		}
	}
	return nil
}

// decay charges the buffer with this tick's activation loss. Deeper
// concepts decay less.
func (n *Node) decay() {
	n.Buffer -= n.Activation * (100.0 - n.Depth) / 100.0
}

// spreadActivation pushes activation into each outgoing link's destination
// buffer. Only fully active nodes spread.
func (n *Node) spreadActivation() {
	if !n.FullyActive() {
		return
	}
	for _, l := range n.Outgoing {
		l.spreadActivation()
	}
}

// addBuffer integrates the pending delta and clamps to [0, 100]. Clamped
// nodes ignore the delta; the range clamp applies either way.
func (n *Node) addBuffer() {
	if !n.Clamped {
		n.Activation += n.Buffer
	}
	n.Activation = math.Min(math.Max(0.0, n.Activation), 100.0)
}

// jump may snap a moderately active node straight to full activation:
// above the threshold, probability (activation/100)^3.
func (n *Node) jump(random *randomness.Randomness) {
	if n.Clamped || n.Activation <= jumpThreshold {
		return
	}
	p := math.Pow(n.Activation/100.0, 3)
	if random.CoinFlip(p) {
		n.Activation = 100.0
	}
}
