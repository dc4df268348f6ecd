package slipnet

// Link is a directed edge between two nodes. The optional Label is itself a
// node naming the relation; FixedLength zero means the length derives from
// the label. Links are immutable after construction.
type Link struct {
	Source      *Node
	Destination *Node
	Label       *Node
	FixedLength float64
}

func newLink(source, destination, label *Node, length float64) *Link {
	l := &Link{
		Source:      source,
		Destination: destination,
		Label:       label,
		FixedLength: length,
	}
	source.Outgoing = append(source.Outgoing, l)
	destination.Incoming = append(destination.Incoming, l)
	return l
}

// DegreeOfAssociation is 100 minus the fixed length when one is set (or the
// link is unlabeled); otherwise the label node's own degree of association
// decides how tightly the relation binds.
func (l *Link) DegreeOfAssociation() float64 {
	if l.FixedLength > 0 || l.Label == nil {
		return 100.0 - l.FixedLength
	}
	return l.Label.DegreeOfAssociation()
}

// IntrinsicDegreeOfAssociation is the variant used for activation
// spreading: it prefers the fixed length whenever it exceeds 1, then the
// label's intrinsic length, else contributes nothing.
func (l *Link) IntrinsicDegreeOfAssociation() float64 {
	if l.FixedLength > 1 {
		return 100.0 - l.FixedLength
	}
	if l.Label != nil {
		return 100.0 - l.Label.IntrinsicLinkLength
	}
	return 0.0
}

// spreadActivation credits the destination's buffer by the intrinsic
// degree of association.
func (l *Link) spreadActivation() {
	l.Destination.Buffer += l.IntrinsicDegreeOfAssociation()
}

// PointsAt reports whether the link terminates at other.
func (l *Link) PointsAt(other *Node) bool {
	return l.Destination == other
}
