package workspace

import "copycat/internal/slipnet"

// Letter is a single character of a puzzle string, occupying one position.
type Letter struct {
	ObjectBase
}

// newLetter places a letter at the 1-based position in a string of the
// given length and registers it with the string and the workspace.
func newLetter(s *String, position, length int) *Letter {
	l := &Letter{}
	l.init(l, s)
	l.LeftIndex = position
	l.RightIndex = position
	l.Leftmost = position == 1
	l.Rightmost = position == length
	workspace := s.workspace
	workspace.Objects = append(workspace.Objects, l)
	s.Objects = append(s.Objects, l)
	return l
}

// describe attaches the positional descriptions the letter's placement
// warrants.
func (l *Letter) describe(position, length int) {
	net := l.workspace().net
	if length == 1 {
		l.AddDescription(net.StringPositionCategory, net.Single)
	}
	if l.Leftmost {
		l.AddDescription(net.StringPositionCategory, net.Leftmost)
	}
	if l.Rightmost {
		l.AddDescription(net.StringPositionCategory, net.Rightmost)
	}
	if position*2 == length+1 {
		l.AddDescription(net.StringPositionCategory, net.Middle)
	}
}

// Char returns the character this letter stands for.
func (l *Letter) Char() byte {
	return l.String.Text[l.LeftIndex-1]
}

// DistinguishingDescriptor reports whether no other letter in the string
// carries the same descriptor.
func (l *Letter) DistinguishingDescriptor(descriptor *slipnet.Node) bool {
	if !l.distinguishingDescriptor(descriptor) {
		return false
	}
	for _, o := range l.String.Objects {
		other, ok := o.(*Letter)
		if !ok || other == l {
			continue
		}
		for _, description := range other.Descriptions {
			if description.Descriptor == descriptor {
				return false
			}
		}
	}
	return true
}
