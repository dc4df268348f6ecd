package workspace

import "copycat/internal/slipnet"

// Object is a letter or a group sitting in one of the puzzle strings.
// Base exposes the shared state; DistinguishingDescriptor is the one
// behavior the concrete types answer differently.
type Object interface {
	Base() *ObjectBase
	DistinguishingDescriptor(descriptor *slipnet.Node) bool
}

// ObjectBase is the state shared by letters and groups: position within
// the string, attached structures, and the importance/happiness/salience
// values recomputed each tick. Indices are 1-based; Leftmost/Rightmost are
// cached against the string ends.
type ObjectBase struct {
	Strengths

	owner  Object
	String *String

	Descriptions   []*Description
	Bonds          []*Bond
	Group          *Group
	Correspondence *Correspondence
	Replacement    *Replacement
	LeftBond       *Bond
	RightBond      *Bond
	Changed        bool

	LeftIndex  int
	RightIndex int
	Leftmost   bool
	Rightmost  bool

	RawImportance      float64
	RelativeImportance float64

	IntraStringSalience    float64
	InterStringSalience    float64
	TotalSalience          float64
	IntraStringUnhappiness float64
	InterStringUnhappiness float64
	TotalUnhappiness       float64
}

func (b *ObjectBase) init(owner Object, s *String) {
	b.owner = owner
	b.String = s
}

// Base returns the shared object state.
func (b *ObjectBase) Base() *ObjectBase { return b }

func (b *ObjectBase) workspace() *Workspace { return b.String.workspace }

// SpansString reports whether the object covers its whole string.
func (b *ObjectBase) SpansString() bool {
	return b.Leftmost && b.Rightmost
}

// AddDescription attaches a new description of the given type.
func (b *ObjectBase) AddDescription(descriptionType, descriptor *slipnet.Node) {
	b.Descriptions = append(b.Descriptions, NewDescription(b.owner, descriptionType, descriptor))
}

// AddDescriptions copies over any of the given descriptions the object does
// not already carry, then registers all of its descriptions as built
// structures.
func (b *ObjectBase) AddDescriptions(descriptions []*Description) {
	copied := make([]*Description, len(descriptions))
	copy(copied, descriptions)
	for _, description := range copied {
		if !b.ContainsDescription(description) {
			b.AddDescription(description.DescriptionType, description.Descriptor)
		}
	}
	b.workspace().BuildDescriptions(b.owner)
}

func (b *ObjectBase) intraStringHappiness() float64 {
	if b.SpansString() {
		return 100.0
	}
	if b.Group != nil {
		return b.Group.TotalStrength
	}
	bondStrength := 0.0
	for _, bond := range b.Bonds {
		bondStrength += bond.TotalStrength
	}
	return bondStrength / 6.0
}

// rawImportance sums descriptor activations over all descriptions, with
// descriptions of inactive types discounted twentyfold. Grouped objects
// lose a third; the changed object counts double.
func (b *ObjectBase) rawImportance() float64 {
	result := 0.0
	for _, description := range b.Descriptions {
		if description.DescriptionType.FullyActive() {
			result += description.Descriptor.Activation
		} else {
			result += description.Descriptor.Activation / 20.0
		}
	}
	if b.Group != nil {
		result *= 2.0 / 3.0
	}
	if b.Changed {
		result *= 2.0
	}
	return result
}

// UpdateValue recomputes importance, unhappiness and salience from the
// object's current structures and descriptor activations.
func (b *ObjectBase) UpdateValue() {
	b.RawImportance = b.rawImportance()
	intraStringHappiness := b.intraStringHappiness()
	b.IntraStringUnhappiness = 100.0 - intraStringHappiness

	interStringHappiness := 0.0
	if b.Correspondence != nil {
		interStringHappiness = b.Correspondence.TotalStrength
	}
	b.InterStringUnhappiness = 100.0 - interStringHappiness

	averageHappiness := (intraStringHappiness + interStringHappiness) / 2.0
	b.TotalUnhappiness = 100.0 - averageHappiness

	b.IntraStringSalience = WeightedAverage(
		WeightedValue{b.RelativeImportance, 0.2},
		WeightedValue{b.IntraStringUnhappiness, 0.8},
	)
	b.InterStringSalience = WeightedAverage(
		WeightedValue{b.RelativeImportance, 0.8},
		WeightedValue{b.InterStringUnhappiness, 0.2},
	)
	b.TotalSalience = (b.IntraStringSalience + b.InterStringSalience) / 2.0
}

// IsWithin reports whether the object lies inside other's extent.
func (b *ObjectBase) IsWithin(other Object) bool {
	o := other.Base()
	return b.LeftIndex >= o.LeftIndex && b.RightIndex <= o.RightIndex
}

// IsOutsideOf reports whether the two extents are disjoint.
func (b *ObjectBase) IsOutsideOf(other Object) bool {
	o := other.Base()
	return b.LeftIndex > o.RightIndex || b.RightIndex < o.LeftIndex
}

// Beside reports same-string adjacency in either direction.
func (b *ObjectBase) Beside(other Object) bool {
	o := other.Base()
	if b.String != o.String {
		return false
	}
	return b.LeftIndex == o.RightIndex+1 || o.LeftIndex == b.RightIndex+1
}

// LetterDistance is the gap in letters between the two extents, zero when
// they touch or overlap.
func (b *ObjectBase) LetterDistance(other Object) int {
	o := other.Base()
	if o.LeftIndex > b.RightIndex {
		return o.LeftIndex - b.RightIndex
	}
	if b.LeftIndex > o.RightIndex {
		return b.LeftIndex - o.RightIndex
	}
	return 0
}

// LetterSpan is the number of letters the object covers.
func (b *ObjectBase) LetterSpan() int {
	return b.RightIndex - b.LeftIndex + 1
}

// RelevantDescriptions returns the descriptions whose type is fully active.
func (b *ObjectBase) RelevantDescriptions() []*Description {
	var relevant []*Description
	for _, d := range b.Descriptions {
		if d.DescriptionType.FullyActive() {
			relevant = append(relevant, d)
		}
	}
	return relevant
}

// GetPossibleDescriptions returns the instances of the description type
// that currently fit the object: first/last for the alphabet ends, a
// number matching a group's size, middle when flanked by the string ends.
func (b *ObjectBase) GetPossibleDescriptions(descriptionType *slipnet.Node) []*slipnet.Node {
	net := b.workspace().net
	var descriptions []*slipnet.Node
	for _, link := range descriptionType.InstanceLinks {
		node := link.Destination
		if node == net.First && b.Described(net.Letters[0]) {
			descriptions = append(descriptions, node)
		}
		if node == net.Last && b.Described(net.Letters[len(net.Letters)-1]) {
			descriptions = append(descriptions, node)
		}
		if group, ok := b.owner.(*Group); ok {
			for i, number := range net.Numbers {
				if node == number && len(group.ObjectList) == i+1 {
					descriptions = append(descriptions, node)
				}
			}
		}
		if node == net.Middle && b.MiddleObject() {
			descriptions = append(descriptions, node)
		}
	}
	return descriptions
}

// ContainsDescription reports whether an equivalent description is already
// attached.
func (b *ObjectBase) ContainsDescription(sought *Description) bool {
	for _, d := range b.Descriptions {
		if d.DescriptionType == sought.DescriptionType && d.Descriptor == sought.Descriptor {
			return true
		}
	}
	return false
}

// Described reports whether any description uses the given descriptor.
func (b *ObjectBase) Described(descriptor *slipnet.Node) bool {
	for _, d := range b.Descriptions {
		if d.Descriptor == descriptor {
			return true
		}
	}
	return false
}

// MiddleObject reports whether the object's left neighbor is leftmost and
// its right neighbor rightmost.
func (b *ObjectBase) MiddleObject() bool {
	leftIsLeftmost := false
	rightIsRightmost := false
	for _, o := range b.String.Objects {
		ob := o.Base()
		if ob.Leftmost && ob.RightIndex == b.LeftIndex-1 {
			leftIsLeftmost = true
		}
		if ob.Rightmost && ob.LeftIndex == b.RightIndex+1 {
			rightIsRightmost = true
		}
	}
	return leftIsLeftmost && rightIsRightmost
}

// RelevantDistinguishingDescriptors returns the descriptors of relevant
// descriptions that can individuate some object, by the network's rule
// alone.
func (b *ObjectBase) RelevantDistinguishingDescriptors() []*slipnet.Node {
	net := b.workspace().net
	var descriptors []*slipnet.Node
	for _, d := range b.RelevantDescriptions() {
		if net.IsDistinguishingDescriptor(d.Descriptor) {
			descriptors = append(descriptors, d.Descriptor)
		}
	}
	return descriptors
}

// GetDescriptor returns the descriptor attached under the given
// description type, or nil.
func (b *ObjectBase) GetDescriptor(descriptionType *slipnet.Node) *slipnet.Node {
	for _, description := range b.Descriptions {
		if description.DescriptionType == descriptionType {
			return description.Descriptor
		}
	}
	return nil
}

// GetDescriptionType returns the type under which the given descriptor is
// attached, or nil.
func (b *ObjectBase) GetDescriptionType(descriptor *slipnet.Node) *slipnet.Node {
	for _, description := range b.Descriptions {
		if description.Descriptor == descriptor {
			return description.DescriptionType
		}
	}
	return nil
}

// GetCommonGroups returns the objects in the string containing both this
// object and other.
func (b *ObjectBase) GetCommonGroups(other Object) []Object {
	var groups []Object
	for _, o := range b.String.Objects {
		if b.IsWithin(o) && other.Base().IsWithin(o) {
			groups = append(groups, o)
		}
	}
	return groups
}

// distinguishingDescriptor is the network-only check shared by both object
// kinds; the concrete types add their per-string uniqueness test.
func (b *ObjectBase) distinguishingDescriptor(descriptor *slipnet.Node) bool {
	return b.workspace().net.IsDistinguishingDescriptor(descriptor)
}
