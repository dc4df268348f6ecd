package workspace

import (
	"math"

	"copycat/internal/slipnet"
)

// Group is a run of adjacent objects held together by bonds of one
// category, itself an object that can be bonded, grouped and corresponded
// further. A group derives its descriptions at construction time,
// including a probabilistic length description.
type Group struct {
	ObjectBase

	GroupCategory     *slipnet.Node
	DirectionCategory *slipnet.Node
	Facet             *slipnet.Node
	BondCategory      *slipnet.Node
	ObjectList        []Object
	BondList          []*Bond
	BondDescriptions  []*Description
}

// NewGroup spans the given objects and derives the group's descriptions:
// its category, direction (or the shared letter for sameness groups), its
// string position, and sometimes its length.
func NewGroup(s *String, groupCategory, directionCategory, facet *slipnet.Node,
	objects []Object, bonds []*Bond) *Group {
	net := s.workspace.net
	g := &Group{
		GroupCategory:     groupCategory,
		DirectionCategory: directionCategory,
		Facet:             facet,
		ObjectList:        objects,
		BondList:          bonds,
		BondCategory:      groupCategory.RelatedNode(net.BondCategory),
	}
	g.init(g, s)

	leftObject := objects[0].Base()
	rightObject := objects[len(objects)-1].Base()
	g.LeftIndex = leftObject.LeftIndex
	g.Leftmost = g.LeftIndex == 1
	g.RightIndex = rightObject.RightIndex
	g.Rightmost = g.RightIndex == s.Length()

	if len(bonds) > 0 {
		g.addBondDescription(NewDescription(g, net.BondFacet, bonds[0].Facet))
	}
	g.addBondDescription(NewDescription(g, net.BondCategory, g.BondCategory))

	g.AddDescription(net.ObjectCategory, net.Group)
	g.AddDescription(net.GroupCategory, g.GroupCategory)
	if g.DirectionCategory == nil {
		// sameness group: describe by the shared letter instead
		letter := objects[0].Base().GetDescriptor(g.Facet)
		g.AddDescription(g.Facet, letter)
	} else {
		g.AddDescription(net.DirectionCategory, g.DirectionCategory)
	}
	switch {
	case g.SpansString():
		g.AddDescription(net.StringPositionCategory, net.Whole)
	case g.Leftmost:
		g.AddDescription(net.StringPositionCategory, net.Leftmost)
	case g.Rightmost:
		g.AddDescription(net.StringPositionCategory, net.Rightmost)
	case g.MiddleObject():
		g.AddDescription(net.StringPositionCategory, net.Middle)
	}
	g.addLengthDescription()
	return g
}

// addLengthDescription sometimes describes the group by its size; small
// groups and an active length concept make that more likely.
func (g *Group) addLengthDescription() {
	workspace := g.workspace()
	probability := g.LengthDescriptionProbability()
	if workspace.rand.CoinFlip(probability) {
		length := len(g.ObjectList)
		if length < 6 {
			g.AddDescription(workspace.net.Length, workspace.net.Numbers[length-1])
		}
	}
}

// LengthDescriptionProbability decays steeply with group size and rises
// with the length concept's activation; results below 0.06 are floored to
// zero.
func (g *Group) LengthDescriptionProbability() float64 {
	workspace := g.workspace()
	length := len(g.ObjectList)
	if length > 5 {
		return 0.0
	}
	cubed := float64(length * length * length)
	exponent := cubed * (100.0 - workspace.net.Length.Activation) / 100.0
	probability := math.Pow(0.5, exponent)
	value := workspace.temp.AdjustedProbability(probability)
	if value < 0.06 {
		return 0.0
	}
	return value
}

// SingleLetterGroupProbability is the chance a lone letter deserves to be
// made a group, driven by local support and the length concept's
// activation.
func (g *Group) SingleLetterGroupProbability() float64 {
	workspace := g.workspace()
	supporters := g.numberOfLocalSupportingGroups()
	if supporters == 0 {
		return 0.0
	}
	exp := 1.0
	switch supporters {
	case 1:
		exp = 4.0
	case 2:
		exp = 2.0
	}
	support := g.localSupport() / 100.0
	activation := workspace.net.Length.Activation / 100.0
	supportedActivation := math.Pow(support*activation, exp)
	return workspace.temp.AdjustedProbability(supportedActivation)
}

// GetIncompatibleGroups walks up the group chains of the members; every
// enclosing group would clash with this one.
func (g *Group) GetIncompatibleGroups() []*Group {
	var result []*Group
	for _, object := range g.ObjectList {
		for group := object.Base().Group; group != nil; group = group.Group {
			result = append(result, group)
		}
	}
	return result
}

func (g *Group) addBondDescription(description *Description) {
	g.BondDescriptions = append(g.BondDescriptions, description)
}

// FlippedVersion reads the group the other way round: opposite category,
// opposite direction, every bond flipped.
func (g *Group) FlippedVersion() *Group {
	net := g.workspace().net
	flippedBonds := make([]*Bond, len(g.BondList))
	for i, bond := range g.BondList {
		flippedBonds[i] = bond.FlippedVersion()
	}
	return NewGroup(g.String,
		g.GroupCategory.RelatedNode(net.Opposite),
		g.DirectionCategory.RelatedNode(net.Opposite),
		g.Facet, g.ObjectList, flippedBonds)
}

// Build registers the group as an object and a structure, claims its
// members, and activates its descriptions.
func (g *Group) Build() {
	workspace := g.workspace()
	workspace.Objects = append(workspace.Objects, g)
	workspace.Structures = append(workspace.Structures, g)
	g.String.Objects = append(g.String.Objects, g)
	for _, object := range g.ObjectList {
		object.Base().Group = g
	}
	workspace.BuildDescriptions(g)
	g.activateDescriptions()
}

func (g *Group) activateDescriptions() {
	for _, description := range g.Descriptions {
		description.Descriptor.Buffer = 100.0
	}
}

// Break dismantles the group and everything hanging off it: its
// correspondence, any enclosing group, its edge bonds and its
// descriptions, then releases the members.
func (g *Group) Break() {
	workspace := g.workspace()
	if g.Correspondence != nil {
		g.Correspondence.Break()
	}
	if g.Group != nil {
		g.Group.Break()
	}
	if g.LeftBond != nil {
		g.LeftBond.Break()
	}
	if g.RightBond != nil {
		g.RightBond.Break()
	}
	for len(g.Descriptions) > 0 {
		g.Descriptions[len(g.Descriptions)-1].Break()
	}
	for _, object := range g.ObjectList {
		object.Base().Group = nil
	}
	workspace.removeStructure(g)
	workspace.removeObject(g)
	for i, object := range g.String.Objects {
		if object == Object(g) {
			g.String.Objects = append(g.String.Objects[:i], g.String.Objects[i+1:]...)
			break
		}
	}
}

// UpdateInternalStrength blends the bond category's association with a
// factor favoring longer groups; the tighter the bonds, the less length
// matters.
func (g *Group) UpdateInternalStrength() {
	net := g.workspace().net
	relatedBondAssociation := g.GroupCategory.RelatedNode(net.BondCategory).DegreeOfAssociation()
	bondWeight := math.Pow(relatedBondAssociation, 0.98)
	var lengthFactor float64
	switch len(g.ObjectList) {
	case 1:
		lengthFactor = 5.0
	case 2:
		lengthFactor = 20.0
	case 3:
		lengthFactor = 60.0
	default:
		lengthFactor = 90.0
	}
	g.InternalStrength = WeightedAverage(
		WeightedValue{relatedBondAssociation, bondWeight},
		WeightedValue{lengthFactor, 100.0 - bondWeight},
	)
}

// UpdateExternalStrength is full for a string-spanning group, otherwise
// whatever local support the group has.
func (g *Group) UpdateExternalStrength() {
	if g.SpansString() {
		g.ExternalStrength = 100.0
	} else {
		g.ExternalStrength = g.localSupport()
	}
}

func (g *Group) localSupport() float64 {
	supporters := g.numberOfLocalSupportingGroups()
	if supporters == 0 {
		return 0.0
	}
	supportFactor := math.Min(1.0, math.Pow(0.6, 1.0/math.Pow(float64(supporters), 3)))
	densityFactor := 100.0 * math.Sqrt(g.localDensity()/100.0)
	return densityFactor * supportFactor
}

func (g *Group) numberOfLocalSupportingGroups() int {
	count := 0
	for _, object := range g.String.Objects {
		other, ok := object.(*Group)
		if !ok || !g.IsOutsideOf(other) {
			continue
		}
		if other.GroupCategory == g.GroupCategory &&
			other.DirectionCategory == g.DirectionCategory {
			count++
		}
	}
	return count
}

func (g *Group) localDensity() float64 {
	supporters := g.numberOfLocalSupportingGroups()
	halfLength := float64(g.String.Length()) / 2.0
	return 100.0 * float64(supporters) / halfLength
}

// SameGroup reports equality of extent, category, direction and facet.
func (g *Group) SameGroup(other *Group) bool {
	return g.LeftIndex == other.LeftIndex &&
		g.RightIndex == other.RightIndex &&
		g.GroupCategory == other.GroupCategory &&
		g.DirectionCategory == other.DirectionCategory &&
		g.Facet == other.Facet
}

// DistinguishingDescriptor reports whether no other group in the string
// carries the same descriptor.
func (g *Group) DistinguishingDescriptor(descriptor *slipnet.Node) bool {
	if !g.distinguishingDescriptor(descriptor) {
		return false
	}
	for _, o := range g.String.Objects {
		other, ok := o.(*Group)
		if !ok || other == g {
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
