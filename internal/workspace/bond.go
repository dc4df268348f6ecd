package workspace

import (
	"math"

	"copycat/internal/slipnet"
)

// Bond relates two adjacent objects in a string along one facet, e.g. a
// successor bond from b to c on letterCategory. Direction is derived from
// the objects' order and cleared for sameness bonds.
type Bond struct {
	Strengths

	workspace *Workspace

	Source                *ObjectBase
	Destination           *ObjectBase
	LeftObject            *ObjectBase
	RightObject           *ObjectBase
	String                *String
	Category              *slipnet.Node
	DirectionCategory     *slipnet.Node
	Facet                 *slipnet.Node
	SourceDescriptor      *slipnet.Node
	DestinationDescriptor *slipnet.Node
}

// NewBond orients the bond left-to-right regardless of which end was the
// source. A bond between identical descriptors carries no direction.
func NewBond(workspace *Workspace, source, destination Object,
	category, facet, sourceDescriptor, destinationDescriptor *slipnet.Node) *Bond {
	net := workspace.net
	b := &Bond{
		workspace:             workspace,
		Source:                source.Base(),
		Destination:           destination.Base(),
		String:                source.Base().String,
		Category:              category,
		Facet:                 facet,
		SourceDescriptor:      sourceDescriptor,
		DestinationDescriptor: destinationDescriptor,
	}
	b.LeftObject = b.Source
	b.RightObject = b.Destination
	b.DirectionCategory = net.Right
	if b.Source.LeftIndex > b.Destination.RightIndex {
		b.LeftObject = b.Destination
		b.RightObject = b.Source
		b.DirectionCategory = net.Left
	}
	if sourceDescriptor == destinationDescriptor {
		b.DirectionCategory = nil
	}
	return b
}

// FlippedVersion is the same bond read the other way: source and
// destination swapped, category replaced by its opposite.
func (b *Bond) FlippedVersion() *Bond {
	net := b.workspace.net
	return NewBond(b.workspace,
		b.Destination.owner, b.Source.owner,
		b.Category.RelatedNode(net.Opposite),
		b.Facet, b.DestinationDescriptor, b.SourceDescriptor)
}

// Build registers the bond with the workspace, the string and both
// objects, and posts activation to its category nodes.
func (b *Bond) Build() {
	b.workspace.Structures = append(b.workspace.Structures, b)
	b.String.Bonds = append(b.String.Bonds, b)
	b.Category.Buffer = 100.0
	if b.DirectionCategory != nil {
		b.DirectionCategory.Buffer = 100.0
	}
	b.LeftObject.RightBond = b
	b.RightObject.LeftBond = b
	b.LeftObject.Bonds = append(b.LeftObject.Bonds, b)
	b.RightObject.Bonds = append(b.RightObject.Bonds, b)
}

// Break removes the bond from everything Build attached it to.
func (b *Bond) Break() {
	b.workspace.removeStructure(b)
	for i, bond := range b.String.Bonds {
		if bond == b {
			b.String.Bonds = append(b.String.Bonds[:i], b.String.Bonds[i+1:]...)
			break
		}
	}
	b.LeftObject.RightBond = nil
	b.RightObject.LeftBond = nil
	b.LeftObject.Bonds = removeBond(b.LeftObject.Bonds, b)
	b.RightObject.Bonds = removeBond(b.RightObject.Bonds, b)
}

func removeBond(bonds []*Bond, bond *Bond) []*Bond {
	for i, candidate := range bonds {
		if candidate == bond {
			return append(bonds[:i], bonds[i+1:]...)
		}
	}
	return bonds
}

// GetIncompatibleCorrespondences returns correspondences that pin a string
// edge to an object whose existing bond runs against this bond's
// direction.
func (b *Bond) GetIncompatibleCorrespondences() []*Correspondence {
	workspace := b.workspace
	var incompatibles []*Correspondence
	if b.LeftObject.Leftmost && b.LeftObject.Correspondence != nil {
		correspondence := b.LeftObject.Correspondence
		var object *ObjectBase
		if b.String == workspace.Initial {
			object = correspondence.ObjectFromTarget.Base()
		} else {
			object = correspondence.ObjectFromInitial.Base()
		}
		if object.Leftmost && object.RightBond != nil {
			if object.RightBond.DirectionCategory != nil &&
				object.RightBond.DirectionCategory != b.DirectionCategory {
				incompatibles = append(incompatibles, correspondence)
			}
		}
	}
	if b.RightObject.Rightmost && b.RightObject.Correspondence != nil {
		correspondence := b.RightObject.Correspondence
		var object *ObjectBase
		if b.String == workspace.Initial {
			object = correspondence.ObjectFromTarget.Base()
		} else {
			object = correspondence.ObjectFromInitial.Base()
		}
		if object.Rightmost && object.LeftBond != nil {
			if object.LeftBond.DirectionCategory != nil &&
				object.LeftBond.DirectionCategory != b.DirectionCategory {
				incompatibles = append(incompatibles, correspondence)
			}
		}
	}
	return incompatibles
}

// UpdateInternalStrength scales the category's bond association by member
// compatibility (same-kind ends bind better) and by the facet
// (letterCategory bonds are stronger than length bonds).
func (b *Bond) UpdateInternalStrength() {
	sourceGap := b.Source.LeftIndex != b.Source.RightIndex
	destinationGap := b.Destination.LeftIndex != b.Destination.RightIndex
	memberCompatibility := 0.7
	if sourceGap == destinationGap {
		memberCompatibility = 1.0
	}
	facetFactor := 0.7
	if b.Facet == b.workspace.net.LetterCategory {
		facetFactor = 1.0
	}
	b.InternalStrength = math.Min(100.0,
		memberCompatibility*facetFactor*b.Category.BondDegreeOfAssociation())
}

// UpdateExternalStrength takes support from like bonds elsewhere in the
// string, zero when the bond stands alone.
func (b *Bond) UpdateExternalStrength() {
	b.ExternalStrength = 0.0
	supporters := b.numberOfLocalSupportingBonds()
	if supporters == 0 {
		return
	}
	density := b.localDensity() / 100.0
	density = math.Sqrt(density) * 100.0
	supportFactor := math.Pow(0.6, 1.0/math.Pow(float64(supporters), 3))
	supportFactor = math.Max(1.0, supportFactor)
	b.ExternalStrength = supportFactor * density
}

func (b *Bond) numberOfLocalSupportingBonds() int {
	count := 0
	for _, bond := range b.String.Bonds {
		if b.LeftObject.LetterDistance(bond.LeftObject.owner) != 0 &&
			b.RightObject.LetterDistance(bond.RightObject.owner) != 0 &&
			b.Category == bond.Category &&
			b.DirectionCategory == bond.DirectionCategory {
			count++
		}
	}
	return count
}

func (b *Bond) sameCategories(other *Bond) bool {
	return b.Category == other.Category && b.DirectionCategory == other.DirectionCategory
}

func (b *Bond) myEnds(object1, object2 Object) bool {
	if b.Source == object1.Base() && b.Destination == object2.Base() {
		return true
	}
	return b.Source == object2.Base() && b.Destination == object1.Base()
}

// localDensity is a rough measure of how much of the string is already
// covered by bonds of this category and direction: filled adjacent slots
// over all adjacent slots.
func (b *Bond) localDensity() float64 {
	workspace := b.workspace
	slotSum := 0.0
	supportSum := 0.0
	for _, object1 := range workspace.Objects {
		if object1.Base().String != b.String {
			continue
		}
		for _, object2 := range workspace.Objects {
			if !object1.Base().Beside(object2) {
				continue
			}
			slotSum += 1.0
			for _, bond := range b.String.Bonds {
				if bond != b && b.sameCategories(bond) && bond.myEnds(object1, object2) {
					supportSum += 1.0
				}
			}
		}
	}
	if slotSum == 0.0 {
		return 0.0
	}
	return 100.0 * supportSum / slotSum
}

func (b *Bond) sameNeighbors(other *Bond) bool {
	return b.LeftObject == other.LeftObject || b.RightObject == other.RightObject
}

// GetIncompatibleBonds returns the string's bonds sharing an end with this
// one.
func (b *Bond) GetIncompatibleBonds() []*Bond {
	var incompatible []*Bond
	for _, bond := range b.String.Bonds {
		if b.sameNeighbors(bond) {
			incompatible = append(incompatible, bond)
		}
	}
	return incompatible
}

// PossibleGroupBonds selects or adapts the given bonds so a group of this
// bond's category and direction could absorb them. A bond agreeing on
// category and direction passes through; one differing in both may be
// flipped to fit unless sameness is involved; anything else rules the
// group out.
func (b *Bond) PossibleGroupBonds(bonds []*Bond) []*Bond {
	net := b.workspace.net
	var result []*Bond
	for _, bond := range bonds {
		if bond.Category == b.Category && bond.DirectionCategory == b.DirectionCategory {
			result = append(result, bond)
			continue
		}
		if bond.Category == b.Category {
			return nil
		}
		if bond.DirectionCategory == b.DirectionCategory {
			return nil
		}
		if b.Category == net.Sameness || bond.Category == net.Sameness {
			return nil
		}
		result = append(result, NewBond(b.workspace,
			bond.Destination.owner, bond.Source.owner,
			b.Category, b.Facet,
			bond.DestinationDescriptor, bond.SourceDescriptor))
	}
	return result
}
