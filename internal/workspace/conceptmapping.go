package workspace

import "copycat/internal/slipnet"

// ConceptMapping records that a descriptor of an initial-string object
// corresponds to a descriptor of a target-string object, e.g. rightmost ->
// leftmost. Label is the relation between the two descriptors (identity,
// opposite, ...), or nil when the descriptors are merely slip-linked with
// no labeled relation.
type ConceptMapping struct {
	InitialDescriptionType *slipnet.Node
	TargetDescriptionType  *slipnet.Node
	InitialDescriptor      *slipnet.Node
	TargetDescriptor       *slipnet.Node
	InitialObject          Object
	TargetObject           Object
	Label                  *slipnet.Node
}

// NewConceptMapping builds a mapping and derives its label from the
// relation linking the two descriptors.
func NewConceptMapping(initialDescriptionType, targetDescriptionType,
	initialDescriptor, targetDescriptor *slipnet.Node,
	initialObject, targetObject Object) *ConceptMapping {
	return &ConceptMapping{
		InitialDescriptionType: initialDescriptionType,
		TargetDescriptionType:  targetDescriptionType,
		InitialDescriptor:      initialDescriptor,
		TargetDescriptor:       targetDescriptor,
		InitialObject:          initialObject,
		TargetObject:           targetObject,
		Label:                  initialDescriptor.BondCategory(targetDescriptor),
	}
}

func (m *ConceptMapping) String() string {
	if m.Label != nil {
		return m.Label.Name
	}
	return "anonymous"
}

// degreeOfAssociation assumes the two descriptors are connected in the
// network by at most one link.
func (m *ConceptMapping) degreeOfAssociation() float64 {
	if m.InitialDescriptor == m.TargetDescriptor {
		return 100.0
	}
	for _, link := range m.InitialDescriptor.LateralSlipLinks {
		if link.Destination == m.TargetDescriptor {
			return link.DegreeOfAssociation()
		}
	}
	return 0.0
}

func (m *ConceptMapping) conceptualDepth() float64 {
	return (m.InitialDescriptor.Depth + m.TargetDescriptor.Depth) / 2.0
}

// Slippability is high for identical descriptors and drops with conceptual
// depth: deep concepts resist slipping.
func (m *ConceptMapping) Slippability() float64 {
	association := m.degreeOfAssociation()
	if association == 100.0 {
		return 100.0
	}
	depth := m.conceptualDepth() / 100.0
	return association * (1.0 - depth*depth)
}

// Strength grows with conceptual depth: a deep mapping that holds anyway
// is strong evidence.
func (m *ConceptMapping) Strength() float64 {
	association := m.degreeOfAssociation()
	if association == 100.0 {
		return 100.0
	}
	depth := m.conceptualDepth() / 100.0
	return association * (1.0 + depth*depth)
}

// Distinguishing reports whether both descriptors individuate their
// objects. whole -> whole never distinguishes.
func (m *ConceptMapping) Distinguishing() bool {
	net := m.InitialDescriptor.Net()
	if m.InitialDescriptor == net.Whole && m.TargetDescriptor == net.Whole {
		return false
	}
	if !m.InitialObject.DistinguishingDescriptor(m.InitialDescriptor) {
		return false
	}
	return m.TargetObject.DistinguishingDescriptor(m.TargetDescriptor)
}

func (m *ConceptMapping) sameInitialType(other *ConceptMapping) bool {
	return m.InitialDescriptionType == other.InitialDescriptionType
}

func (m *ConceptMapping) sameTargetType(other *ConceptMapping) bool {
	return m.TargetDescriptionType == other.TargetDescriptionType
}

func (m *ConceptMapping) sameTypes(other *ConceptMapping) bool {
	return m.sameInitialType(other) && m.sameTargetType(other)
}

func (m *ConceptMapping) sameInitialDescriptor(other *ConceptMapping) bool {
	return m.InitialDescriptor == other.InitialDescriptor
}

func (m *ConceptMapping) sameTargetDescriptor(other *ConceptMapping) bool {
	return m.TargetDescriptor == other.TargetDescriptor
}

func (m *ConceptMapping) sameDescriptors(other *ConceptMapping) bool {
	return m.sameInitialDescriptor(other) && m.sameTargetDescriptor(other)
}

// SameKind reports identical types and descriptors.
func (m *ConceptMapping) SameKind(other *ConceptMapping) bool {
	return m.sameTypes(other) && m.sameDescriptors(other)
}

// NearlySameKind reports identical types and initial descriptor.
func (m *ConceptMapping) NearlySameKind(other *ConceptMapping) bool {
	return m.sameTypes(other) && m.sameInitialDescriptor(other)
}

// IsContainedBy reports whether some mapping in the list is the same kind.
func (m *ConceptMapping) IsContainedBy(mappings []*ConceptMapping) bool {
	for _, mapping := range mappings {
		if m.SameKind(mapping) {
			return true
		}
	}
	return false
}

// IsNearlyContainedBy reports whether some mapping in the list is nearly
// the same kind.
func (m *ConceptMapping) IsNearlyContainedBy(mappings []*ConceptMapping) bool {
	for _, mapping := range mappings {
		if m.NearlySameKind(mapping) {
			return true
		}
	}
	return false
}

// Related reports whether the initial descriptors are related or the
// target descriptors are.
func (m *ConceptMapping) Related(other *ConceptMapping) bool {
	if m.InitialDescriptor.Related(other.InitialDescriptor) {
		return true
	}
	return m.TargetDescriptor.Related(other.TargetDescriptor)
}

// Incompatible reports whether two mappings pull related descriptors in
// different directions. E.g. rightmost -> leftmost is incompatible with
// right -> right, since rightmost is linked to right but the relations
// (opposite and identity) differ. Only links are consulted, not distances.
func (m *ConceptMapping) Incompatible(other *ConceptMapping) bool {
	if !m.Related(other) {
		return false
	}
	if m.Label == nil || other.Label == nil {
		return false
	}
	return m.Label != other.Label
}

// Supports reports whether two mappings pull related descriptors the same
// way. E.g. rightmost -> rightmost supports right -> right. Two mappings
// with the same descriptors always support each other even when unlabeled,
// so letter -> group supports letter -> group.
func (m *ConceptMapping) Supports(other *ConceptMapping) bool {
	if m.sameDescriptors(other) {
		return true
	}
	if !m.Related(other) {
		return false
	}
	if m.Label == nil || other.Label == nil {
		return false
	}
	return m.Label == other.Label
}

// Relevant reports whether both description types are fully active.
func (m *ConceptMapping) Relevant() bool {
	return m.InitialDescriptionType.FullyActive() &&
		m.TargetDescriptionType.FullyActive()
}

// Slippage reports whether the mapping actually changes the concept:
// anything not labeled sameness or identity.
func (m *ConceptMapping) Slippage() bool {
	net := m.InitialDescriptor.Net()
	return m.Label != net.Sameness && m.Label != net.Identity
}

// SymmetricVersion returns the reverse mapping when the relation is not
// symmetric, otherwise the mapping itself.
func (m *ConceptMapping) SymmetricVersion() *ConceptMapping {
	if !m.Slippage() {
		return m
	}
	if m.TargetDescriptor.BondCategory(m.InitialDescriptor) == m.Label {
		return m
	}
	return NewConceptMapping(
		m.TargetDescriptionType, m.InitialDescriptionType,
		m.TargetDescriptor, m.InitialDescriptor,
		m.InitialObject, m.TargetObject)
}
