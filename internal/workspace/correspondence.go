package workspace

import "math"

// Correspondence pairs an initial-string object with a target-string
// object, justified by a set of concept mappings between their
// descriptions. The mappings that are slippages drive the rule's
// translation.
type Correspondence struct {
	Strengths

	workspace *Workspace

	ObjectFromInitial Object
	ObjectFromTarget  Object
	ConceptMappings   []*ConceptMapping
	FlipTargetObject  bool
}

// NewCorrespondence pairs the two objects under the given mappings.
// FlipTargetObject marks that the target group must be flipped for the
// pairing to hold.
func NewCorrespondence(workspace *Workspace, objectFromInitial, objectFromTarget Object,
	conceptMappings []*ConceptMapping, flipTargetObject bool) *Correspondence {
	return &Correspondence{
		workspace:         workspace,
		ObjectFromInitial: objectFromInitial,
		ObjectFromTarget:  objectFromTarget,
		ConceptMappings:   conceptMappings,
		FlipTargetObject:  flipTargetObject,
	}
}

// DistinguishingConceptMappings returns the mappings whose descriptors
// individuate both objects.
func (c *Correspondence) DistinguishingConceptMappings() []*ConceptMapping {
	var mappings []*ConceptMapping
	for _, m := range c.ConceptMappings {
		if m.Distinguishing() {
			mappings = append(mappings, m)
		}
	}
	return mappings
}

func (c *Correspondence) relevantDistinguishingMappings() []*ConceptMapping {
	var mappings []*ConceptMapping
	for _, m := range c.ConceptMappings {
		if m.Distinguishing() && m.Relevant() {
			mappings = append(mappings, m)
		}
	}
	return mappings
}

// UpdateInternalStrength scores the relevant distinguishing mappings:
// their average strength, a factor rising with their number, and a 2.5x
// coherence bonus when any pair of them supports each other.
func (c *Correspondence) UpdateInternalStrength() {
	mappings := c.relevantDistinguishingMappings()
	if len(mappings) == 0 {
		c.InternalStrength = 0.0
		return
	}
	totalStrength := 0.0
	for _, m := range mappings {
		totalStrength += m.Strength()
	}
	averageStrength := totalStrength / float64(len(mappings))
	var countFactor float64
	switch len(mappings) {
	case 1:
		countFactor = 0.8
	case 2:
		countFactor = 1.2
	default:
		countFactor = 1.6
	}
	coherenceFactor := 1.0
	if c.internallyCoherent() {
		coherenceFactor = 2.5
	}
	c.InternalStrength = math.Min(100.0, averageStrength*coherenceFactor*countFactor)
}

// UpdateExternalStrength is the support from compatible correspondences.
func (c *Correspondence) UpdateExternalStrength() {
	c.ExternalStrength = c.support()
}

// internallyCoherent reports whether any pair of relevant distinguishing
// mappings supports each other.
func (c *Correspondence) internallyCoherent() bool {
	mappings := c.relevantDistinguishingMappings()
	for i, m := range mappings {
		for j, other := range mappings {
			if i != j && m.Supports(other) {
				return true
			}
		}
	}
	return false
}

// support is full when either object spans its string as a lone letter;
// otherwise the total strength of supporting correspondences, capped at
// 100.
func (c *Correspondence) support() float64 {
	if letter, ok := c.ObjectFromInitial.(*Letter); ok && letter.SpansString() {
		return 100.0
	}
	if letter, ok := c.ObjectFromTarget.(*Letter); ok && letter.SpansString() {
		return 100.0
	}
	total := 0.0
	for _, other := range c.workspace.Correspondences() {
		if other != c && c.supporting(other) {
			total += other.TotalStrength
		}
	}
	return math.Min(total, 100.0)
}

// supporting reports whether other backs this correspondence: distinct
// objects, no incompatibility, and some pair of distinguishing mappings in
// agreement.
func (c *Correspondence) supporting(other *Correspondence) bool {
	if c == other ||
		c.ObjectFromInitial == other.ObjectFromInitial ||
		c.ObjectFromTarget == other.ObjectFromTarget ||
		c.Incompatible(other) {
		return false
	}
	for _, mapping := range c.DistinguishingConceptMappings() {
		for _, otherMapping := range other.DistinguishingConceptMappings() {
			if mapping.Supports(otherMapping) {
				return true
			}
		}
	}
	return false
}

// Incompatible reports whether the two correspondences claim an object in
// common or carry clashing concept mappings.
func (c *Correspondence) Incompatible(other *Correspondence) bool {
	if other == nil {
		return false
	}
	if c.ObjectFromInitial == other.ObjectFromInitial ||
		c.ObjectFromTarget == other.ObjectFromTarget {
		return true
	}
	for _, mapping := range c.ConceptMappings {
		for _, otherMapping := range other.ConceptMappings {
			if mapping.Incompatible(otherMapping) {
				return true
			}
		}
	}
	return false
}

// Slippages returns the mappings that actually change a concept.
func (c *Correspondence) Slippages() []*ConceptMapping {
	var slippages []*ConceptMapping
	for _, m := range c.ConceptMappings {
		if m.Slippage() {
			slippages = append(slippages, m)
		}
	}
	return slippages
}

// Build registers the correspondence, evicting whatever correspondence
// either object carried, and posts activation to the mapping labels.
func (c *Correspondence) Build() {
	workspace := c.workspace
	workspace.Structures = append(workspace.Structures, c)
	if existing := c.ObjectFromInitial.Base().Correspondence; existing != nil {
		existing.Break()
	}
	if existing := c.ObjectFromTarget.Base().Correspondence; existing != nil {
		existing.Break()
	}
	c.ObjectFromInitial.Base().Correspondence = c
	c.ObjectFromTarget.Base().Correspondence = c
	for _, mapping := range c.ConceptMappings {
		if mapping.Label != nil {
			mapping.Label.Buffer = 100.0
		}
	}
}

// Break detaches the correspondence from both objects and the workspace.
func (c *Correspondence) Break() {
	c.workspace.removeStructure(c)
	c.ObjectFromInitial.Base().Correspondence = nil
	c.ObjectFromTarget.Base().Correspondence = nil
}
