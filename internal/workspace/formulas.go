package workspace

import "copycat/internal/slipnet"

// WeightedValue pairs a value with its weight for WeightedAverage.
type WeightedValue struct {
	Value  float64
	Weight float64
}

// WeightedAverage returns the weighted mean of the given values, or 0 when
// the weights sum to zero.
func WeightedAverage(values ...WeightedValue) float64 {
	total := 0.0
	totalWeights := 0.0
	for _, v := range values {
		total += v.Value * v.Weight
		totalWeights += v.Weight
	}
	if totalWeights == 0.0 {
		return 0.0
	}
	return total / totalWeights
}

// localRelevance measures, among the string's non-spanning objects, the
// percentage whose right bond satisfies the predicate. A single
// non-spanning object avoids the zero denominator by scaling the match
// count directly.
func localRelevance(s *String, isRelevant func(Object) bool) float64 {
	notSpanning := 0.0
	matches := 0.0
	for _, o := range s.Objects {
		if o.Base().SpansString() {
			continue
		}
		notSpanning += 1.0
		if isRelevant(o) {
			matches += 1.0
		}
	}
	if notSpanning == 1.0 {
		return 100.0 * matches
	}
	return 100.0 * matches / (notSpanning - 1.0)
}

// LocalBondCategoryRelevance measures how dominant a bond category already
// is within a string.
func LocalBondCategoryRelevance(s *String, category *slipnet.Node) float64 {
	if len(s.Objects) == 1 {
		return 0.0
	}
	return localRelevance(s, func(o Object) bool {
		right := o.Base().RightBond
		return right != nil && right.Category == category
	})
}

// LocalDirectionCategoryRelevance measures how dominant a bond direction
// already is within a string.
func LocalDirectionCategoryRelevance(s *String, direction *slipnet.Node) float64 {
	return localRelevance(s, func(o Object) bool {
		right := o.Base().RightBond
		return right != nil && right.DirectionCategory == direction
	})
}

// GetMappings pairs up descriptions of the two objects that share a
// description type and whose descriptors are identical or slip-linked,
// returning a concept mapping for each such pair.
func GetMappings(objectFromInitial, objectFromTarget Object,
	initialDescriptions, targetDescriptions []*Description) []*ConceptMapping {
	var mappings []*ConceptMapping
	for _, initial := range initialDescriptions {
		for _, target := range targetDescriptions {
			if initial.DescriptionType != target.DescriptionType {
				continue
			}
			if initial.Descriptor == target.Descriptor ||
				initial.Descriptor.SlipLinked(target.Descriptor) {
				mappings = append(mappings, NewConceptMapping(
					initial.DescriptionType, target.DescriptionType,
					initial.Descriptor, target.Descriptor,
					objectFromInitial, objectFromTarget))
			}
		}
	}
	return mappings
}
