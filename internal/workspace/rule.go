package workspace

import (
	"math"
	"strings"

	"copycat/internal/slipnet"
)

// Rule captures the observed change between the initial and modified
// strings as "replace <facet> of <descriptor> <category> by <relation>".
// An empty rule (nil facet) means nothing changed.
type Rule struct {
	Strengths

	workspace *Workspace

	Facet      *slipnet.Node
	Descriptor *slipnet.Node
	Category   *slipnet.Node
	Relation   *slipnet.Node
}

// NewRule builds a rule over the given concept nodes; any of them may be
// nil for the empty rule.
func NewRule(workspace *Workspace, facet, descriptor, category, relation *slipnet.Node) *Rule {
	return &Rule{
		workspace:  workspace,
		Facet:      facet,
		Descriptor: descriptor,
		Category:   category,
		Relation:   relation,
	}
}

func (r *Rule) String() string {
	if r.Facet == nil {
		return "empty rule"
	}
	return "replace " + r.Facet.Name + " of " + r.Descriptor.Name + " " +
		r.Category.Name + " by " + r.Relation.Name
}

// UpdateInternalStrength scores the rule on how close descriptor and
// relation are in depth, how deep they are on average, and whether the
// descriptor survives (modulo slippages) in the corresponded target
// object. A descriptor that does not survive zeroes the rule.
func (r *Rule) UpdateInternalStrength() {
	workspace := r.workspace
	if r.Descriptor == nil || r.Relation == nil {
		r.InternalStrength = 50.0
		return
	}
	averageDepth := (r.Descriptor.Depth + r.Relation.Depth) / 2.0
	averageDepth = math.Pow(averageDepth, 1.1)
	sharedDescriptorTerm := 0.0
	changed := workspace.changedObject()
	if changed != nil && changed.Base().Correspondence != nil {
		targetObject := changed.Base().Correspondence.ObjectFromTarget
		slippages := workspace.Slippages()
		node := applySlippages(r.Descriptor, slippages)
		if !targetObject.Base().Described(node) {
			r.InternalStrength = 0.0
			return
		}
		sharedDescriptorTerm = 100.0
	}
	conceptualHeight := (100.0 - r.Descriptor.Depth) / 10.0
	sharedDescriptorWeight := math.Pow(conceptualHeight, 1.4)
	depthDifference := 100.0 - math.Abs(r.Descriptor.Depth-r.Relation.Depth)
	r.InternalStrength = math.Min(100.0, WeightedAverage(
		WeightedValue{depthDifference, 12.0},
		WeightedValue{averageDepth, 18.0},
		WeightedValue{sharedDescriptorTerm, sharedDescriptorWeight},
	))
}

// UpdateExternalStrength mirrors the internal strength; a rule has no
// neighbors to support it.
func (r *Rule) UpdateExternalStrength() {
	r.ExternalStrength = r.InternalStrength
}

// Break unregisters the rule from the workspace.
func (r *Rule) Break() {
	r.workspace.BreakRule()
}

// Equal reports whether the two rules name the same change.
func (r *Rule) Equal(other *Rule) bool {
	if other == nil {
		return false
	}
	return r.Relation == other.Relation &&
		r.Facet == other.Facet &&
		r.Category == other.Category &&
		r.Descriptor == other.Descriptor
}

// ActivateRuleDescriptions posts full activation to the rule's concept
// nodes.
func (r *Rule) ActivateRuleDescriptions() {
	for _, node := range []*slipnet.Node{r.Relation, r.Facet, r.Category, r.Descriptor} {
		if node != nil {
			node.Buffer = 100.0
		}
	}
}

// IncompatibleRuleCorrespondence reports whether the given correspondence
// maps the changed object without mentioning the rule's descriptor.
func (r *Rule) IncompatibleRuleCorrespondence(correspondence *Correspondence) bool {
	if correspondence == nil {
		return false
	}
	changed := r.workspace.changedObject()
	if changed == nil || correspondence.ObjectFromInitial != changed {
		return false
	}
	for _, m := range correspondence.ConceptMappings {
		if m.InitialDescriptor == r.Descriptor {
			return true
		}
	}
	return false
}

// changeString applies the rule's relation to the changed substring:
// length rules shrink or grow the run, character rules step every letter
// through the alphabet or substitute the relation's own letter. Stepping
// off either end of the alphabet fails.
func (r *Rule) changeString(s string) (string, bool) {
	net := r.workspace.net
	if r.Facet == net.Length {
		switch r.Relation {
		case net.Predecessor:
			return s[:len(s)-1], true
		case net.Successor:
			return s + s[:1], true
		}
		return s, true
	}
	switch r.Relation {
	case net.Predecessor:
		if strings.ContainsRune(s, 'a') {
			return "", false
		}
		return shiftString(s, -1), true
	case net.Successor:
		if strings.ContainsRune(s, 'z') {
			return "", false
		}
		return shiftString(s, 1), true
	}
	return strings.ToLower(r.Relation.Name), true
}

func shiftString(s string, delta int) string {
	shifted := []byte(s)
	for i := range shifted {
		shifted[i] = byte(int(shifted[i]) + delta)
	}
	return string(shifted)
}

// BuildTranslatedRule translates the rule through the current slippages
// and applies it to the target string, producing the answer. It fails when
// the change is impossible or lands on more than one target object.
func (r *Rule) BuildTranslatedRule() (string, bool) {
	workspace := r.workspace
	if r.Descriptor == nil || r.Relation == nil {
		return workspace.TargetString, true
	}
	slippages := workspace.Slippages()
	r.Category = applySlippages(r.Category, slippages)
	r.Facet = applySlippages(r.Facet, slippages)
	r.Descriptor = applySlippages(r.Descriptor, slippages)
	r.Relation = applySlippages(r.Relation, slippages)
	var changeds []Object
	for _, o := range workspace.Target.Objects {
		if o.Base().Described(r.Descriptor) && o.Base().Described(r.Category) {
			changeds = append(changeds, o)
		}
	}
	if len(changeds) == 0 {
		return workspace.TargetString, true
	}
	if len(changeds) > 1 {
		return "", false
	}
	changed := changeds[0].Base()
	left := changed.LeftIndex - 1
	right := changed.RightIndex
	s := workspace.TargetString
	middle, ok := r.changeString(s[left:right])
	if !ok {
		return "", false
	}
	return s[:left] + middle + s[right:], true
}

// applySlippages translates a concept node through the mappings: the first
// slippage whose initial descriptor matches redirects to its target.
func applySlippages(node *slipnet.Node, slippages []*ConceptMapping) *slipnet.Node {
	for _, s := range slippages {
		if node == s.InitialDescriptor {
			return s.TargetDescriptor
		}
	}
	return node
}
