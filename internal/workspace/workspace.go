package workspace

import (
	"math"

	"copycat/internal/randomness"
	"copycat/internal/slipnet"
	"copycat/internal/temperature"
)

// Workspace holds the three puzzle strings and every structure built over
// them, and aggregates their unhappiness into the values that feed the
// global temperature.
type Workspace struct {
	rand *randomness.Randomness
	net  *slipnet.Slipnet
	temp *temperature.Temperature

	InitialString  string
	ModifiedString string
	TargetString   string

	Initial  *String
	Modified *String
	Target   *String

	FinalAnswer   string
	HasAnswer     bool
	ChangedObject Object

	Objects    []Object
	Structures []Structure
	Rule       *Rule

	TotalUnhappiness       float64
	IntraStringUnhappiness float64
	InterStringUnhappiness float64
}

// New returns an empty workspace bound to the given network, randomness
// source and temperature.
func New(rand *randomness.Randomness, net *slipnet.Slipnet, temp *temperature.Temperature) *Workspace {
	return &Workspace{
		rand: rand,
		net:  net,
		temp: temp,
	}
}

// Net returns the concept network the workspace reads activations from.
func (w *Workspace) Net() *slipnet.Slipnet { return w.net }

// Rand returns the workspace's randomness source.
func (w *Workspace) Rand() *randomness.Randomness { return w.rand }

// Temperature returns the global temperature the workspace feeds.
func (w *Workspace) Temperature() *temperature.Temperature { return w.temp }

// ResetWithStrings clears all built structures and rebuilds the three
// strings with their letters and initial descriptions.
func (w *Workspace) ResetWithStrings(initial, modified, target string) error {
	w.InitialString = initial
	w.ModifiedString = modified
	w.TargetString = target
	return w.reset()
}

func (w *Workspace) reset() error {
	w.FinalAnswer = ""
	w.HasAnswer = false
	w.ChangedObject = nil
	w.Objects = nil
	w.Structures = nil
	w.Rule = nil
	var err error
	if w.Initial, err = newString(w, w.InitialString); err != nil {
		return err
	}
	if w.Modified, err = newString(w, w.ModifiedString); err != nil {
		return err
	}
	if w.Target, err = newString(w, w.TargetString); err != nil {
		return err
	}
	return nil
}

// adjustUnhappiness halves the importance-weighted sum and caps at 100.
func adjustUnhappiness(total float64) float64 {
	return math.Min(total/2.0, 100.0)
}

// CalculateIntraStringUnhappiness aggregates per-object intra-string
// unhappiness, weighted by relative importance.
func (w *Workspace) CalculateIntraStringUnhappiness() {
	total := 0.0
	for _, o := range w.Objects {
		total += o.Base().RelativeImportance * o.Base().IntraStringUnhappiness
	}
	w.IntraStringUnhappiness = adjustUnhappiness(total)
}

// CalculateInterStringUnhappiness aggregates per-object inter-string
// unhappiness, weighted by relative importance.
func (w *Workspace) CalculateInterStringUnhappiness() {
	total := 0.0
	for _, o := range w.Objects {
		total += o.Base().RelativeImportance * o.Base().InterStringUnhappiness
	}
	w.InterStringUnhappiness = adjustUnhappiness(total)
}

// CalculateTotalUnhappiness aggregates per-object total unhappiness,
// weighted by relative importance.
func (w *Workspace) CalculateTotalUnhappiness() {
	total := 0.0
	for _, o := range w.Objects {
		total += o.Base().RelativeImportance * o.Base().TotalUnhappiness
	}
	w.TotalUnhappiness = adjustUnhappiness(total)
}

// UpdateEverything recomputes every structure's strength and every
// object's value, then renormalizes importance and unhappiness per string.
func (w *Workspace) UpdateEverything() {
	for _, structure := range w.Structures {
		UpdateStrength(structure)
	}
	for _, o := range w.Objects {
		o.Base().UpdateValue()
	}
	if w.Initial != nil {
		w.Initial.UpdateRelativeImportance()
		w.Initial.UpdateIntraStringUnhappiness()
	}
	if w.Target != nil {
		w.Target.UpdateRelativeImportance()
		w.Target.UpdateIntraStringUnhappiness()
	}
}

// GetUpdatedTemperature derives the next temperature from total
// unhappiness (weight 0.8) and rule weakness (weight 0.2); no rule counts
// as a fully weak one.
func (w *Workspace) GetUpdatedTemperature() float64 {
	w.CalculateIntraStringUnhappiness()
	w.CalculateInterStringUnhappiness()
	w.CalculateTotalUnhappiness()
	ruleWeakness := 100.0
	if w.Rule != nil {
		UpdateStrength(w.Rule)
		ruleWeakness = 100.0 - w.Rule.TotalStrength
	}
	return WeightedAverage(
		WeightedValue{w.TotalUnhappiness, 0.8},
		WeightedValue{ruleWeakness, 0.2},
	)
}

func (w *Workspace) initialOrTargetObjects() []Object {
	var objects []Object
	for _, o := range w.Objects {
		if o.Base().String == w.Initial || o.Base().String == w.Target {
			objects = append(objects, o)
		}
	}
	return objects
}

// NumberOfUnrelatedObjects counts objects in the initial and target
// strings with at least one open bond slot.
func (w *Workspace) NumberOfUnrelatedObjects() int {
	count := 0
	for _, o := range w.initialOrTargetObjects() {
		base := o.Base()
		if base.SpansString() {
			continue
		}
		if (base.LeftBond == nil && !base.Leftmost) ||
			(base.RightBond == nil && !base.Rightmost) {
			count++
		}
	}
	return count
}

// NumberOfUngroupedObjects counts non-spanning objects in the initial and
// target strings that belong to no group.
func (w *Workspace) NumberOfUngroupedObjects() int {
	count := 0
	for _, o := range w.initialOrTargetObjects() {
		base := o.Base()
		if !base.SpansString() && base.Group == nil {
			count++
		}
	}
	return count
}

// NumberOfUnreplacedObjects counts initial-string letters with no
// replacement yet.
func (w *Workspace) NumberOfUnreplacedObjects() int {
	count := 0
	for _, o := range w.Objects {
		if _, ok := o.(*Letter); !ok {
			continue
		}
		base := o.Base()
		if base.String == w.Initial && base.Replacement == nil {
			count++
		}
	}
	return count
}

// NumberOfUncorrespondingObjects counts initial- and target-string
// objects with no correspondence yet.
func (w *Workspace) NumberOfUncorrespondingObjects() int {
	count := 0
	for _, o := range w.initialOrTargetObjects() {
		if o.Base().Correspondence == nil {
			count++
		}
	}
	return count
}

// NumberOfBonds counts the built bonds.
func (w *Workspace) NumberOfBonds() int {
	count := 0
	for _, structure := range w.Structures {
		if _, ok := structure.(*Bond); ok {
			count++
		}
	}
	return count
}

// Correspondences returns the built correspondences.
func (w *Workspace) Correspondences() []*Correspondence {
	var correspondences []*Correspondence
	for _, structure := range w.Structures {
		if c, ok := structure.(*Correspondence); ok {
			correspondences = append(correspondences, c)
		}
	}
	return correspondences
}

// Slippages collects the active slippages: the changed object's mappings
// plus every other initial-string correspondence's slippages not already
// nearly covered.
func (w *Workspace) Slippages() []*ConceptMapping {
	var result []*ConceptMapping
	if w.ChangedObject != nil && w.ChangedObject.Base().Correspondence != nil {
		result = append(result, w.ChangedObject.Base().Correspondence.ConceptMappings...)
	}
	if w.Initial == nil {
		return result
	}
	for _, o := range w.Initial.Objects {
		correspondence := o.Base().Correspondence
		if correspondence == nil {
			continue
		}
		for _, mapping := range correspondence.Slippages() {
			if !mapping.IsNearlyContainedBy(result) {
				result = append(result, mapping)
			}
		}
	}
	return result
}

// changedObject returns the initial-string object marked changed, or nil.
func (w *Workspace) changedObject() Object {
	if w.Initial == nil {
		return nil
	}
	for _, o := range w.Initial.Objects {
		if o.Base().Changed {
			return o
		}
	}
	return nil
}

// BuildRule installs a rule, replacing any previous one, and activates
// its concepts.
func (w *Workspace) BuildRule(rule *Rule) {
	if w.Rule != nil {
		w.removeStructure(w.Rule)
	}
	w.Rule = rule
	w.Structures = append(w.Structures, rule)
	rule.ActivateRuleDescriptions()
}

// BreakRule drops the current rule, if any.
func (w *Workspace) BreakRule() {
	if w.Rule != nil {
		w.removeStructure(w.Rule)
	}
	w.Rule = nil
}

// BuildDescriptions activates and registers every description the object
// carries.
func (w *Workspace) BuildDescriptions(object Object) {
	for _, description := range object.Base().Descriptions {
		description.DescriptionType.Buffer = 100.0
		description.Descriptor.Buffer = 100.0
		if !w.containsStructure(description) {
			w.Structures = append(w.Structures, description)
		}
	}
}

func (w *Workspace) containsStructure(sought Structure) bool {
	for _, structure := range w.Structures {
		if structure == sought {
			return true
		}
	}
	return false
}

func (w *Workspace) removeStructure(sought Structure) {
	for i, structure := range w.Structures {
		if structure == sought {
			w.Structures = append(w.Structures[:i], w.Structures[i+1:]...)
			return
		}
	}
}

func (w *Workspace) removeObject(sought Object) {
	for i, o := range w.Objects {
		if o == sought {
			w.Objects = append(w.Objects[:i], w.Objects[i+1:]...)
			return
		}
	}
}
