// Package run drives whole analogy trials: it owns one network, workspace
// and temperature per session, advances them in lockstep ticks, and runs
// the structure-building pipeline that turns a puzzle into an answer.
// Batches of sessions run concurrently, one session per trial.
package run

import (
	"fmt"

	"copycat/internal/randomness"
	"copycat/internal/slipnet"
	"copycat/internal/temperature"
	"copycat/internal/workspace"
)

// ticksPerPhase is how many ticks the network settles between pipeline
// phases.
const ticksPerPhase = 15

// Session holds one engine instance. Sessions are single-goroutine; run
// several sessions for parallelism, not one session from several
// goroutines.
type Session struct {
	rand  *randomness.Randomness
	net   *slipnet.Slipnet
	temp  *temperature.Temperature
	work  *workspace.Workspace
	rack  *Rack
	ticks int
}

// Answer is one trial's outcome.
type Answer struct {
	Text        string
	Temperature float64
	Ticks       int
}

// NewSession builds a fresh engine seeded with the given value.
func NewSession(seed int64) *Session {
	rand := randomness.New(seed)
	net := slipnet.New()
	temp := temperature.New()
	return &Session{
		rand: rand,
		net:  net,
		temp: temp,
		work: workspace.New(rand, net, temp),
		rack: NewRack(),
	}
}

// Workspace exposes the session's workspace.
func (s *Session) Workspace() *workspace.Workspace { return s.work }

// Net exposes the session's concept network.
func (s *Session) Net() *slipnet.Slipnet { return s.net }

// Temperature exposes the session's temperature.
func (s *Session) Temperature() *temperature.Temperature { return s.temp }

// Rack exposes the session's codelet rack.
func (s *Session) Rack() *Rack { return s.rack }

// Ticks returns the model time since the last reset.
func (s *Session) Ticks() int { return s.ticks }

// Reset clears all engine state and installs the puzzle strings.
func (s *Session) Reset(initial, modified, target string) error {
	s.ticks = 0
	s.net.Reset()
	s.temp.Reset()
	s.rack.Reset()
	return s.work.ResetWithStrings(initial, modified, target)
}

// Tick advances the whole engine by one step: workspace values first, then
// network activation, then temperature from the workspace's new state.
func (s *Session) Tick() {
	s.ticks++
	s.work.UpdateEverything()
	s.net.Update(s.rand)
	s.postSuggestedCodelets()
	s.temp.TryUnclamp(s.ticks)
	s.temp.Update(s.work.GetUpdatedTemperature())
}

// postSuggestedCodelets lets every fully active concept repost the
// codelets it suggests, at its own activation as urgency.
func (s *Session) postSuggestedCodelets() {
	for _, node := range s.net.Nodes {
		if !node.FullyActive() {
			continue
		}
		for _, name := range node.Codelets {
			s.rack.Post(NewCodelet(name, node.Activation, s.ticks))
		}
	}
}

// RunTicks advances the engine n ticks.
func (s *Session) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// RunTrial runs the full pipeline on the given puzzle: settle, find the
// replacements between initial and modified, map initial onto target,
// derive the rule, and translate it into an answer.
func (s *Session) RunTrial(initial, modified, target string) (Answer, error) {
	if err := s.Reset(initial, modified, target); err != nil {
		return Answer{}, err
	}
	s.RunTicks(ticksPerPhase)
	if err := s.findReplacements(); err != nil {
		return Answer{}, err
	}
	s.RunTicks(ticksPerPhase)
	s.buildCorrespondences()
	s.RunTicks(ticksPerPhase)
	s.buildRule()
	s.RunTicks(ticksPerPhase)
	text, ok := s.work.Rule.BuildTranslatedRule()
	if !ok {
		return Answer{}, fmt.Errorf("no translation for %q -> %q on %q", initial, modified, target)
	}
	s.work.FinalAnswer = text
	s.work.HasAnswer = true
	return Answer{
		Text:        text,
		Temperature: s.temp.LastUnclampedValue(),
		Ticks:       s.ticks,
	}, nil
}

// findReplacements pairs each initial-string letter with the
// modified-string letter at the same position and records the relation
// between them. The first letter that did not stay the same becomes the
// changed object.
func (s *Session) findReplacements() error {
	work := s.work
	net := s.net
	if work.Initial.Length() != work.Modified.Length() {
		return fmt.Errorf("strings %q and %q differ in length", work.InitialString, work.ModifiedString)
	}
	for i, letter := range work.Initial.Letters {
		modified := work.Modified.Letters[i]
		var relation *slipnet.Node
		switch int(modified.Char()) - int(letter.Char()) {
		case 0:
			relation = net.Sameness
		case 1:
			relation = net.Successor
		case -1:
			relation = net.Predecessor
		}
		replacement := workspace.NewReplacement(letter, modified, relation)
		letter.Replacement = replacement
		if relation != net.Sameness {
			letter.Changed = true
			if work.ChangedObject == nil {
				work.ChangedObject = letter
			}
		}
	}
	return nil
}

// buildCorrespondences proposes a correspondence for every initial/target
// letter pair that shares distinguishing concept mappings and builds it
// with probability rising with its strength. Building evicts whatever
// weaker correspondence claimed either letter.
func (s *Session) buildCorrespondences() {
	work := s.work
	for _, initial := range work.Initial.Letters {
		for _, target := range work.Target.Letters {
			mappings := workspace.GetMappings(initial, target,
				initial.RelevantDescriptions(), target.RelevantDescriptions())
			if len(mappings) == 0 {
				continue
			}
			distinguishing := false
			for _, m := range mappings {
				if m.Distinguishing() {
					distinguishing = true
					break
				}
			}
			if !distinguishing {
				continue
			}
			correspondence := workspace.NewCorrespondence(work, initial, target, mappings, false)
			workspace.UpdateStrength(correspondence)
			probability := s.temp.AdjustedProbability(correspondence.TotalStrength / 100.0)
			if !s.rand.CoinFlip(probability) {
				continue
			}
			existing := initial.Correspondence
			if existing != nil &&
				!s.rand.WeightedGreaterThan(correspondence.TotalStrength, existing.TotalStrength) {
				continue
			}
			correspondence.Build()
		}
	}
}

// buildRule derives the rule from the changed object: which facet of which
// descriptor changed, and how. No changed object yields the empty rule.
func (s *Session) buildRule() {
	work := s.work
	net := s.net
	changed := work.ChangedObject
	if changed == nil {
		work.BuildRule(workspace.NewRule(work, nil, nil, nil, nil))
		return
	}
	base := changed.Base()
	descriptor := base.GetDescriptor(net.StringPositionCategory)
	if descriptor == nil || !changed.DistinguishingDescriptor(descriptor) {
		descriptor = base.GetDescriptor(net.LetterCategory)
	}
	relation := base.Replacement.Relation
	if relation == nil {
		// plain substitution: name the new letter itself
		relation = base.Replacement.ObjectFromModified.Base().GetDescriptor(net.LetterCategory)
	}
	rule := workspace.NewRule(work, net.LetterCategory, descriptor,
		base.GetDescriptor(net.ObjectCategory), relation)
	work.BuildRule(rule)
	workspace.UpdateStrength(rule)
}
