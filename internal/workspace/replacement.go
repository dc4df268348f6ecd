package workspace

import "copycat/internal/slipnet"

// Replacement records which initial-string letter turned into which
// modified-string letter and the relation between them, nil when the
// letters are unrelated in the network.
type Replacement struct {
	Strengths

	ObjectFromInitial  *Letter
	ObjectFromModified *Letter
	Relation           *slipnet.Node
}

// NewReplacement pairs the two letters under the given relation.
func NewReplacement(objectFromInitial, objectFromModified *Letter, relation *slipnet.Node) *Replacement {
	return &Replacement{
		ObjectFromInitial:  objectFromInitial,
		ObjectFromModified: objectFromModified,
		Relation:           relation,
	}
}
