// Package slipnet implements the concept network at the heart of the
// analogy engine: nodes for letters, numbers, positions, directions, bond
// and group categories, connected by typed links. Activation decays,
// spreads along links from fully active nodes, and probabilistically snaps
// to the ceiling, all within a strict three-phase tick so that every node
// sees the same pre-tick state (simultaneous, not sequential, update).
package slipnet

import "copycat/internal/randomness"

// unclampTick is the tick at which the a-priori clamped categories are
// released to compete normally.
const unclampTick = 50

// Slipnet is the full concept network. It is built once and reused across
// runs; Reset clears all activation state between runs.
type Slipnet struct {
	updates int

	Nodes []*Node
	Links []*Link

	Letters []*Node
	Numbers []*Node

	// string positions
	Leftmost  *Node
	Rightmost *Node
	Middle    *Node
	Single    *Node
	Whole     *Node

	// alphabetic positions
	First *Node
	Last  *Node

	// directions
	Left  *Node
	Right *Node

	// bond types
	Predecessor *Node
	Successor   *Node
	Sameness    *Node

	// group types
	PredecessorGroup *Node
	SuccessorGroup   *Node
	SamenessGroup    *Node

	// other relations
	Identity *Node
	Opposite *Node

	// object types
	Letter *Node
	Group  *Node

	// categories
	LetterCategory             *Node
	StringPositionCategory     *Node
	AlphabeticPositionCategory *Node
	DirectionCategory          *Node
	BondCategory               *Node
	GroupCategory              *Node
	Length                     *Node
	ObjectCategory             *Node
	BondFacet                  *Node

	initiallyClamped []*Node
}

// New builds the network's fixed node and link tables and resets it.
func New() *Slipnet {
	s := &Slipnet{}
	s.addInitialNodes()
	s.addInitialLinks()
	s.Reset()
	return s
}

// Reset zeroes every node's activation and buffer and re-clamps the
// a-priori relevant categories. After this call the network carries no
// memory of earlier runs.
func (s *Slipnet) Reset() {
	s.updates = 0
	for _, n := range s.Nodes {
		n.Reset()
		n.Clamped = false
	}
	for _, n := range s.initiallyClamped {
		n.ClampHigh()
	}
}

// Updates returns the number of ticks since the last reset.
func (s *Slipnet) Updates() int {
	return s.updates
}

// Update advances the network by one tick in three network-wide phases:
// decay, spread, integrate. The phase order is a correctness invariant:
// every phase reads only pre-phase state, which makes the tick behave as a
// simultaneous update despite sequential execution. On the 50th tick since
// reset the initially clamped nodes are released.
func (s *Slipnet) Update(random *randomness.Randomness) {
	s.updates++
	if s.updates == unclampTick {
		for _, n := range s.initiallyClamped {
			n.Unclamp()
		}
	}
	for _, n := range s.Nodes {
		n.decay()
	}
	for _, n := range s.Nodes {
		n.spreadActivation()
	}
	for _, n := range s.Nodes {
		n.addBuffer()
		n.jump(random)
		n.Buffer = 0.0
	}
}

// IsDistinguishingDescriptor reports whether a descriptor can individuate
// an object. The generic letter/group object types and the number nodes
// never do.
func (s *Slipnet) IsDistinguishingDescriptor(descriptor *Node) bool {
	if descriptor == s.Letter || descriptor == s.Group {
		return false
	}
	for _, n := range s.Numbers {
		if descriptor == n {
			return false
		}
	}
	return true
}

func (s *Slipnet) addInitialNodes() {
	for _, c := range "abcdefghijklmnopqrstuvwxyz" {
		s.Letters = append(s.Letters, s.addNode(string(c), 10.0, 0))
	}
	for _, c := range "12345" {
		s.Numbers = append(s.Numbers, s.addNode(string(c), 30.0, 0))
	}

	// string positions
	s.Leftmost = s.addNode("leftmost", 40.0, 0)
	s.Rightmost = s.addNode("rightmost", 40.0, 0)
	s.Middle = s.addNode("middle", 40.0, 0)
	s.Single = s.addNode("single", 40.0, 0)
	s.Whole = s.addNode("whole", 40.0, 0)

	// alphabetic positions
	s.First = s.addNode("first", 60.0, 0)
	s.Last = s.addNode("last", 60.0, 0)

	// directions
	s.Left = s.addNode("left", 40.0, 0)
	s.Left.Codelets = append(s.Left.Codelets,
		"top-down-bond-scout--direction", "top-down-group-scout--direction")
	s.Right = s.addNode("right", 40.0, 0)
	s.Right.Codelets = append(s.Right.Codelets,
		"top-down-bond-scout--direction", "top-down-group-scout--direction")

	// bond types
	s.Predecessor = s.addNode("predecessor", 50.0, 60)
	s.Predecessor.Codelets = append(s.Predecessor.Codelets, "top-down-bond-scout--category")
	s.Successor = s.addNode("successor", 50.0, 60)
	s.Successor.Codelets = append(s.Successor.Codelets, "top-down-bond-scout--category")
	s.Sameness = s.addNode("sameness", 80.0, 0)
	s.Sameness.Codelets = append(s.Sameness.Codelets, "top-down-bond-scout--category")

	// group types
	s.PredecessorGroup = s.addNode("predecessorGroup", 50.0, 0)
	s.PredecessorGroup.Codelets = append(s.PredecessorGroup.Codelets, "top-down-group-scout--category")
	s.SuccessorGroup = s.addNode("successorGroup", 50.0, 0)
	s.SuccessorGroup.Codelets = append(s.SuccessorGroup.Codelets, "top-down-group-scout--category")
	s.SamenessGroup = s.addNode("samenessGroup", 80.0, 0)
	s.SamenessGroup.Codelets = append(s.SamenessGroup.Codelets, "top-down-group-scout--category")

	// other relations
	s.Identity = s.addNode("identity", 90.0, 0)
	s.Opposite = s.addNode("opposite", 90.0, 80.0)

	// object types
	s.Letter = s.addNode("letter", 20.0, 0)
	s.Group = s.addNode("group", 80.0, 0)

	// categories
	s.LetterCategory = s.addNode("letterCategory", 30.0, 0)
	s.StringPositionCategory = s.addNode("stringPositionCategory", 70.0, 0)
	s.StringPositionCategory.Codelets = append(s.StringPositionCategory.Codelets, "top-down-description-scout")
	s.AlphabeticPositionCategory = s.addNode("alphabeticPositionCategory", 80.0, 0)
	s.AlphabeticPositionCategory.Codelets = append(s.AlphabeticPositionCategory.Codelets, "top-down-description-scout")
	s.DirectionCategory = s.addNode("directionCategory", 70.0, 0)
	s.BondCategory = s.addNode("bondCategory", 80.0, 0)
	s.GroupCategory = s.addNode("groupCategory", 80.0, 0)
	s.Length = s.addNode("length", 60.0, 0)
	s.ObjectCategory = s.addNode("objectCategory", 90.0, 0)
	s.BondFacet = s.addNode("bondFacet", 90.0, 0)

	// these categories are considered very relevant a priori
	s.initiallyClamped = []*Node{s.LetterCategory, s.StringPositionCategory}
}

func (s *Slipnet) addInitialLinks() {
	s.linkNeighbors(s.Letters)
	s.linkNeighbors(s.Numbers)
	// letter categories
	for _, letter := range s.Letters {
		s.addInstanceLink(s.LetterCategory, letter, 97.0)
	}
	s.addCategoryLink(s.SamenessGroup, s.LetterCategory, 50.0)
	// lengths
	for _, number := range s.Numbers {
		s.addInstanceLink(s.Length, number, 100.0)
	}
	for _, group := range []*Node{s.PredecessorGroup, s.SuccessorGroup, s.SamenessGroup} {
		s.addNonSlipLink(group, s.Length, nil, 95.0)
	}
	opposites := [][2]*Node{
		{s.First, s.Last},
		{s.Leftmost, s.Rightmost},
		{s.Left, s.Right},
		{s.Successor, s.Predecessor},
		{s.SuccessorGroup, s.PredecessorGroup},
	}
	for _, pair := range opposites {
		s.addOppositeLink(pair[0], pair[1])
	}
	// properties
	s.addPropertyLink(s.Letters[0], s.First, 75.0)
	s.addPropertyLink(s.Letters[len(s.Letters)-1], s.Last, 75.0)
	instances := [][2]*Node{
		// object categories
		{s.ObjectCategory, s.Letter},
		{s.ObjectCategory, s.Group},
		// string positions
		{s.StringPositionCategory, s.Leftmost},
		{s.StringPositionCategory, s.Rightmost},
		{s.StringPositionCategory, s.Middle},
		{s.StringPositionCategory, s.Single},
		{s.StringPositionCategory, s.Whole},
		// alphabetic positions
		{s.AlphabeticPositionCategory, s.First},
		{s.AlphabeticPositionCategory, s.Last},
		// direction categories
		{s.DirectionCategory, s.Left},
		{s.DirectionCategory, s.Right},
		// bond categories
		{s.BondCategory, s.Predecessor},
		{s.BondCategory, s.Successor},
		{s.BondCategory, s.Sameness},
		// group categories
		{s.GroupCategory, s.PredecessorGroup},
		{s.GroupCategory, s.SuccessorGroup},
		{s.GroupCategory, s.SamenessGroup},
		// bond facets
		{s.BondFacet, s.LetterCategory},
		{s.BondFacet, s.Length},
	}
	for _, pair := range instances {
		s.addInstanceLink(pair[0], pair[1], 100.0)
	}
	// bonds to their groups
	s.addNonSlipLink(s.Sameness, s.SamenessGroup, s.GroupCategory, 30.0)
	s.addNonSlipLink(s.Successor, s.SuccessorGroup, s.GroupCategory, 60.0)
	s.addNonSlipLink(s.Predecessor, s.PredecessorGroup, s.GroupCategory, 60.0)
	// groups to their bonds
	s.addNonSlipLink(s.SamenessGroup, s.Sameness, s.BondCategory, 90.0)
	s.addNonSlipLink(s.SuccessorGroup, s.Successor, s.BondCategory, 90.0)
	s.addNonSlipLink(s.PredecessorGroup, s.Predecessor, s.BondCategory, 90.0)
	// letter category to length
	s.addSlipLink(s.LetterCategory, s.Length, nil, 95.0)
	s.addSlipLink(s.Length, s.LetterCategory, nil, 95.0)
	// letter to group
	s.addSlipLink(s.Letter, s.Group, nil, 90.0)
	s.addSlipLink(s.Group, s.Letter, nil, 90.0)
	// direction-position, direction-neighbor, position-neighbor
	s.addBidirectionalLink(s.Left, s.Leftmost, 90.0)
	s.addBidirectionalLink(s.Right, s.Rightmost, 90.0)
	s.addBidirectionalLink(s.Right, s.Leftmost, 100.0)
	s.addBidirectionalLink(s.Left, s.Rightmost, 100.0)
	s.addBidirectionalLink(s.Leftmost, s.First, 100.0)
	s.addBidirectionalLink(s.Rightmost, s.First, 100.0)
	s.addBidirectionalLink(s.Leftmost, s.Last, 100.0)
	s.addBidirectionalLink(s.Rightmost, s.Last, 100.0)
	// single <-> whole
	s.addSlipLink(s.Single, s.Whole, nil, 90.0)
	s.addSlipLink(s.Whole, s.Single, nil, 90.0)
}

func (s *Slipnet) addNode(name string, depth, length float64) *Node {
	n := newNode(s, name, depth, length)
	s.Nodes = append(s.Nodes, n)
	return n
}

func (s *Slipnet) addLink(source, destination, label *Node, length float64) *Link {
	l := newLink(source, destination, label, length)
	s.Links = append(s.Links, l)
	return l
}

func (s *Slipnet) addSlipLink(source, destination, label *Node, length float64) {
	l := s.addLink(source, destination, label, length)
	source.LateralSlipLinks = append(source.LateralSlipLinks, l)
}

func (s *Slipnet) addNonSlipLink(source, destination, label *Node, length float64) {
	l := s.addLink(source, destination, label, length)
	source.LateralNonSlipLinks = append(source.LateralNonSlipLinks, l)
}

func (s *Slipnet) addBidirectionalLink(source, destination *Node, length float64) {
	s.addNonSlipLink(source, destination, nil, length)
	s.addNonSlipLink(destination, source, nil, length)
}

func (s *Slipnet) addCategoryLink(source, destination *Node, length float64) {
	l := s.addLink(source, destination, nil, length)
	source.CategoryLinks = append(source.CategoryLinks, l)
}

// addInstanceLink also adds the reverse category link whose length encodes
// the depth gap between category and instance.
func (s *Slipnet) addInstanceLink(source, destination *Node, length float64) {
	categoryLength := source.Depth - destination.Depth
	s.addCategoryLink(destination, source, categoryLength)
	l := s.addLink(source, destination, nil, length)
	source.InstanceLinks = append(source.InstanceLinks, l)
}

func (s *Slipnet) addPropertyLink(source, destination *Node, length float64) {
	l := s.addLink(source, destination, nil, length)
	source.PropertyLinks = append(source.PropertyLinks, l)
}

func (s *Slipnet) addOppositeLink(source, destination *Node) {
	s.addSlipLink(source, destination, s.Opposite, 0)
	s.addSlipLink(destination, source, s.Opposite, 0)
}

// linkNeighbors chains items with successor links forward and predecessor
// links backward.
func (s *Slipnet) linkNeighbors(items []*Node) {
	previous := items[0]
	for _, item := range items[1:] {
		s.addNonSlipLink(previous, item, s.Successor, 0)
		s.addNonSlipLink(item, previous, s.Predecessor, 0)
		previous = item
	}
}
