package workspace

import (
	"fmt"
	"strings"
)

// String is one of the three puzzle strings together with every structure
// built over it so far.
type String struct {
	workspace *Workspace

	Text    string
	Letters []*Letter
	Objects []Object
	Bonds   []*Bond

	IntraStringUnhappiness float64
}

// newString builds the string's letters with their category and positional
// descriptions. Only ASCII letters are accepted.
func newString(workspace *Workspace, text string) (*String, error) {
	s := &String{
		workspace: workspace,
		Text:      text,
	}
	net := workspace.net
	length := len(text)
	for position, c := range strings.ToLower(text) {
		if c < 'a' || c > 'z' {
			return nil, fmt.Errorf("string %q: unsupported character %q", text, c)
		}
		letter := newLetter(s, position+1, length)
		letter.AddDescription(net.ObjectCategory, net.Letter)
		letter.AddDescription(net.LetterCategory, net.Letters[c-'a'])
		letter.describe(position+1, length)
		workspace.BuildDescriptions(letter)
		s.Letters = append(s.Letters, letter)
	}
	return s, nil
}

// Length is the number of characters in the string.
func (s *String) Length() int {
	return len(s.Text)
}

// UpdateRelativeImportance normalizes every object's importance against
// the string's total.
func (s *String) UpdateRelativeImportance() {
	total := 0.0
	for _, o := range s.Objects {
		total += o.Base().RawImportance
	}
	if total == 0.0 {
		for _, o := range s.Objects {
			o.Base().RelativeImportance = 0.0
		}
		return
	}
	for _, o := range s.Objects {
		o.Base().RelativeImportance = o.Base().RawImportance / total
	}
}

// UpdateIntraStringUnhappiness averages the objects' intra-string
// unhappiness.
func (s *String) UpdateIntraStringUnhappiness() {
	if len(s.Objects) == 0 {
		s.IntraStringUnhappiness = 0.0
		return
	}
	total := 0.0
	for _, o := range s.Objects {
		total += o.Base().IntraStringUnhappiness
	}
	s.IntraStringUnhappiness = total / float64(len(s.Objects))
}

// EquivalentGroup returns an already built group equal to sought, or nil.
func (s *String) EquivalentGroup(sought *Group) *Group {
	for _, o := range s.Objects {
		if group, ok := o.(*Group); ok && group.SameGroup(sought) {
			return group
		}
	}
	return nil
}
