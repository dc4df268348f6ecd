package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"copycat/internal/randomness"
	"copycat/internal/slipnet"
	"copycat/internal/temperature"
)

func newTestWorkspace(t *testing.T, initial, modified, target string) *Workspace {
	t.Helper()
	w := New(randomness.New(1), slipnet.New(), temperature.New())
	require.NoError(t, w.ResetWithStrings(initial, modified, target))
	return w
}

func TestResetWithStrings(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	net := w.Net()

	require.Len(t, w.Initial.Letters, 3)
	require.Len(t, w.Modified.Letters, 3)
	require.Len(t, w.Target.Letters, 3)
	assert.Len(t, w.Objects, 9)

	a, b, c := w.Initial.Letters[0], w.Initial.Letters[1], w.Initial.Letters[2]
	assert.Equal(t, net.Leftmost, a.GetDescriptor(net.StringPositionCategory))
	assert.Equal(t, net.Middle, b.GetDescriptor(net.StringPositionCategory))
	assert.Equal(t, net.Rightmost, c.GetDescriptor(net.StringPositionCategory))
	assert.Equal(t, net.Letters[0], a.GetDescriptor(net.LetterCategory))
	assert.Equal(t, net.Letter, a.GetDescriptor(net.ObjectCategory))

	// every letter carries three descriptions, all registered as structures
	assert.Len(t, w.Structures, 27)
}

func TestResetWithStringsRejectsNonLetters(t *testing.T) {
	w := New(randomness.New(1), slipnet.New(), temperature.New())
	assert.Error(t, w.ResetWithStrings("ab1", "abd", "ijk"))
	assert.Error(t, w.ResetWithStrings("abc", "a d", "ijk"))
}

func TestSingleLetterString(t *testing.T) {
	w := newTestWorkspace(t, "a", "b", "c")
	net := w.Net()
	a := w.Initial.Letters[0]
	assert.True(t, a.SpansString())
	assert.True(t, a.Described(net.Single))
	assert.True(t, a.Described(net.Leftmost))
	assert.True(t, a.Described(net.Rightmost))
}

func TestObjectGeometry(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	a, b, c := w.Initial.Letters[0], w.Initial.Letters[1], w.Initial.Letters[2]

	assert.True(t, a.Beside(b))
	assert.True(t, b.Beside(a))
	assert.False(t, a.Beside(c))
	assert.False(t, a.Beside(w.Target.Letters[0]))

	assert.Equal(t, 2, a.LetterDistance(c))
	assert.Equal(t, 2, c.LetterDistance(a))
	assert.Equal(t, 0, a.LetterDistance(a))
	assert.Equal(t, 1, b.LetterSpan())

	assert.True(t, b.MiddleObject())
	assert.False(t, a.MiddleObject())
	assert.True(t, a.IsOutsideOf(c))
	assert.True(t, a.IsWithin(a))
}

func TestLetterDistinguishingDescriptor(t *testing.T) {
	w := newTestWorkspace(t, "aab", "aab", "aab")
	net := w.Net()
	first, third := w.Initial.Letters[0], w.Initial.Letters[2]

	// another letter shares the descriptor a
	assert.False(t, first.DistinguishingDescriptor(net.Letters[0]))
	assert.True(t, third.DistinguishingDescriptor(net.Letters[1]))
	assert.True(t, first.DistinguishingDescriptor(net.Leftmost))
	// never distinguishing by the network's own rule
	assert.False(t, first.DistinguishingDescriptor(net.Letter))
}

func TestRelativeImportanceZeroTotal(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")

	// with no activation in the letters' descriptors all importances are 0
	w.UpdateEverything()
	for _, o := range w.Initial.Objects {
		assert.Equal(t, 0.0, o.Base().RelativeImportance)
	}
}

func TestDescriptionStrengths(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	net := w.Net()
	a := w.Initial.Letters[0]

	var leftmost *Description
	for _, d := range a.Descriptions {
		if d.Descriptor == net.Leftmost {
			leftmost = d
		}
	}
	require.NotNil(t, leftmost)

	UpdateStrength(leftmost)
	assert.Equal(t, 40.0, leftmost.InternalStrength)
	// six position-described letters saturate local support, and the
	// description type is clamped fully active
	assert.Equal(t, 100.0, leftmost.ExternalStrength)
}

func TestGetUpdatedTemperatureBounds(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	w.UpdateEverything()
	value := w.GetUpdatedTemperature()
	assert.GreaterOrEqual(t, value, 0.0)
	assert.LessOrEqual(t, value, 100.0)
}

func TestStructureCounts(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	assert.Equal(t, 6, w.NumberOfUnrelatedObjects())
	assert.Equal(t, 6, w.NumberOfUngroupedObjects())
	assert.Equal(t, 3, w.NumberOfUnreplacedObjects())
	assert.Equal(t, 6, w.NumberOfUncorrespondingObjects())
	assert.Equal(t, 0, w.NumberOfBonds())
	assert.Empty(t, w.Correspondences())
	assert.Empty(t, w.Slippages())
}

func TestBuildAndBreakRule(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	net := w.Net()

	rule := NewRule(w, net.LetterCategory, net.Rightmost, net.Letter, net.Successor)
	w.BuildRule(rule)
	assert.Same(t, rule, w.Rule)
	assert.Contains(t, w.Structures, Structure(rule))
	assert.Equal(t, 100.0, net.Successor.Buffer)

	replacement := NewRule(w, net.LetterCategory, net.Rightmost, net.Letter, net.Predecessor)
	w.BuildRule(replacement)
	assert.Same(t, replacement, w.Rule)
	assert.NotContains(t, w.Structures, Structure(rule))

	w.BreakRule()
	assert.Nil(t, w.Rule)
	assert.NotContains(t, w.Structures, Structure(replacement))
}

func TestGetMappings(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	net := w.Net()
	a := w.Initial.Letters[0]
	i := w.Target.Letters[0]
	k := w.Target.Letters[2]

	same := GetMappings(a, i, a.RelevantDescriptions(), i.RelevantDescriptions())
	require.Len(t, same, 1)
	assert.Equal(t, net.Identity, same[0].Label)
	assert.Equal(t, net.Leftmost, same[0].InitialDescriptor)

	crossed := GetMappings(a, k, a.RelevantDescriptions(), k.RelevantDescriptions())
	require.Len(t, crossed, 1)
	assert.Equal(t, net.Opposite, crossed[0].Label)
}

func TestLocalBondCategoryRelevance(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	net := w.Net()

	// no bonds yet
	assert.Equal(t, 0.0, LocalBondCategoryRelevance(w.Initial, net.Successor))

	a, b := w.Initial.Letters[0], w.Initial.Letters[1]
	bond := NewBond(w, a, b, net.Successor, net.LetterCategory,
		net.Letters[0], net.Letters[1])
	bond.Build()

	// one of two non-spanning-adjusted objects carries a successor bond
	assert.InDelta(t, 50.0, LocalBondCategoryRelevance(w.Initial, net.Successor), 1e-9)
	assert.Equal(t, 0.0, LocalBondCategoryRelevance(w.Initial, net.Sameness))
	assert.InDelta(t, 50.0, LocalDirectionCategoryRelevance(w.Initial, net.Right), 1e-9)
}
