package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyRule(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abc", "ijk")
	rule := NewRule(w, nil, nil, nil, nil)
	assert.Equal(t, "empty rule", rule.String())

	rule.UpdateInternalStrength()
	assert.Equal(t, 50.0, rule.InternalStrength)

	answer, ok := rule.BuildTranslatedRule()
	require.True(t, ok)
	assert.Equal(t, "ijk", answer)
}

func TestRuleEqual(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	net := w.Net()
	rule := NewRule(w, net.LetterCategory, net.Rightmost, net.Letter, net.Successor)
	assert.True(t, rule.Equal(NewRule(w, net.LetterCategory, net.Rightmost, net.Letter, net.Successor)))
	assert.False(t, rule.Equal(NewRule(w, net.LetterCategory, net.Leftmost, net.Letter, net.Successor)))
	assert.False(t, rule.Equal(nil))
}

func TestBuildTranslatedRule(t *testing.T) {
	t.Run("successor on the rightmost letter", func(t *testing.T) {
		w := newTestWorkspace(t, "abc", "abd", "ijk")
		net := w.Net()
		rule := NewRule(w, net.LetterCategory, net.Rightmost, net.Letter, net.Successor)
		answer, ok := rule.BuildTranslatedRule()
		require.True(t, ok)
		assert.Equal(t, "ijl", answer)
	})

	t.Run("successor off the end of the alphabet fails", func(t *testing.T) {
		w := newTestWorkspace(t, "abc", "abd", "xyz")
		net := w.Net()
		rule := NewRule(w, net.LetterCategory, net.Rightmost, net.Letter, net.Successor)
		_, ok := rule.BuildTranslatedRule()
		assert.False(t, ok)
	})

	t.Run("length rule repeats the changed letter", func(t *testing.T) {
		w := newTestWorkspace(t, "abc", "abd", "ijk")
		net := w.Net()
		rule := NewRule(w, net.Length, net.Rightmost, net.Letter, net.Successor)
		answer, ok := rule.BuildTranslatedRule()
		require.True(t, ok)
		assert.Equal(t, "ijkk", answer)
	})

	t.Run("plain substitution names the new letter", func(t *testing.T) {
		w := newTestWorkspace(t, "abc", "abd", "ijk")
		net := w.Net()
		rule := NewRule(w, net.LetterCategory, net.Rightmost, net.Letter, net.Letters[3])
		answer, ok := rule.BuildTranslatedRule()
		require.True(t, ok)
		assert.Equal(t, "ijd", answer)
	})

	t.Run("slippage redirects the rule to the other end", func(t *testing.T) {
		w := newTestWorkspace(t, "abc", "abd", "ijk")
		net := w.Net()
		c := w.Initial.Letters[2]
		c.Changed = true
		w.ChangedObject = c

		crossed := letterCorrespondence(w, c, w.Target.Letters[0])
		crossed.Build()

		rule := NewRule(w, net.LetterCategory, net.Rightmost, net.Letter, net.Successor)
		answer, ok := rule.BuildTranslatedRule()
		require.True(t, ok)
		assert.Equal(t, "jjk", answer)
	})
}

func TestRuleInternalStrength(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	net := w.Net()
	c := w.Initial.Letters[2]
	c.Changed = true
	w.ChangedObject = c

	rule := NewRule(w, net.LetterCategory, net.Rightmost, net.Letter, net.Successor)

	// without a correspondence the shared-descriptor term stays empty
	rule.UpdateInternalStrength()
	assert.InDelta(t, 53.6, rule.InternalStrength, 0.1)

	// a rightmost->rightmost correspondence lets the descriptor survive
	parallel := letterCorrespondence(w, c, w.Target.Letters[2])
	parallel.Build()
	rule.UpdateInternalStrength()
	assert.InDelta(t, 82.6, rule.InternalStrength, 0.1)
}

func TestIncompatibleRuleCorrespondence(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	net := w.Net()
	c := w.Initial.Letters[2]
	c.Changed = true

	rule := NewRule(w, net.LetterCategory, net.Rightmost, net.Letter, net.Successor)

	// the correspondence maps the changed letter by its rightmost-ness, so
	// the rule's descriptor is accounted for
	parallel := letterCorrespondence(w, c, w.Target.Letters[2])
	assert.True(t, rule.IncompatibleRuleCorrespondence(parallel))

	unrelated := letterCorrespondence(w, w.Initial.Letters[0], w.Target.Letters[0])
	assert.False(t, rule.IncompatibleRuleCorrespondence(unrelated))
	assert.False(t, rule.IncompatibleRuleCorrespondence(nil))
}
