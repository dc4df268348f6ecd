package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickAdvancesEverything(t *testing.T) {
	s := NewSession(1)
	require.NoError(t, s.Reset("abc", "abd", "ijk"))
	assert.Equal(t, 0, s.Ticks())

	s.RunTicks(5)
	assert.Equal(t, 5, s.Ticks())
	assert.Equal(t, 5, s.Net().Updates())
	assert.True(t, s.Temperature().Clamped())

	s.RunTicks(25)
	assert.False(t, s.Temperature().Clamped())
}

func TestRunTrialProducesAnswer(t *testing.T) {
	s := NewSession(42)
	answer, err := s.RunTrial("abc", "abd", "ijk")
	require.NoError(t, err)

	// the rightmost letter either takes its successor directly or slips to
	// the other end of the target
	assert.Contains(t, []string{"ijl", "jjk"}, answer.Text)
	assert.True(t, s.Workspace().HasAnswer)
	assert.Equal(t, answer.Text, s.Workspace().FinalAnswer)
	assert.Equal(t, 60, answer.Ticks)
	assert.GreaterOrEqual(t, answer.Temperature, 0.0)
	assert.LessOrEqual(t, answer.Temperature, 100.0)
}

func TestRunTrialIsDeterministicPerSeed(t *testing.T) {
	first, err := NewSession(7).RunTrial("abc", "abd", "ijk")
	require.NoError(t, err)
	second, err := NewSession(7).RunTrial("abc", "abd", "ijk")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunTrialUnchangedStrings(t *testing.T) {
	s := NewSession(1)
	answer, err := s.RunTrial("abc", "abc", "ijk")
	require.NoError(t, err)
	assert.Equal(t, "ijk", answer.Text)
}

func TestRunTrialLengthMismatch(t *testing.T) {
	s := NewSession(1)
	_, err := s.RunTrial("abc", "abcd", "ijk")
	assert.Error(t, err)
}

func TestRunTrialInvalidString(t *testing.T) {
	s := NewSession(1)
	_, err := s.RunTrial("ab!", "abd", "ijk")
	assert.Error(t, err)
}

func TestFindReplacements(t *testing.T) {
	s := NewSession(1)
	require.NoError(t, s.Reset("abc", "abd", "ijk"))
	require.NoError(t, s.findReplacements())

	work := s.Workspace()
	net := s.Net()
	require.NotNil(t, work.ChangedObject)
	assert.Same(t, work.Initial.Letters[2], work.ChangedObject)

	assert.Equal(t, net.Sameness, work.Initial.Letters[0].Replacement.Relation)
	assert.Equal(t, net.Sameness, work.Initial.Letters[1].Replacement.Relation)
	assert.Equal(t, net.Successor, work.Initial.Letters[2].Replacement.Relation)
	assert.Equal(t, 0, work.NumberOfUnreplacedObjects())
}

func TestFindReplacementsSubstitution(t *testing.T) {
	s := NewSession(1)
	require.NoError(t, s.Reset("abc", "abq", "ijk"))
	require.NoError(t, s.findReplacements())

	// a jump wider than one step carries no relation
	assert.Nil(t, s.Workspace().Initial.Letters[2].Replacement.Relation)
}
