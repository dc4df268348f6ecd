package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGValueIdenticalDistributions(t *testing.T) {
	counts := Counts{"ijl": 70, "jjk": 30}
	df, g := GValue(counts, counts)
	assert.Equal(t, 2, df)
	assert.Equal(t, 0.0, g)
}

func TestGValueSkipsZeroCells(t *testing.T) {
	actual := Counts{"ijl": 50, "ijd": 1}
	expected := Counts{"ijl": 50, "jjk": 3}
	df, g := GValue(actual, expected)
	assert.Equal(t, 3, df)
	// only ijl appears on both sides, and it matches exactly
	assert.Equal(t, 0.0, g)
}

func TestChiValue(t *testing.T) {
	actual := Counts{"ijl": 60, "jjk": 40}
	expected := Counts{"ijl": 50, "jjk": 50}
	df, chi := ChiValue(actual, expected)
	assert.Equal(t, 2, df)
	assert.InDelta(t, 4.0, chi, 1e-9)
}

func TestProbabilityDifference(t *testing.T) {
	same := Counts{"ijl": 7, "jjk": 3}
	assert.Equal(t, 0.0, ProbabilityDifference(same, same))

	disjoint := Counts{"ijl": 10}
	other := Counts{"jjk": 10}
	assert.Equal(t, 1.0, ProbabilityDifference(disjoint, other))

	halfway := ProbabilityDifference(Counts{"ijl": 5, "jjk": 5}, Counts{"ijl": 10})
	assert.InDelta(t, 0.5, halfway, 1e-9)
}

func TestDistTest(t *testing.T) {
	actual := Counts{"ijl": 60, "jjk": 40}
	expected := Counts{"ijl": 50, "jjk": 50}

	consistent, err := DistTest(actual, expected, ChiValue)
	require.NoError(t, err)
	assert.True(t, consistent)

	skewed := Counts{"ijl": 100, "jjk": 1}
	consistent, err = DistTest(skewed, expected, ChiValue)
	require.NoError(t, err)
	assert.False(t, consistent)
}

func TestDistTestMissingDegreesOfFreedom(t *testing.T) {
	actual := Counts{}
	expected := Counts{}
	_, err := DistTest(actual, expected, GValue)
	assert.Error(t, err)
}
