package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letterCorrespondence(w *Workspace, initial, target *Letter) *Correspondence {
	mappings := GetMappings(initial, target,
		initial.RelevantDescriptions(), target.RelevantDescriptions())
	return NewCorrespondence(w, initial, target, mappings, false)
}

func TestCorrespondenceInternalStrength(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	c, k := w.Initial.Letters[2], w.Target.Letters[2]

	same := letterCorrespondence(w, c, k)
	require.Len(t, same.ConceptMappings, 1)
	same.UpdateInternalStrength()
	// one identity mapping at full strength, single-mapping count factor
	assert.InDelta(t, 80.0, same.InternalStrength, 1e-9)

	crossed := letterCorrespondence(w, c, w.Target.Letters[0])
	crossed.UpdateInternalStrength()
	assert.InDelta(t, 0.8*23.2, crossed.InternalStrength, 1e-9)
}

func TestCorrespondenceExternalStrength(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")

	alone := letterCorrespondence(w, w.Initial.Letters[2], w.Target.Letters[2])
	alone.UpdateExternalStrength()
	assert.Equal(t, 0.0, alone.ExternalStrength)
}

func TestCorrespondenceSpanningLetterSupport(t *testing.T) {
	w := newTestWorkspace(t, "a", "b", "c")
	spanning := letterCorrespondence(w, w.Initial.Letters[0], w.Target.Letters[0])
	spanning.UpdateExternalStrength()
	assert.Equal(t, 100.0, spanning.ExternalStrength)
}

func TestCorrespondenceBuildEvictsExisting(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	c := w.Initial.Letters[2]
	i, k := w.Target.Letters[0], w.Target.Letters[2]

	first := letterCorrespondence(w, c, k)
	first.Build()
	assert.Same(t, first, c.Correspondence)
	assert.Same(t, first, k.Correspondence)
	require.Len(t, w.Correspondences(), 1)

	second := letterCorrespondence(w, c, i)
	second.Build()
	assert.Same(t, second, c.Correspondence)
	assert.Nil(t, k.Correspondence)
	require.Len(t, w.Correspondences(), 1)

	second.Break()
	assert.Nil(t, c.Correspondence)
	assert.Nil(t, i.Correspondence)
	assert.Empty(t, w.Correspondences())
}

func TestCorrespondenceIncompatible(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	a, c := w.Initial.Letters[0], w.Initial.Letters[2]
	i, k := w.Target.Letters[0], w.Target.Letters[2]

	straight := letterCorrespondence(w, a, i)
	sharesObject := letterCorrespondence(w, a, k)
	assert.True(t, straight.Incompatible(sharesObject))

	// both claim the leftmost target letter
	crossed := letterCorrespondence(w, c, i)
	assert.True(t, straight.Incompatible(crossed))

	parallel := letterCorrespondence(w, c, k)
	assert.False(t, straight.Incompatible(parallel))
	assert.False(t, straight.Incompatible(nil))
}

func TestCorrespondenceSlippages(t *testing.T) {
	w := newTestWorkspace(t, "abc", "abd", "ijk")
	net := w.Net()

	crossed := letterCorrespondence(w, w.Initial.Letters[2], w.Target.Letters[0])
	slippages := crossed.Slippages()
	require.Len(t, slippages, 1)
	assert.Equal(t, net.Rightmost, slippages[0].InitialDescriptor)
	assert.Equal(t, net.Leftmost, slippages[0].TargetDescriptor)

	parallel := letterCorrespondence(w, w.Initial.Letters[2], w.Target.Letters[2])
	assert.Empty(t, parallel.Slippages())
}
