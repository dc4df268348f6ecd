package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"copycat/internal/randomness"
)

func TestRackPostAndReset(t *testing.T) {
	rack := NewRack()
	assert.Empty(t, rack.Pending())

	rack.Post(NewCodelet("bottom-up-bond-scout", 30.0, 1))
	rack.Post(NewCodelet("top-down-description-scout", 100.0, 1))
	require.Len(t, rack.Pending(), 2)

	rack.Reset()
	assert.Empty(t, rack.Pending())
}

func TestRackChoose(t *testing.T) {
	rand := randomness.New(1)

	rack := NewRack()
	assert.Nil(t, rack.Choose(rand))

	only := NewCodelet("bottom-up-bond-scout", 30.0, 1)
	rack.Post(only)
	assert.Same(t, only, rack.Choose(rand))
	assert.Empty(t, rack.Pending())

	// choice removes exactly one codelet per call
	rack.Post(NewCodelet("top-down-bond-scout--category", 50.0, 2))
	rack.Post(NewCodelet("top-down-group-scout--category", 50.0, 2))
	require.NotNil(t, rack.Choose(rand))
	assert.Len(t, rack.Pending(), 1)
}

func TestTickPostsSuggestedCodelets(t *testing.T) {
	s := NewSession(1)
	require.NoError(t, s.Reset("abc", "abd", "ijk"))
	s.Tick()

	// stringPositionCategory starts clamped and suggests description scouts
	pending := s.Rack().Pending()
	require.NotEmpty(t, pending)
	names := make(map[string]bool)
	for _, codelet := range pending {
		names[codelet.Name] = true
		assert.Equal(t, 1, codelet.Birthdate)
	}
	assert.True(t, names["top-down-description-scout"])
}
