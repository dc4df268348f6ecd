package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "copycat", cfg.Name)
	assert.Equal(t, int64(42), cfg.Run.Seed)
	assert.Equal(t, 4, cfg.Run.Workers)
	require.Len(t, cfg.Problems, 1)
	assert.Equal(t, "abc", cfg.Problems[0].Initial)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Run.Seed = 7
	cfg.Run.Workers = 2
	cfg.Problems = []ProblemConfig{
		{Initial: "abc", Modified: "abd", Target: "xyz", Iterations: 10},
	}

	path := filepath.Join(t.TempDir(), "sub", "copycat.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "copycat.yaml")
	content := []byte("run:\n  seed: 99\n  workers: 8\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Run.Seed)
	assert.Equal(t, 8, cfg.Run.Workers)
	// untouched sections keep their defaults
	assert.Equal(t, "copycat", cfg.Name)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "copycat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("run: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
