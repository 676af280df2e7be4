package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	p := NewPaths("/home/learner/.typey")
	assert.Equal(t, "/home/learner/.typey", p.Root)
	assert.Equal(t, filepath.Join("/home/learner/.typey", "typey.db"), p.DB)
	assert.Equal(t, filepath.Join("/home/learner/.typey", "config.yaml"), p.Config)
	assert.Equal(t, filepath.Join("/home/learner/.typey", "run"), p.RunDir)
	assert.Equal(t, filepath.Join("/home/learner/.typey", "run", "http.port"), p.PortFile)
}

func TestEnsureDirs(t *testing.T) {
	p := NewPaths(filepath.Join(t.TempDir(), ".typey"))

	require.NoError(t, p.EnsureDirs())
	for _, d := range []string{p.Root, p.RunDir} {
		info, err := os.Stat(d)
		require.NoError(t, err, "dir %s should exist", d)
		assert.True(t, info.IsDir())
	}

	// Second call is a no-op.
	require.NoError(t, p.EnsureDirs())
}

func TestCleanEphemeral(t *testing.T) {
	p := NewPaths(t.TempDir())
	require.NoError(t, p.EnsureDirs())
	require.NoError(t, os.WriteFile(p.PortFile, []byte("8484"), 0644))

	p.CleanEphemeral()
	_, err := os.Stat(p.PortFile)
	assert.True(t, os.IsNotExist(err))

	p.CleanEphemeral()
}
