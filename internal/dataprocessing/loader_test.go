package dataprocessing

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iplcli/internal/config"
)

func TestLoaderLoad(t *testing.T) {
	paths := config.PathsFor(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())

	require.NoError(t, os.WriteFile(paths.MatchesCSV,
		[]byte("id,city\n1,Bangalore\n2,Kolkata\n"), 0644))
	require.NoError(t, os.WriteFile(paths.DeliveriesCSV,
		[]byte("match_id,over,total_runs\n1,0,4\n"), 0644))

	loader := NewLoader(nil, paths)
	matches, deliveries, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, matches.NumRows())
	assert.Equal(t, 1, deliveries.NumRows())
}

func TestLoaderLoadMissingFiles(t *testing.T) {
	paths := config.PathsFor(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())

	loader := NewLoader(nil, paths)
	_, _, err := loader.Load(context.Background())
	require.Error(t, err)

	// The diagnostic names both expected paths and the working directory
	cwd, _ := os.Getwd()
	assert.Contains(t, err.Error(), paths.MatchesCSV)
	assert.Contains(t, err.Error(), paths.DeliveriesCSV)
	assert.Contains(t, err.Error(), cwd)
}

func TestLoaderLoadOneFileMissing(t *testing.T) {
	paths := config.PathsFor(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())

	require.NoError(t, os.WriteFile(paths.MatchesCSV, []byte("id\n1\n"), 0644))

	loader := NewLoader(nil, paths)
	_, _, err := loader.Load(context.Background())
	require.Error(t, err)
}
