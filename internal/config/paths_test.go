package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsFor(t *testing.T) {
	base := t.TempDir()
	paths := PathsFor(base)

	assert.Equal(t, base, paths.ExecutableDir)
	assert.Equal(t, filepath.Join(base, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(base, "data", "matches.csv"), paths.MatchesCSV)
	assert.Equal(t, filepath.Join(base, "data", "deliveries.csv"), paths.DeliveriesCSV)
	assert.Equal(t, filepath.Join(base, "config.yaml"), paths.ConfigFile)
	assert.Equal(t, filepath.Join(base, "charts", "analysis_charts.xlsx"), paths.ChartWorkbook)
}

func TestPaths_EnsureDirectories(t *testing.T) {
	base := t.TempDir()
	paths := PathsFor(base)

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.DataDir, paths.ReportsDir, paths.ChartsDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Idempotent
	require.NoError(t, paths.EnsureDirectories())
}

func TestPaths_Helpers(t *testing.T) {
	paths := PathsFor("/opt/analyzer")

	assert.Equal(t, filepath.Join("/opt/analyzer", "logs", "analyzer.log"), paths.GetLogPath("analyzer.log"))
	assert.Equal(t, filepath.Join("/opt/analyzer", "reports", "matches_per_season.csv"), paths.GetReportPath("matches_per_season.csv"))
}

func TestGetPaths(t *testing.T) {
	paths, err := GetPaths()
	require.NoError(t, err)
	assert.NotEmpty(t, paths.ExecutableDir)
	assert.True(t, filepath.IsAbs(paths.MatchesCSV))
}
