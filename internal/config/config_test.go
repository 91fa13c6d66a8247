package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 10, cfg.Analysis.TopVenues)
	assert.Equal(t, 15, cfg.Analysis.TopBatters)
	assert.Equal(t, 6, cfg.Analysis.BallsPerOver)
	assert.True(t, cfg.Charts.Enabled)
	assert.Equal(t, "none", cfg.Tracing.Exporter)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "bad tracing exporter",
			mutate:  func(c *Config) { c.Tracing.Exporter = "otlp" },
			wantErr: true,
		},
		{
			name:    "zero balls per over",
			mutate:  func(c *Config) { c.Analysis.BallsPerOver = 0 },
			wantErr: true,
		},
		{
			name:    "warn level accepted",
			mutate:  func(c *Config) { c.Logging.Level = "warn" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `
logging:
  level: debug
  output: console
analysis:
  top_batters: 20
charts:
  workbook: custom.xlsx
`
	require.NoError(t, writeFile(path, yaml))

	cfg, err := loadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, 20, cfg.Analysis.TopBatters)
	assert.Equal(t, "custom.xlsx", cfg.Charts.Workbook)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, writeFile(path, "logging: [not, a, map]"))

	_, err := loadFromFile(path)
	assert.Error(t, err)
}

func TestMergeConfigs(t *testing.T) {
	fileCfg := Config{}
	fileCfg.Logging.Level = "debug"
	fileCfg.Charts.Workbook = "from_file.xlsx"

	envCfg := Config{}
	envCfg.Logging.Level = "error" // env wins
	// Charts.Workbook unset in env, file value should survive

	merged := mergeConfigs(fileCfg, envCfg)

	assert.Equal(t, "error", merged.Logging.Level)
	assert.Equal(t, "from_file.xlsx", merged.Charts.Workbook)
}
