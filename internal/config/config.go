package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
// It replaces the ambient plotting/warning globals of earlier tooling with
// one explicit object handed to each component at construction.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Charts   ChartsConfig   `yaml:"charts" envconfig:"CHARTS"`
	Export   ExportConfig   `yaml:"export" envconfig:"EXPORT"`
	Tracing  TracingConfig  `yaml:"tracing" envconfig:"TRACING"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"both" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/analyzer.log"`
}

// AnalysisConfig contains tunables for the analysis steps. The defaults
// reproduce the canonical report: top 10 venues and winners, top 15 batters,
// bowlers and award winners, six balls per over.
type AnalysisConfig struct {
	TopVenues      int `yaml:"top_venues" envconfig:"TOP_VENUES" default:"10" validate:"min=1"`
	TopWinners     int `yaml:"top_winners" envconfig:"TOP_WINNERS" default:"10" validate:"min=1"`
	TopBatters     int `yaml:"top_batters" envconfig:"TOP_BATTERS" default:"15" validate:"min=1"`
	TopBowlers     int `yaml:"top_bowlers" envconfig:"TOP_BOWLERS" default:"15" validate:"min=1"`
	TopAwardees    int `yaml:"top_awardees" envconfig:"TOP_AWARDEES" default:"15" validate:"min=1"`
	BallsPerOver   int `yaml:"balls_per_over" envconfig:"BALLS_PER_OVER" default:"6" validate:"min=1"`
	HeadRows       int `yaml:"head_rows" envconfig:"HEAD_ROWS" default:"5" validate:"min=1"`
}

// ChartsConfig controls the chart workbook destination.
type ChartsConfig struct {
	Enabled  bool   `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	Workbook string `yaml:"workbook" envconfig:"WORKBOOK" default:"analysis_charts.xlsx"`
}

// ExportConfig controls per-step aggregate CSV export.
type ExportConfig struct {
	Enabled bool `yaml:"enabled" envconfig:"ENABLED" default:"true"`
}

// TracingConfig controls OpenTelemetry span export.
type TracingConfig struct {
	Exporter string `yaml:"exporter" envconfig:"EXPORTER" default:"none" validate:"oneof=stdout none"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("IPL", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile, err := getConfigFilePath()
	if err == nil {
		if _, statErr := os.Stat(configFile); statErr == nil {
			fileConfig, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(*fileConfig, cfg)
		}
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Charts.Workbook == "" {
		envConfig.Charts.Workbook = fileConfig.Charts.Workbook
	}
	if envConfig.Tracing.Exporter == "" {
		envConfig.Tracing.Exporter = fileConfig.Tracing.Exporter
	}

	return envConfig
}

// validate checks the configuration using struct-level validation tags.
func (c *Config) validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}

// getConfigFilePath returns the path of the optional YAML config file,
// resolved next to the executable like every other path.
func getConfigFilePath() (string, error) {
	paths, err := GetPaths()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}

// Default returns the built-in configuration used when no file or
// environment overrides are present. Useful for tests and for bootstrap
// logging before Load succeeds.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/analyzer.log",
		},
		Analysis: AnalysisConfig{
			TopVenues:    10,
			TopWinners:   10,
			TopBatters:   15,
			TopBowlers:   15,
			TopAwardees:  15,
			BallsPerOver: 6,
			HeadRows:     5,
		},
		Charts: ChartsConfig{
			Enabled:  true,
			Workbook: "analysis_charts.xlsx",
		},
		Export: ExportConfig{
			Enabled: true,
		},
		Tracing: TracingConfig{
			Exporter: "none",
		},
	}
}
