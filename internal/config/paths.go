package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for every file path the analyzer
// touches. All paths are resolved relative to the executable directory,
// never the current working directory, so the tool behaves the same no
// matter where it is invoked from.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ReportsDir    string
	ChartsDir     string
	LogsDir       string

	// Input datasets (fixed names, expected next to the executable's data dir)
	MatchesCSV    string
	DeliveriesCSV string

	// Optional YAML configuration file
	ConfigFile string

	// Chart workbook destination
	ChartWorkbook string
}

// GetPaths returns the application paths relative to the executable location.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	return PathsFor(filepath.Dir(exe)), nil
}

// PathsFor builds the path set rooted at the given base directory.
// Split out from GetPaths so tests can root everything in a temp dir.
//
// Directory structure:
//
//	<base>/
//	  ├── config.yaml          (optional overrides)
//	  ├── data/
//	  │   ├── matches.csv
//	  │   └── deliveries.csv
//	  ├── reports/             (per-step aggregate CSVs)
//	  ├── charts/              (chart workbook)
//	  └── logs/
func PathsFor(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	chartsDir := filepath.Join(baseDir, "charts")

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		ReportsDir:    filepath.Join(baseDir, "reports"),
		ChartsDir:     chartsDir,
		LogsDir:       filepath.Join(baseDir, "logs"),

		MatchesCSV:    filepath.Join(dataDir, "matches.csv"),
		DeliveriesCSV: filepath.Join(dataDir, "deliveries.csv"),

		ConfigFile: filepath.Join(baseDir, "config.yaml"),

		ChartWorkbook: filepath.Join(chartsDir, "analysis_charts.xlsx"),
	}
}

// EnsureDirectories creates all required output directories if they don't
// exist. The data directory is created too so a first run produces a clear
// "file not found" diagnostic pointing at the right place.
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.ReportsDir,
		p.ChartsDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetLogPath returns the full path for a log file name.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetReportPath returns the full path for a report file name.
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}
