package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"iplcli/internal/config"
	"iplcli/internal/errors"
)

// Loader reads the two input datasets from the executable-relative data
// directory. It is fail-fast: any missing or unreadable file aborts the run
// before analysis starts.
type Loader struct {
	logger *slog.Logger
	paths  *config.Paths
}

// NewLoader creates a loader bound to the resolved application paths.
func NewLoader(logger *slog.Logger, paths *config.Paths) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, paths: paths}
}

// Load reads matches.csv and deliveries.csv into tables. If either file is
// absent, the returned error names both expected paths and the current
// working directory so a misplaced invocation is easy to diagnose.
func (l *Loader) Load(ctx context.Context) (matches, deliveries *Table, err error) {
	l.logger.InfoContext(ctx, "loading datasets",
		slog.String("matches_path", l.paths.MatchesCSV),
		slog.String("deliveries_path", l.paths.DeliveriesCSV))

	missing := false
	for _, path := range []string{l.paths.MatchesCSV, l.paths.DeliveriesCSV} {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			missing = true
		}
	}
	if missing {
		cwd, _ := os.Getwd()
		return nil, nil, errors.NewNotFoundError(
			fmt.Sprintf("input datasets (expected %s and %s; current working directory is %s)",
				l.paths.MatchesCSV, l.paths.DeliveriesCSV, cwd))
	}

	matches, err = ParseCSVFile(l.paths.MatchesCSV, "matches")
	if err != nil {
		return nil, nil, fmt.Errorf("load matches: %w", err)
	}

	deliveries, err = ParseCSVFile(l.paths.DeliveriesCSV, "deliveries")
	if err != nil {
		return nil, nil, fmt.Errorf("load deliveries: %w", err)
	}

	l.logger.InfoContext(ctx, "datasets loaded",
		slog.Int("match_rows", matches.NumRows()),
		slog.Int("delivery_rows", deliveries.NumRows()))

	return matches, deliveries, nil
}
