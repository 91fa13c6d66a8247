package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"iplcli/internal/analysis"
	"iplcli/internal/config"
	"iplcli/internal/dataprocessing"
	"iplcli/internal/exporter"
	"iplcli/internal/infrastructure"
)

func main() {
	os.Exit(run())
}

func run() int {
	dir := flag.String("dir", "", "base directory for data and outputs (defaults to the executable directory)")
	workbook := flag.String("workbook", "", "chart workbook output path (defaults to charts/analysis_charts.xlsx)")
	flag.Parse()

	// Initialize paths first so every later default has a home
	var paths *config.Paths
	if *dir != "" {
		paths = config.PathsFor(*dir)
	} else {
		var err error
		paths, err = config.GetPaths()
		if err != nil {
			slog.Error("Failed to initialize paths", "error", err)
			return 1
		}
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if !filepath.IsAbs(cfg.Logging.FilePath) {
		cfg.Logging.FilePath = paths.GetLogPath(filepath.Base(cfg.Logging.FilePath))
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())

	logger.InfoContext(ctx, "Starting analysis run",
		slog.String("base_dir", paths.ExecutableDir),
		slog.String("matches_path", paths.MatchesCSV),
		slog.String("deliveries_path", paths.DeliveriesCSV))

	tracing, err := infrastructure.InitializeTracing(cfg.Tracing, logger)
	if err != nil {
		logger.WarnContext(ctx, "Failed to initialize tracing, continuing without it",
			slog.String("error", err.Error()))
		tracing = nil
	}
	if tracing != nil {
		defer tracing.Shutdown(context.Background())
	}

	// Load both datasets; a missing file aborts before any analysis starts
	loader := dataprocessing.NewLoader(logger, paths)
	matchTable, deliveryTable, err := loader.Load(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load datasets", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	dataprocessing.NewPreprocessor(logger).Apply(ctx, matchTable)

	// Diagnostic inspection of both tables; categorical statistics are
	// reported for the match table only
	summarizer := dataprocessing.NewSummarizer(logger, os.Stdout, cfg.Analysis.HeadRows)
	summarizer.Summarize(ctx, matchTable, true)
	summarizer.Summarize(ctx, deliveryTable, false)

	in := analysis.Input{
		Matches:    dataprocessing.Matches(matchTable),
		Deliveries: dataprocessing.Deliveries(deliveryTable),
	}

	analyzer := analysis.NewAnalyzer(logger, cfg.Analysis, tracing, os.Stdout)
	results, failures := analyzer.Run(ctx, in)

	exitCode := 0
	for _, f := range failures {
		fmt.Fprintf(os.Stderr, "analysis step %s failed: %v\n", f.Step, f.Err)
		exitCode = 1
	}

	if cfg.Charts.Enabled {
		path := *workbook
		if path == "" {
			path = cfg.Charts.Workbook
			if !filepath.IsAbs(path) {
				path = filepath.Join(paths.ChartsDir, filepath.Base(path))
			}
		}
		if err := exporter.NewChartWriter(logger, path).Write(ctx, results); err != nil {
			logger.ErrorContext(ctx, "Failed to write chart workbook", slog.String("error", err.Error()))
			fmt.Fprintln(os.Stderr, err)
			exitCode = 1
		}
	}

	if cfg.Export.Enabled {
		if err := exporter.NewCSVWriter(logger, paths).WriteAll(results); err != nil {
			logger.ErrorContext(ctx, "Failed to export step results", slog.String("error", err.Error()))
			fmt.Fprintln(os.Stderr, err)
			exitCode = 1
		}
	}

	analysis.PrintClosingSummary(os.Stdout)

	logger.InfoContext(ctx, "Analysis run finished",
		slog.Int("steps_succeeded", len(results)),
		slog.Int("steps_failed", len(failures)),
		slog.Int("exit_code", exitCode))

	return exitCode
}
