package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"iplcli/internal/analysis"
	"iplcli/internal/config"
)

// CSVWriter exports per-step aggregate views as CSV files in the reports
// directory.
type CSVWriter struct {
	logger *slog.Logger
	paths  *config.Paths
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger, paths *config.Paths) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger, paths: paths}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	w.logger.Info("writing CSV file",
		slog.String("path", filePath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// WriteStepResult exports one analysis step's aggregate view to
// <reports>/<step-name>.csv. One row per category; one column per series.
func (w *CSVWriter) WriteStepResult(result *analysis.StepResult) error {
	headers := make([]string, 0, len(result.Series)+1)
	headers = append(headers, result.CategoryAxis)
	for _, s := range result.Series {
		headers = append(headers, s.Name)
	}

	records := make([][]string, len(result.Categories))
	for i, category := range result.Categories {
		row := make([]string, 0, len(headers))
		row = append(row, category)
		for _, s := range result.Series {
			value := 0.0
			if i < len(s.Values) {
				value = s.Values[i]
			}
			row = append(row, strconv.FormatFloat(value, 'f', -1, 64))
		}
		records[i] = row
	}

	path := w.paths.GetReportPath(result.Name + ".csv")
	return w.WriteCSV(path, WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: true,
	})
}

// WriteAll exports every step result, stopping at the first error.
func (w *CSVWriter) WriteAll(results []*analysis.StepResult) error {
	for _, result := range results {
		if err := w.WriteStepResult(result); err != nil {
			return fmt.Errorf("export %s: %w", result.Name, err)
		}
	}
	return nil
}
