package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"iplcli/internal/analysis"
	"iplcli/internal/errors"
)

// ChartWriter renders analysis step results into a single Excel workbook,
// one worksheet per step: the aggregate data block plus a native chart next
// to it. The workbook path is the run's configurable chart destination; a
// disabled writer is the test double for display-free runs.
type ChartWriter struct {
	logger *slog.Logger
	path   string
}

// NewChartWriter creates a chart writer targeting the given workbook path.
func NewChartWriter(logger *slog.Logger, path string) *ChartWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartWriter{logger: logger, path: path}
}

// Write renders all step results and saves the workbook.
func (w *ChartWriter) Write(ctx context.Context, results []*analysis.StepResult) error {
	w.logger.InfoContext(ctx, "rendering chart workbook",
		slog.String("path", w.path),
		slog.Int("charts", len(results)))

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return errors.NewStorageError("failed to create charts directory", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for _, result := range results {
		if err := w.addSheet(f, result); err != nil {
			return fmt.Errorf("render %s: %w", result.Name, err)
		}
	}

	// Drop the default sheet so only step sheets remain
	if len(results) > 0 {
		f.DeleteSheet("Sheet1")
	}

	if err := f.SaveAs(w.path); err != nil {
		return errors.NewStorageError("failed to save chart workbook", err)
	}

	w.logger.InfoContext(ctx, "chart workbook written", slog.String("path", w.path))
	return nil
}

// addSheet writes one result's data block and attaches its chart.
func (w *ChartWriter) addSheet(f *excelize.File, result *analysis.StepResult) error {
	sheet := result.Name
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	// Header row: category axis label then series names
	header := make([]interface{}, 0, len(result.Series)+1)
	header = append(header, result.CategoryAxis)
	for _, s := range result.Series {
		header = append(header, s.Name)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	// Data rows
	for i, category := range result.Categories {
		row := make([]interface{}, 0, len(result.Series)+1)
		row = append(row, category)
		for _, s := range result.Series {
			if i < len(s.Values) {
				row = append(row, s.Values[i])
			} else {
				row = append(row, nil)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	chart, err := w.buildChart(sheet, result)
	if err != nil {
		return err
	}

	// Place the chart to the right of the data block
	anchorCol := len(result.Series) + 3
	anchor, err := excelize.CoordinatesToCellName(anchorCol, 1)
	if err != nil {
		return err
	}
	if err := f.AddChart(sheet, anchor, chart); err != nil {
		return fmt.Errorf("add chart: %w", err)
	}

	return nil
}

// buildChart maps a step result onto an excelize chart definition.
func (w *ChartWriter) buildChart(sheet string, result *analysis.StepResult) (*excelize.Chart, error) {
	n := len(result.Categories)
	categoriesRef := fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, n+1)

	series := make([]excelize.ChartSeries, len(result.Series))
	for i := range result.Series {
		col, err := excelize.ColumnNumberToName(i + 2)
		if err != nil {
			return nil, err
		}
		series[i] = excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$%s$1", sheet, col),
			Categories: categoriesRef,
			Values:     fmt.Sprintf("'%s'!$%s$2:$%s$%d", sheet, col, col, n+1),
		}
		if result.Kind == analysis.ChartLine {
			series[i].Marker = excelize.ChartMarker{Symbol: "circle", Size: 7}
		}
	}

	chart := &excelize.Chart{
		Series: series,
		Title:  []excelize.RichTextRun{{Text: result.Title}},
		Legend: excelize.ChartLegend{Position: "bottom"},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: result.CategoryAxis}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: result.ValueAxis}}},
	}

	switch result.Kind {
	case analysis.ChartBarH:
		chart.Type = excelize.Bar
	case analysis.ChartPie:
		chart.Type = excelize.Pie
		chart.PlotArea = excelize.ChartPlotArea{ShowPercent: true}
		chart.Legend = excelize.ChartLegend{Position: "right"}
	case analysis.ChartLine:
		chart.Type = excelize.Line
		if result.YMin != nil {
			chart.YAxis.Minimum = result.YMin
		}
	default:
		// Column chart covers both single and clustered multi-series bars
		chart.Type = excelize.Col
	}

	return chart, nil
}
