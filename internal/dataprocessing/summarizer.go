package dataprocessing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Summarizer prints the diagnostic inspection of a table: schema, leading
// rows, descriptive statistics and missing-value counts. It is read-only and
// never fails the run; columns whose statistics cannot be computed are
// simply skipped.
type Summarizer struct {
	logger   *slog.Logger
	out      io.Writer
	headRows int
}

// SchemaEntry describes one column of a table.
type SchemaEntry struct {
	Column  string
	Type    ColumnType
	NonNull int
}

// NumericStats holds descriptive statistics for a numeric column.
type NumericStats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// CategoricalStats holds descriptive statistics for a text column.
type CategoricalStats struct {
	Column string
	Count  int
	Unique int
	Top    string
	Freq   int
}

// NewSummarizer creates a summarizer writing human-readable tables to out.
func NewSummarizer(logger *slog.Logger, out io.Writer, headRows int) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	if headRows <= 0 {
		headRows = 5
	}
	return &Summarizer{logger: logger, out: out, headRows: headRows}
}

// Summarize prints every inspection section for the table. Categorical
// statistics are included only when requested (match table only, matching
// the canonical report).
func (s *Summarizer) Summarize(ctx context.Context, t *Table, includeCategorical bool) {
	s.logger.InfoContext(ctx, "summarizing dataset",
		slog.String("table", t.Name),
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumColumns()))

	s.banner(fmt.Sprintf("%s: schema", t.Name))
	s.renderSchema(t)

	s.banner(fmt.Sprintf("%s: first %d rows", t.Name, s.headRows))
	s.renderHead(t)

	s.banner(fmt.Sprintf("%s: numeric describe", t.Name))
	s.renderNumericDescribe(t)

	if includeCategorical {
		s.banner(fmt.Sprintf("%s: categorical describe", t.Name))
		s.renderCategoricalDescribe(t)
	}

	s.banner(fmt.Sprintf("%s: missing values", t.Name))
	s.renderMissingCounts(t)
}

// Schema returns one entry per column with inferred type and non-null count.
func (s *Summarizer) Schema(t *Table) []SchemaEntry {
	entries := make([]SchemaEntry, len(t.Columns))
	for i, c := range t.Columns {
		entries[i] = SchemaEntry{
			Column:  c,
			Type:    t.Types[i],
			NonNull: t.NonNullCount(c),
		}
	}
	return entries
}

// DescribeNumeric computes descriptive statistics for every numeric column.
func (s *Summarizer) DescribeNumeric(t *Table) []NumericStats {
	var stats []NumericStats
	for i, c := range t.Columns {
		if t.Types[i] != TypeInt && t.Types[i] != TypeFloat {
			continue
		}
		values := t.FloatColumn(c)
		if len(values) == 0 {
			continue
		}
		stats = append(stats, describeColumn(c, values))
	}
	return stats
}

// DescribeCategorical computes count/unique/top/freq for every string column.
func (s *Summarizer) DescribeCategorical(t *Table) []CategoricalStats {
	var stats []CategoricalStats
	for i, c := range t.Columns {
		if t.Types[i] != TypeString {
			continue
		}
		idx := t.ColumnIndex(c)
		counts := make(map[string]int)
		total := 0
		for r := 0; r < t.NumRows(); r++ {
			cell := t.Cell(r, idx)
			if IsMissing(cell) {
				continue
			}
			counts[cell]++
			total++
		}
		if total == 0 {
			continue
		}
		top, freq := "", 0
		for v, n := range counts {
			if n > freq || (n == freq && v < top) {
				top, freq = v, n
			}
		}
		stats = append(stats, CategoricalStats{
			Column: c,
			Count:  total,
			Unique: len(counts),
			Top:    top,
			Freq:   freq,
		})
	}
	return stats
}

func (s *Summarizer) renderSchema(t *Table) {
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Column", "Type", "Non-Null"})
	for _, e := range s.Schema(t) {
		table.Append([]string{e.Column, string(e.Type), fmt.Sprintf("%d", e.NonNull)})
	}
	table.Render()
	fmt.Fprintf(s.out, "%d rows x %d columns, approx. %.1f KB\n",
		t.NumRows(), t.NumColumns(), float64(t.ApproxMemoryBytes())/1024)
}

func (s *Summarizer) renderHead(t *Table) {
	table := tablewriter.NewWriter(s.out)
	table.SetHeader(t.Columns)
	for _, row := range t.Head(s.headRows) {
		table.Append(row)
	}
	table.Render()
}

func (s *Summarizer) renderNumericDescribe(t *Table) {
	stats := s.DescribeNumeric(t)
	if len(stats) == 0 {
		fmt.Fprintln(s.out, "no numeric columns")
		return
	}
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"})
	for _, st := range stats {
		table.Append([]string{
			st.Column,
			fmt.Sprintf("%d", st.Count),
			formatStat(st.Mean),
			formatStat(st.Std),
			formatStat(st.Min),
			formatStat(st.Q25),
			formatStat(st.Median),
			formatStat(st.Q75),
			formatStat(st.Max),
		})
	}
	table.Render()
}

func (s *Summarizer) renderCategoricalDescribe(t *Table) {
	stats := s.DescribeCategorical(t)
	if len(stats) == 0 {
		fmt.Fprintln(s.out, "no categorical columns")
		return
	}
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Column", "Count", "Unique", "Top", "Freq"})
	for _, st := range stats {
		table.Append([]string{
			st.Column,
			fmt.Sprintf("%d", st.Count),
			fmt.Sprintf("%d", st.Unique),
			st.Top,
			fmt.Sprintf("%d", st.Freq),
		})
	}
	table.Render()
}

func (s *Summarizer) renderMissingCounts(t *Table) {
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Column", "Missing"})
	for _, c := range t.Columns {
		table.Append([]string{c, fmt.Sprintf("%d", t.MissingCount(c))})
	}
	table.Render()
}

func (s *Summarizer) banner(title string) {
	color.New(color.FgCyan, color.Bold).Fprintf(s.out, "\n--- %s ---\n", title)
}

// describeColumn computes count, mean, sample std and quantiles.
func describeColumn(name string, values []float64) NumericStats {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	std := 0.0
	if len(sorted) > 1 {
		var sq float64
		for _, v := range sorted {
			sq += (v - mean) * (v - mean)
		}
		std = math.Sqrt(sq / float64(len(sorted)-1))
	}

	return NumericStats{
		Column: name,
		Count:  len(sorted),
		Mean:   mean,
		Std:    std,
		Min:    sorted[0],
		Q25:    quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q75:    quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// quantile uses linear interpolation between closest ranks on sorted input.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func formatStat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
