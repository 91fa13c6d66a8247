package analysis

import (
	"fmt"

	"iplcli/internal/config"
	"iplcli/pkg/contracts/domain"
)

// ChartKind selects how a step's aggregate is rendered.
type ChartKind string

const (
	ChartColumn        ChartKind = "column"  // vertical bars
	ChartBarH          ChartKind = "barh"    // horizontal bars
	ChartLine          ChartKind = "line"    // line with markers
	ChartPie           ChartKind = "pie"     // pie with percentage labels
	ChartGroupedColumn ChartKind = "grouped" // clustered vertical bars
)

// Series is one named value sequence aligned with a result's categories.
type Series struct {
	Name   string
	Values []float64
}

// StepResult is the aggregate view produced by one analysis step, ready for
// chart rendering and CSV export. Steps never share results; each one is
// recomputed from the input tables.
type StepResult struct {
	Name         string // snake_case identifier, used for sheet and file names
	Title        string
	Kind         ChartKind
	CategoryAxis string
	ValueAxis    string
	Categories   []string
	Series       []Series

	// YMin, when set, clips the value axis floor (runs-per-over chart).
	YMin *float64

	// Summary, when set, is printed as a console table after the step
	// (header row first).
	Summary [][]string

	// Note, when set, is logged and printed alongside the step output
	// (for example the count of excluded missing award values).
	Note string
}

// Input carries everything a step reads. Steps treat it as immutable.
type Input struct {
	Matches    []domain.Match
	Deliveries []domain.Delivery
	Config     config.AnalysisConfig
}

// Step is a single independent analysis. Steps may fail or skip without
// affecting each other.
type Step struct {
	Name  string
	Title string
	Run   func(in Input) (*StepResult, error)
}

// SkipError marks a step that cannot run against this dataset (for example
// a missing season column). A skip is reported and logged but is not a
// failure.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("step skipped: %s", e.Reason)
}

// NewSkipError creates a skip marker with the given reason.
func NewSkipError(reason string) *SkipError {
	return &SkipError{Reason: reason}
}

// Failure records a step that errored during the run.
type Failure struct {
	Step string
	Err  error
}
