package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"iplcli/internal/config"
	"iplcli/internal/infrastructure"
)

// Analyzer runs the analysis steps against the loaded datasets. Steps are
// independent: a failing step is recorded and the run continues, and skipped
// steps (missing season data) are logged without counting as failures.
type Analyzer struct {
	logger  *slog.Logger
	cfg     config.AnalysisConfig
	tracing *infrastructure.TracingProvider
	out     io.Writer
}

// NewAnalyzer creates an analyzer. out receives the per-step console
// summaries; tracing may be a noop provider.
func NewAnalyzer(logger *slog.Logger, cfg config.AnalysisConfig, tracing *infrastructure.TracingProvider, out io.Writer) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger, cfg: cfg, tracing: tracing, out: out}
}

// Run executes every step in presentation order and returns the successful
// results plus the failures. The caller decides the process exit status from
// the failure list.
func (a *Analyzer) Run(ctx context.Context, in Input) ([]*StepResult, []Failure) {
	in.Config = a.cfg

	var results []*StepResult
	var failures []Failure

	steps := Steps()
	for i, step := range steps {
		stepCtx := ctx
		endSpan := func() {}
		if a.tracing != nil {
			sctx, span := a.tracing.StartSpan(ctx, "analysis.step", map[string]string{
				"step": step.Name,
			})
			stepCtx = sctx
			endSpan = func() { span.End() }
		}

		result, err := a.runStep(stepCtx, i+1, len(steps), step, in)
		if err != nil {
			infrastructure.RecordError(stepCtx, err)
			failures = append(failures, Failure{Step: step.Name, Err: err})
		} else if result != nil {
			results = append(results, result)
		}
		endSpan()
	}

	a.logger.InfoContext(ctx, "analysis run complete",
		slog.Int("steps", len(steps)),
		slog.Int("succeeded", len(results)),
		slog.Int("failed", len(failures)))

	return results, failures
}

// runStep executes one step. A nil result with nil error means the step
// skipped itself.
func (a *Analyzer) runStep(ctx context.Context, number, total int, step Step, in Input) (*StepResult, error) {
	a.logger.InfoContext(ctx, "running analysis step",
		slog.Int("step", number),
		slog.Int("total", total),
		slog.String("name", step.Name))

	result, err := step.Run(in)
	if err != nil {
		var skip *SkipError
		if errors.As(err, &skip) {
			a.logger.WarnContext(ctx, "analysis step skipped",
				slog.String("name", step.Name),
				slog.String("reason", skip.Reason))
			fmt.Fprintf(a.out, "skipping %s: %s\n", step.Name, skip.Reason)
			return nil, nil
		}
		a.logger.ErrorContext(ctx, "analysis step failed",
			slog.String("name", step.Name),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("step %s: %w", step.Name, err)
	}

	if result.Note != "" {
		a.logger.InfoContext(ctx, "analysis step note",
			slog.String("name", step.Name),
			slog.String("note", result.Note))
		fmt.Fprintf(a.out, "note: %s\n", result.Note)
	}

	if len(result.Summary) > 1 {
		a.renderSummary(result)
	}

	return result, nil
}

// renderSummary prints a step's console summary table.
func (a *Analyzer) renderSummary(result *StepResult) {
	color.New(color.FgYellow).Fprintf(a.out, "\n%s\n", result.Title)
	table := tablewriter.NewWriter(a.out)
	table.SetHeader(result.Summary[0])
	for _, row := range result.Summary[1:] {
		table.Append(row)
	}
	table.Render()
}
