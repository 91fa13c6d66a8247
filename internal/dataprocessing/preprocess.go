package dataprocessing

import (
	"context"
	"log/slog"
	"strconv"
)

// Preprocessor normalizes the match table in place before analysis:
// column rename (id -> match_id), date parsing, and season derivation.
// The delivery table needs no preprocessing.
type Preprocessor struct {
	logger *slog.Logger
}

// NewPreprocessor creates a preprocessor.
func NewPreprocessor(logger *slog.Logger) *Preprocessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Preprocessor{logger: logger}
}

// Apply runs all preprocessing passes on the match table. Date problems are
// recoverable: the run continues with season left untouched and step 10
// skips itself downstream.
func (p *Preprocessor) Apply(ctx context.Context, matches *Table) {
	p.normalizeMatchID(ctx, matches)
	p.deriveSeason(ctx, matches)
}

// normalizeMatchID renames id to match_id when only id exists. When both
// columns are present the source data is ambiguous and both are left alone.
func (p *Preprocessor) normalizeMatchID(ctx context.Context, matches *Table) {
	hasID := matches.HasColumn("id")
	hasMatchID := matches.HasColumn("match_id")

	switch {
	case hasID && !hasMatchID:
		matches.RenameColumn("id", "match_id")
		p.logger.InfoContext(ctx, "renamed id column to match_id")
	case hasID && hasMatchID:
		p.logger.WarnContext(ctx, "both id and match_id columns present, leaving both untouched")
	}
}

// deriveSeason parses the date column and overwrites season with the
// calendar year of each row's date. Season is always a pure function of
// date: a season column already present in the source is recomputed.
func (p *Preprocessor) deriveSeason(ctx context.Context, matches *Table) {
	idx := matches.ColumnIndex("date")
	if idx < 0 {
		p.logger.WarnContext(ctx, "date column not found in match table, season left unset")
		return
	}

	normalized := make([]string, matches.NumRows())
	seasons := make([]string, matches.NumRows())
	for i := 0; i < matches.NumRows(); i++ {
		cell := matches.Cell(i, idx)
		if IsMissing(cell) {
			continue
		}
		d, ok := ParseDate(cell)
		if !ok {
			// Any unparseable value fails the whole conversion, matching the
			// all-or-nothing behavior of the original column conversion.
			p.logger.WarnContext(ctx, "could not convert date column, season left unchanged",
				slog.Int("row", i+1),
				slog.String("value", cell))
			return
		}
		normalized[i] = d.Format("2006-01-02")
		seasons[i] = strconv.Itoa(d.Year())
	}

	matches.SetColumn("date", normalized)
	matches.SetColumn("season", seasons)

	p.logger.InfoContext(ctx, "derived season from date column",
		slog.Int("rows", matches.NumRows()))
}
