package analysis

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iplcli/pkg/contracts/domain"
)

func TestAnalyzerRunAllSteps(t *testing.T) {
	var out bytes.Buffer
	analyzer := NewAnalyzer(nil, testConfig(), nil, &out)

	results, failures := analyzer.Run(context.Background(), fixtureInput())

	assert.Empty(t, failures)
	require.Len(t, results, len(Steps()))
	assert.Equal(t, "matches_per_season", results[0].Name)
	assert.Equal(t, "avg_score_per_season", results[9].Name)

	// The toss step's console summary is rendered
	assert.Contains(t, out.String(), "Toss Decision vs Match Outcome")
}

func TestAnalyzerRunSkipsSeasonSteps(t *testing.T) {
	in := fixtureInput()
	for i := range in.Matches {
		in.Matches[i].HasSeason = false
	}

	var out bytes.Buffer
	analyzer := NewAnalyzer(nil, testConfig(), nil, &out)

	results, failures := analyzer.Run(context.Background(), in)

	// Both season-dependent steps skip; skips are not failures
	assert.Empty(t, failures)
	assert.Len(t, results, len(Steps())-2)
	for _, result := range results {
		assert.NotEqual(t, "matches_per_season", result.Name)
		assert.NotEqual(t, "avg_score_per_season", result.Name)
	}
	assert.Contains(t, out.String(), "skipping matches_per_season")
	assert.Contains(t, out.String(), "skipping avg_score_per_season")
}

func TestAnalyzerRunIsolatesFailures(t *testing.T) {
	in := fixtureInput()
	in.Deliveries = nil // delivery-driven steps fail, match-driven ones keep going

	var out bytes.Buffer
	analyzer := NewAnalyzer(nil, testConfig(), nil, &out)

	results, failures := analyzer.Run(context.Background(), in)

	failed := make(map[string]bool)
	for _, f := range failures {
		failed[f.Step] = true
		assert.ErrorContains(t, f.Err, "step "+f.Step)
	}
	assert.Equal(t, map[string]bool{
		"top_batters":    true,
		"top_bowlers":    true,
		"runs_per_over":  true,
		"balls_per_over": true,
	}, failed)

	succeeded := make(map[string]bool)
	for _, result := range results {
		succeeded[result.Name] = true
	}
	assert.True(t, succeeded["matches_per_season"])
	assert.True(t, succeeded["top_venues"])
	assert.True(t, succeeded["toss_decision_impact"])
}

func TestAnalyzerPrintsNote(t *testing.T) {
	in := fixtureInput()
	in.Matches = append(in.Matches, domain.Match{MatchID: 4})

	var out bytes.Buffer
	analyzer := NewAnalyzer(nil, testConfig(), nil, &out)
	analyzer.Run(context.Background(), in)

	assert.Contains(t, out.String(), "note: excluded 1 match(es) with missing player_of_match")
}

func TestPrintClosingSummary(t *testing.T) {
	var out bytes.Buffer
	PrintClosingSummary(&out)

	s := out.String()
	assert.Contains(t, s, "Summary and Conclusion")
	assert.Contains(t, s, "Analysis complete.")
	assert.Contains(t, s, "Further analysis could explore:")
}
