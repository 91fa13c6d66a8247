package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iplcli/internal/analysis"
	"iplcli/internal/config"
)

func TestWriteCSV(t *testing.T) {
	tests := []struct {
		name    string
		options WriteOptions
		want    string
	}{
		{
			name: "headers and records",
			options: WriteOptions{
				Headers: []string{"season", "matches"},
				Records: [][]string{
					{"2019", "60"},
					{"2020", "56"},
				},
			},
			want: "season,matches\n2019,60\n2020,56\n",
		},
		{
			name: "records only",
			options: WriteOptions{
				Records: [][]string{{"a", "b"}},
			},
			want: "a,b\n",
		},
		{
			name: "bom prefix",
			options: WriteOptions{
				Headers:   []string{"venue"},
				Records:   [][]string{{"Eden Gardens"}},
				BOMPrefix: true,
			},
			want: "\xEF\xBB\xBFvenue\nEden Gardens\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writer := NewCSVWriter(nil, config.PathsFor(dir))

			path := filepath.Join(dir, "out", "result.csv")
			err := writer.WriteCSV(path, tt.options)
			require.NoError(t, err)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestWriteStepResult(t *testing.T) {
	dir := t.TempDir()
	paths := config.PathsFor(dir)
	writer := NewCSVWriter(nil, paths)

	result := &analysis.StepResult{
		Name:         "matches_per_season",
		Title:        "Matches Played Per Season",
		Kind:         analysis.ChartColumn,
		CategoryAxis: "season",
		ValueAxis:    "matches",
		Categories:   []string{"2019", "2020"},
		Series: []analysis.Series{
			{Name: "matches", Values: []float64{60, 56}},
		},
	}

	err := writer.WriteStepResult(result)
	require.NoError(t, err)

	data, err := os.ReadFile(paths.GetReportPath("matches_per_season.csv"))
	require.NoError(t, err)
	assert.Equal(t, "\xEF\xBB\xBFseason,matches\n2019,60\n2020,56\n", string(data))
}

func TestWriteStepResult_MultiSeries(t *testing.T) {
	dir := t.TempDir()
	paths := config.PathsFor(dir)
	writer := NewCSVWriter(nil, paths)

	result := &analysis.StepResult{
		Name:         "toss_decision_impact",
		CategoryAxis: "toss_decision",
		Categories:   []string{"bat", "field"},
		Series: []analysis.Series{
			{Name: "won", Values: []float64{30, 45}},
			// short series pads with zero
			{Name: "lost", Values: []float64{25}},
		},
	}

	require.NoError(t, writer.WriteStepResult(result))

	data, err := os.ReadFile(paths.GetReportPath("toss_decision_impact.csv"))
	require.NoError(t, err)
	assert.Equal(t, "\xEF\xBB\xBFtoss_decision,won,lost\nbat,30,25\nfield,45,0\n", string(data))
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	paths := config.PathsFor(dir)
	writer := NewCSVWriter(nil, paths)

	results := []*analysis.StepResult{
		{
			Name:         "top_venues",
			CategoryAxis: "venue",
			Categories:   []string{"Wankhede Stadium"},
			Series:       []analysis.Series{{Name: "matches", Values: []float64{77}}},
		},
		{
			Name:         "top_winners",
			CategoryAxis: "team",
			Categories:   []string{"Mumbai Indians"},
			Series:       []analysis.Series{{Name: "wins", Values: []float64{120}}},
		},
	}

	require.NoError(t, writer.WriteAll(results))

	for _, result := range results {
		_, err := os.Stat(paths.GetReportPath(result.Name + ".csv"))
		assert.NoError(t, err, "expected report for %s", result.Name)
	}
}
