package dataprocessing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsTable() *Table {
	return NewTable("matches",
		[]string{"id", "margin", "city"},
		[][]string{
			{"1", "10", "Bangalore"},
			{"2", "20", "Kolkata"},
			{"3", "30", "Kolkata"},
			{"4", "40", "NA"},
		})
}

func TestSchema(t *testing.T) {
	s := NewSummarizer(nil, &bytes.Buffer{}, 5)
	entries := s.Schema(statsTable())

	require.Len(t, entries, 3)
	assert.Equal(t, SchemaEntry{Column: "id", Type: TypeInt, NonNull: 4}, entries[0])
	assert.Equal(t, SchemaEntry{Column: "city", Type: TypeString, NonNull: 3}, entries[2])
}

func TestDescribeNumeric(t *testing.T) {
	s := NewSummarizer(nil, &bytes.Buffer{}, 5)
	stats := s.DescribeNumeric(statsTable())

	require.Len(t, stats, 2)

	margin := stats[1]
	assert.Equal(t, "margin", margin.Column)
	assert.Equal(t, 4, margin.Count)
	assert.InDelta(t, 25.0, margin.Mean, 1e-9)
	assert.InDelta(t, 12.9099444874, margin.Std, 1e-6)
	assert.InDelta(t, 10.0, margin.Min, 1e-9)
	assert.InDelta(t, 17.5, margin.Q25, 1e-9)
	assert.InDelta(t, 25.0, margin.Median, 1e-9)
	assert.InDelta(t, 32.5, margin.Q75, 1e-9)
	assert.InDelta(t, 40.0, margin.Max, 1e-9)
}

func TestDescribeCategorical(t *testing.T) {
	s := NewSummarizer(nil, &bytes.Buffer{}, 5)
	stats := s.DescribeCategorical(statsTable())

	require.Len(t, stats, 1)
	assert.Equal(t, CategoricalStats{
		Column: "city",
		Count:  3,
		Unique: 2,
		Top:    "Kolkata",
		Freq:   2,
	}, stats[0])
}

func TestSummarizeRenders(t *testing.T) {
	var buf bytes.Buffer
	s := NewSummarizer(nil, &buf, 2)
	s.Summarize(context.Background(), statsTable(), true)

	out := buf.String()
	assert.Contains(t, out, "matches: schema")
	assert.Contains(t, out, "matches: first 2 rows")
	assert.Contains(t, out, "matches: numeric describe")
	assert.Contains(t, out, "matches: categorical describe")
	assert.Contains(t, out, "matches: missing values")
	assert.Contains(t, out, "4 rows x 3 columns")
}

func TestSummarizeWithoutCategorical(t *testing.T) {
	var buf bytes.Buffer
	s := NewSummarizer(nil, &buf, 5)
	s.Summarize(context.Background(), statsTable(), false)

	assert.NotContains(t, buf.String(), "categorical describe")
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	assert.InDelta(t, 1.0, quantile(sorted, 0), 1e-9)
	assert.InDelta(t, 2.5, quantile(sorted, 0.5), 1e-9)
	assert.InDelta(t, 4.0, quantile(sorted, 1), 1e-9)
	assert.InDelta(t, 1.75, quantile(sorted, 0.25), 1e-9)

	assert.Equal(t, 0.0, quantile(nil, 0.5))
	assert.Equal(t, 7.0, quantile([]float64{7}, 0.5))
}
