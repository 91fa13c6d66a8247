package dataprocessing

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"iplcli/internal/shared/testutil"
)

func TestNormalizeMatchID(t *testing.T) {
	p := NewPreprocessor(nil)
	ctx := context.Background()

	t.Run("renames id when match_id absent", func(t *testing.T) {
		table := NewTable("matches", []string{"id", "city"}, [][]string{{"1", "Pune"}})
		p.Apply(ctx, table)

		assert.True(t, table.HasColumn("match_id"))
		assert.False(t, table.HasColumn("id"))
		assert.Equal(t, []string{"1"}, table.Column("match_id"))
	})

	t.Run("leaves both columns when both present", func(t *testing.T) {
		logger, logs := testutil.NewLogger()
		table := NewTable("matches", []string{"id", "match_id"}, [][]string{{"7", "7"}})
		NewPreprocessor(logger).Apply(ctx, table)

		assert.True(t, table.HasColumn("id"))
		assert.True(t, table.HasColumn("match_id"))
		assert.True(t, logs.HasMessage("both id and match_id columns present, leaving both untouched"))
	})

	t.Run("no-op when only match_id present", func(t *testing.T) {
		table := NewTable("matches", []string{"match_id"}, [][]string{{"3"}})
		p.Apply(ctx, table)

		assert.Equal(t, []string{"match_id"}, table.Columns)
	})
}

func TestDeriveSeason(t *testing.T) {
	p := NewPreprocessor(nil)
	ctx := context.Background()

	t.Run("season is the calendar year of the date", func(t *testing.T) {
		table := NewTable("matches",
			[]string{"id", "date"},
			[][]string{
				{"1", "2008-04-18"},
				{"2", "18/04/2009"},
				{"3", ""},
			})
		p.Apply(ctx, table)

		assert.Equal(t, []string{"2008", "2009", ""}, table.Column("season"))
		// Dates are normalized to ISO form
		assert.Equal(t, []string{"2008-04-18", "2009-04-18", ""}, table.Column("date"))
	})

	t.Run("existing season column is recomputed", func(t *testing.T) {
		table := NewTable("matches",
			[]string{"id", "date", "season"},
			[][]string{{"1", "2020-09-19", "2020/21"}})
		p.Apply(ctx, table)

		assert.Equal(t, []string{"2020"}, table.Column("season"))
	})

	t.Run("missing date column leaves table untouched", func(t *testing.T) {
		table := NewTable("matches", []string{"id", "city"}, [][]string{{"1", "Pune"}})
		p.Apply(ctx, table)

		assert.False(t, table.HasColumn("season"))
	})

	t.Run("unparseable date aborts the whole conversion", func(t *testing.T) {
		logger, logs := testutil.NewLogger()
		table := NewTable("matches",
			[]string{"id", "date"},
			[][]string{
				{"1", "2008-04-18"},
				{"2", "eighteenth of april"},
			})
		NewPreprocessor(logger).Apply(ctx, table)

		// Neither row is converted; no season column appears
		assert.False(t, table.HasColumn("season"))
		assert.Equal(t, []string{"2008-04-18", "eighteenth of april"}, table.Column("date"))
		assert.NotEmpty(t, logs.MessagesAt(slog.LevelWarn))
	})
}
