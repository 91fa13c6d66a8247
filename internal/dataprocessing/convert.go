package dataprocessing

import (
	"strconv"
	"strings"

	"iplcli/pkg/contracts/domain"
)

// Matches converts the (preprocessed) match table into typed match records.
// Absent columns yield zero values; blank nullable cells stay blank.
func Matches(t *Table) []domain.Match {
	get := columnGetter(t)

	records := make([]domain.Match, t.NumRows())
	for i := range records {
		m := domain.Match{
			City:          get(i, "city"),
			Venue:         get(i, "venue"),
			Team1:         get(i, "team1"),
			Team2:         get(i, "team2"),
			TossWinner:    get(i, "toss_winner"),
			TossDecision:  get(i, "toss_decision"),
			Winner:        get(i, "winner"),
			PlayerOfMatch: get(i, "player_of_match"),
			Umpire1:       get(i, "umpire1"),
			Umpire2:       get(i, "umpire2"),
			Umpire3:       get(i, "umpire3"),
		}
		m.MatchID = parseIntCell(get(i, "match_id"))
		if d, ok := ParseDate(get(i, "date")); ok {
			m.Date = d
			m.HasDate = true
		}
		if season := get(i, "season"); !IsMissing(season) {
			m.Season = parseIntCell(season)
			m.HasSeason = true
		}
		records[i] = m
	}
	return records
}

// Deliveries converts the delivery table into typed delivery records.
func Deliveries(t *Table) []domain.Delivery {
	get := columnGetter(t)

	records := make([]domain.Delivery, t.NumRows())
	for i := range records {
		records[i] = domain.Delivery{
			MatchID:         parseIntCell(get(i, "match_id")),
			Inning:          parseIntCell(get(i, "inning")),
			BattingTeam:     get(i, "batting_team"),
			BowlingTeam:     get(i, "bowling_team"),
			Over:            parseIntCell(get(i, "over")),
			Ball:            parseIntCell(get(i, "ball")),
			Batter:          get(i, "batsman"),
			NonStriker:      get(i, "non_striker"),
			Bowler:          get(i, "bowler"),
			BatterRuns:      parseIntCell(get(i, "batsman_runs")),
			ExtraRuns:       parseIntCell(get(i, "extra_runs")),
			TotalRuns:       parseIntCell(get(i, "total_runs")),
			PlayerDismissed: get(i, "player_dismissed"),
			DismissalKind:   get(i, "dismissal_kind"),
			Fielder:         get(i, "fielder"),
		}
	}
	return records
}

// columnGetter returns an accessor resolving column names once up front.
// Missing markers (NA, NaN, null) normalize to the empty string.
func columnGetter(t *Table) func(row int, column string) string {
	indexes := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		indexes[c] = i
	}
	return func(row int, column string) string {
		idx, ok := indexes[column]
		if !ok {
			return ""
		}
		cell := strings.TrimSpace(t.Cell(row, idx))
		if IsMissing(cell) {
			return ""
		}
		return cell
	}
}

func parseIntCell(cell string) int {
	if cell == "" {
		return 0
	}
	if v, err := strconv.Atoi(cell); err == nil {
		return v
	}
	// Tolerate integral floats like "1.0" from loosely typed sources
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return int(f)
	}
	return 0
}
