package analysis

import (
	"fmt"
	"sort"
	"strconv"
)

// Steps returns the ten analysis steps in presentation order. Order matters
// only for presentation; every step recomputes its view from the inputs.
func Steps() []Step {
	return []Step{
		{Name: "matches_per_season", Title: "Number of Matches Played Per Season", Run: matchesPerSeason},
		{Name: "top_venues", Title: "Most Frequent Venues", Run: topVenues},
		{Name: "top_winners", Title: "Teams with Most Wins", Run: topWinners},
		{Name: "toss_decision_impact", Title: "Toss Decision vs Match Outcome", Run: tossDecisionImpact},
		{Name: "top_batters", Title: "Top Run Scorers", Run: topBatters},
		{Name: "player_of_match_awards", Title: "Most Player of the Match Awards", Run: playerOfMatchAwards},
		{Name: "top_bowlers", Title: "Top Wicket Takers", Run: topBowlers},
		{Name: "runs_per_over", Title: "Estimated Average Runs Scored per Over", Run: runsPerOver},
		{Name: "balls_per_over", Title: "Distribution of Balls Bowled Per Over Number", Run: ballsPerOver},
		{Name: "avg_score_per_season", Title: "Average Total Runs per Match Across Seasons", Run: avgScorePerSeason},
	}
}

// matchesPerSeason counts matches grouped by season, seasons ascending.
func matchesPerSeason(in Input) (*StepResult, error) {
	counts := make(map[int]int)
	for i := range in.Matches {
		if in.Matches[i].HasSeason {
			counts[in.Matches[i].Season]++
		}
	}
	if len(counts) == 0 {
		return nil, NewSkipError("no season values in match table")
	}

	seasons := sortedIntKeys(counts)
	result := &StepResult{
		Name:         "matches_per_season",
		Title:        "Number of Matches Played Per Season",
		Kind:         ChartColumn,
		CategoryAxis: "Season",
		ValueAxis:    "Number of Matches",
	}
	values := make([]float64, len(seasons))
	for i, s := range seasons {
		result.Categories = append(result.Categories, strconv.Itoa(s))
		values[i] = float64(counts[s])
	}
	result.Series = []Series{{Name: "Matches", Values: values}}
	return result, nil
}

// topVenues counts matches per venue, descending, top N.
func topVenues(in Input) (*StepResult, error) {
	counts := make(map[string]float64)
	for i := range in.Matches {
		if in.Matches[i].Venue != "" {
			counts[in.Matches[i].Venue]++
		}
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("venue column has no values")
	}

	ranked := rankDescending(counts, in.Config.TopVenues)
	return barResult("top_venues", "Most Frequent Venues", ChartBarH,
		"Venue", "Number of Matches", "Matches", ranked), nil
}

// topWinners counts wins per team, descending, top N. Matches with no
// winner (tie or no result) are excluded before counting.
func topWinners(in Input) (*StepResult, error) {
	counts := make(map[string]float64)
	for i := range in.Matches {
		if in.Matches[i].HasWinner() {
			counts[in.Matches[i].Winner]++
		}
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("winner column has no values")
	}

	ranked := rankDescending(counts, in.Config.TopWinners)
	return barResult("top_winners", "Teams with Most Wins", ChartBarH,
		"Team", "Number of Wins", "Wins", ranked), nil
}

// tossDecisionImpact groups matches by (toss decision, whether the toss
// winner also won the match) and reports overall decision counts.
func tossDecisionImpact(in Input) (*StepResult, error) {
	type outcome struct {
		lost float64
		won  float64
	}
	byDecision := make(map[string]*outcome)
	decisionTotals := make(map[string]float64)

	for i := range in.Matches {
		m := &in.Matches[i]
		if m.TossDecision == "" {
			continue
		}
		o := byDecision[m.TossDecision]
		if o == nil {
			o = &outcome{}
			byDecision[m.TossDecision] = o
		}
		if m.TossWinnerWon() {
			o.won++
		} else {
			o.lost++
		}
		decisionTotals[m.TossDecision]++
	}
	if len(byDecision) == 0 {
		return nil, fmt.Errorf("toss_decision column has no values")
	}

	decisions := sortedStringKeys(byDecision)
	lost := make([]float64, len(decisions))
	won := make([]float64, len(decisions))
	for i, d := range decisions {
		lost[i] = byDecision[d].lost
		won[i] = byDecision[d].won
	}

	summary := [][]string{{"toss_decision", "matches"}}
	for _, kv := range rankDescending(decisionTotals, len(decisionTotals)) {
		summary = append(summary, []string{kv.Key, strconv.Itoa(int(kv.Value))})
	}

	return &StepResult{
		Name:         "toss_decision_impact",
		Title:        "Toss Decision vs Match Outcome",
		Kind:         ChartGroupedColumn,
		CategoryAxis: "Toss Decision",
		ValueAxis:    "Number of Matches",
		Categories:   decisions,
		Series: []Series{
			{Name: "Toss Winner Lost", Values: lost},
			{Name: "Toss Winner Won", Values: won},
		},
		Summary: summary,
	}, nil
}

// topBatters sums batter runs per batter, descending, top N.
func topBatters(in Input) (*StepResult, error) {
	runs := make(map[string]float64)
	for i := range in.Deliveries {
		d := &in.Deliveries[i]
		if d.Batter != "" {
			runs[d.Batter] += float64(d.BatterRuns)
		}
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("batsman column has no values")
	}

	ranked := rankDescending(runs, in.Config.TopBatters)
	return barResult("top_batters", "Top Run Scorers", ChartColumn,
		"Batsman", "Total Runs Scored", "Runs", ranked), nil
}

// playerOfMatchAwards counts player-of-the-match awards, excluding matches
// where no award was recorded, top N as a pie chart.
func playerOfMatchAwards(in Input) (*StepResult, error) {
	counts := make(map[string]float64)
	excluded := 0
	for i := range in.Matches {
		if in.Matches[i].PlayerOfMatch == "" {
			excluded++
			continue
		}
		counts[in.Matches[i].PlayerOfMatch]++
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("player_of_match column has no values")
	}

	ranked := rankDescending(counts, in.Config.TopAwardees)
	result := barResult("player_of_match_awards", "Most Player of the Match Awards", ChartPie,
		"Player", "Awards", "Awards", ranked)
	if excluded > 0 {
		result.Note = fmt.Sprintf("excluded %d match(es) with missing player_of_match", excluded)
	}
	return result, nil
}

// topBowlers counts wickets credited to each bowler, descending, top N.
// Only the fixed bowler dismissal kinds count; run outs and the like are
// excluded.
func topBowlers(in Input) (*StepResult, error) {
	wickets := make(map[string]float64)
	for i := range in.Deliveries {
		d := &in.Deliveries[i]
		if d.Bowler != "" && d.CreditedToBowler() {
			wickets[d.Bowler]++
		}
	}
	if len(wickets) == 0 {
		return nil, fmt.Errorf("no bowler dismissals found in delivery table")
	}

	ranked := rankDescending(wickets, in.Config.TopBowlers)
	return barResult("top_bowlers", "Top Wicket Takers", ChartColumn,
		"Bowler", "Total Wickets Taken", "Wickets", ranked), nil
}

// runsPerOver estimates the average runs scored per over: mean total runs
// per ball in each over, multiplied by the balls-per-over constant. The
// value axis floor is clipped at (minimum - 1) but never below zero.
func runsPerOver(in Input) (*StepResult, error) {
	sums := make(map[int]float64)
	counts := make(map[int]float64)
	for i := range in.Deliveries {
		d := &in.Deliveries[i]
		sums[d.Over] += float64(d.TotalRuns)
		counts[d.Over]++
	}
	if len(sums) == 0 {
		return nil, fmt.Errorf("delivery table has no rows")
	}

	overs := sortedIntKeys(counts)
	values := make([]float64, len(overs))
	categories := make([]string, len(overs))
	minRate := 0.0
	for i, over := range overs {
		rate := sums[over] / counts[over] * float64(in.Config.BallsPerOver)
		values[i] = rate
		categories[i] = strconv.Itoa(over)
		if i == 0 || rate < minRate {
			minRate = rate
		}
	}

	floor := minRate - 1
	if floor < 0 {
		floor = 0
	}

	return &StepResult{
		Name:         "runs_per_over",
		Title:        "Estimated Average Runs Scored per Over",
		Kind:         ChartLine,
		CategoryAxis: "Over Number",
		ValueAxis:    "Average Runs per Over (Estimated)",
		Categories:   categories,
		Series:       []Series{{Name: "Avg Runs", Values: values}},
		YMin:         &floor,
	}, nil
}

// ballsPerOver counts deliveries per over number, overs ascending.
func ballsPerOver(in Input) (*StepResult, error) {
	counts := make(map[int]float64)
	for i := range in.Deliveries {
		counts[in.Deliveries[i].Over]++
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("delivery table has no rows")
	}

	overs := sortedIntKeys(counts)
	categories := make([]string, len(overs))
	values := make([]float64, len(overs))
	for i, over := range overs {
		categories[i] = strconv.Itoa(over)
		values[i] = counts[over]
	}

	return &StepResult{
		Name:         "balls_per_over",
		Title:        "Distribution of Balls Bowled Per Over Number",
		Kind:         ChartColumn,
		CategoryAxis: "Over Number",
		ValueAxis:    "Number of Balls Bowled",
		Categories:   categories,
		Series:       []Series{{Name: "Balls", Values: values}},
	}, nil
}

// avgScorePerSeason sums total runs per match, joins each match total onto
// the match table's season, and averages per season. Skips itself when the
// season attribute is absent or entirely null after the join.
func avgScorePerSeason(in Input) (*StepResult, error) {
	seasonByMatch := make(map[int]int)
	haveSeason := false
	for i := range in.Matches {
		if in.Matches[i].HasSeason {
			seasonByMatch[in.Matches[i].MatchID] = in.Matches[i].Season
			haveSeason = true
		}
	}
	if !haveSeason {
		return nil, NewSkipError("season attribute not present in match table")
	}

	totalsByMatch := make(map[int]float64)
	for i := range in.Deliveries {
		d := &in.Deliveries[i]
		totalsByMatch[d.MatchID] += float64(d.TotalRuns)
	}

	// Left join: totals whose match has no season are dropped
	sums := make(map[int]float64)
	counts := make(map[int]float64)
	for matchID, total := range totalsByMatch {
		season, ok := seasonByMatch[matchID]
		if !ok {
			continue
		}
		sums[season] += total
		counts[season]++
	}
	if len(sums) == 0 {
		return nil, NewSkipError("no season data left after joining deliveries onto matches")
	}

	seasons := sortedIntKeys(sums)
	categories := make([]string, len(seasons))
	values := make([]float64, len(seasons))
	for i, season := range seasons {
		categories[i] = strconv.Itoa(season)
		values[i] = sums[season] / counts[season]
	}

	return &StepResult{
		Name:         "avg_score_per_season",
		Title:        "Average Total Runs per Match Across Seasons",
		Kind:         ChartLine,
		CategoryAxis: "Season",
		ValueAxis:    "Average Total Runs Scored per Match",
		Categories:   categories,
		Series:       []Series{{Name: "Avg Runs", Values: values}},
	}, nil
}

// KV is a ranked (category, value) pair.
type KV struct {
	Key   string
	Value float64
}

// rankDescending sorts map entries by value descending (name ascending on
// ties, keeping output deterministic) and returns the first n.
func rankDescending(m map[string]float64, n int) []KV {
	ranked := make([]KV, 0, len(m))
	for k, v := range m {
		ranked = append(ranked, KV{Key: k, Value: v})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Key < ranked[j].Key
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// barResult builds a single-series result from ranked pairs.
func barResult(name, title string, kind ChartKind, categoryAxis, valueAxis, seriesName string, ranked []KV) *StepResult {
	result := &StepResult{
		Name:         name,
		Title:        title,
		Kind:         kind,
		CategoryAxis: categoryAxis,
		ValueAxis:    valueAxis,
	}
	values := make([]float64, len(ranked))
	for i, kv := range ranked {
		result.Categories = append(result.Categories, kv.Key)
		values[i] = kv.Value
	}
	result.Series = []Series{{Name: seriesName, Values: values}}
	return result
}

func sortedIntKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedStringKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
