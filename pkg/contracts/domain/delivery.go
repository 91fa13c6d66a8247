package domain

// Delivery represents a single ball bowled, loaded from deliveries.csv.
// Dismissal fields are jointly blank when no wicket fell on the ball.
type Delivery struct {
	MatchID         int    `json:"match_id" csv:"match_id"`
	Inning          int    `json:"inning" csv:"inning"`
	BattingTeam     string `json:"batting_team" csv:"batting_team"`
	BowlingTeam     string `json:"bowling_team,omitempty" csv:"bowling_team"`
	Over            int    `json:"over" csv:"over"`
	Ball            int    `json:"ball" csv:"ball"`
	Batter          string `json:"batsman" csv:"batsman"`
	NonStriker      string `json:"non_striker,omitempty" csv:"non_striker"`
	Bowler          string `json:"bowler" csv:"bowler"`
	BatterRuns      int    `json:"batsman_runs" csv:"batsman_runs"`
	ExtraRuns       int    `json:"extra_runs" csv:"extra_runs"`
	TotalRuns       int    `json:"total_runs" csv:"total_runs"`
	PlayerDismissed string `json:"player_dismissed,omitempty" csv:"player_dismissed"`
	DismissalKind   string `json:"dismissal_kind,omitempty" csv:"dismissal_kind"`
	Fielder         string `json:"fielder,omitempty" csv:"fielder"`
}

// IsWicket reports whether a batter was dismissed on this delivery.
func (d *Delivery) IsWicket() bool {
	return d.DismissalKind != ""
}

// BowlerDismissalKinds is the fixed set of dismissal kinds credited to the
// bowler. Run outs, retired hurt and obstructing the field are excluded from
// a bowler's wicket tally.
var BowlerDismissalKinds = map[string]bool{
	"caught":            true,
	"bowled":            true,
	"lbw":               true,
	"stumped":           true,
	"caught and bowled": true,
	"hit wicket":        true,
}

// CreditedToBowler reports whether this delivery's dismissal counts toward
// the bowler's wicket tally.
func (d *Delivery) CreditedToBowler() bool {
	return BowlerDismissalKinds[d.DismissalKind]
}
