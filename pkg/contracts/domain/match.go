package domain

import (
	"time"
)

// Match represents a single league match record loaded from matches.csv.
// Nullable source columns (winner, player_of_match, umpires) keep their
// presence flag next to the value so analysis steps can exclude missing
// entries instead of counting empty strings.
type Match struct {
	MatchID       int       `json:"match_id" csv:"match_id"`
	Date          time.Time `json:"date" csv:"date"`
	HasDate       bool      `json:"-"`
	Season        int       `json:"season" csv:"season"`
	HasSeason     bool      `json:"-"`
	City          string    `json:"city,omitempty" csv:"city"`
	Venue         string    `json:"venue" csv:"venue"`
	Team1         string    `json:"team1" csv:"team1"`
	Team2         string    `json:"team2" csv:"team2"`
	TossWinner    string    `json:"toss_winner" csv:"toss_winner"`
	TossDecision  string    `json:"toss_decision" csv:"toss_decision"`
	Winner        string    `json:"winner,omitempty" csv:"winner"`
	PlayerOfMatch string    `json:"player_of_match,omitempty" csv:"player_of_match"`
	Umpire1       string    `json:"umpire1,omitempty" csv:"umpire1"`
	Umpire2       string    `json:"umpire2,omitempty" csv:"umpire2"`
	Umpire3       string    `json:"umpire3,omitempty" csv:"umpire3"`
}

// HasWinner reports whether the match produced a winner. A blank winner
// denotes a tie or no-result match in the source data.
func (m *Match) HasWinner() bool {
	return m.Winner != ""
}

// TossWinnerWon reports whether the toss winner went on to win the match.
func (m *Match) TossWinnerWon() bool {
	return m.HasWinner() && m.TossWinner == m.Winner
}

// TossDecision values recorded in the source data.
const (
	TossDecisionBat   = "bat"
	TossDecisionField = "field"
)
