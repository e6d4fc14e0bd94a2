package models

import "time"

// MatchStatus mirrors the match_status ENUM in the database.
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusCanceled  MatchStatus = "canceled"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusCompleted, MatchStatusCanceled:
		return true
	}
	return false
}

type Match struct {
	ID          int         `json:"id" db:"id"`
	HomeTeam    string      `json:"home_team" db:"home_team"`
	AwayTeam    string      `json:"away_team" db:"away_team"`
	Competition *string     `json:"competition,omitempty" db:"competition"`
	Venue       *string     `json:"venue,omitempty" db:"venue"`
	MatchTime   time.Time   `json:"match_time" db:"match_time"`
	Status      MatchStatus `json:"status" db:"status"`
	HomeScore   *int        `json:"home_score,omitempty" db:"home_score"`
	AwayScore   *int        `json:"away_score,omitempty" db:"away_score"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}
