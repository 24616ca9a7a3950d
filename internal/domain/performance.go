package domain

import "time"

// MatchPerformance represents one player's result in one match slot.
// Rows are submitted by managers after a scrim or tournament lobby.
type MatchPerformance struct {
	ID           string    `json:"id"`
	TeamID       string    `json:"team_id"`
	PlayerID     string    `json:"player_id"`
	Month        string    `json:"month"` // YYYY-MM
	MatchDate    time.Time `json:"match_date"`
	Tournament   string    `json:"tournament,omitempty"`
	Kills        int       `json:"kills"`
	Damage       float64   `json:"damage"`
	SurvivalTime float64   `json:"survival_time"` // minutes
	Placement    int       `json:"placement"`     // 1 = chicken dinner
	Won          bool      `json:"won"`
	CreatedAt    time.Time `json:"created_at"`
}
