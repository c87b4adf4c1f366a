package postgres

import (
	"database/sql"
	"time"
)

var knockoutPhaseColumns = []string{"id", "tournament_id", "phase_type", "created_at"}

type knockoutPhaseTableModel struct {
	ID           string    `db:"id"`
	TournamentID string    `db:"tournament_id"`
	Type         string    `db:"phase_type"`
	CreatedAt    time.Time `db:"created_at"`
}

type knockoutMatchTableModel struct {
	ID            string         `db:"id"`
	PhaseID       string         `db:"phase_id"`
	Order         int            `db:"match_order"`
	HomeTeamID    sql.NullString `db:"home_team_id"`
	AwayTeamID    sql.NullString `db:"away_team_id"`
	HomeScore     sql.NullInt64  `db:"home_score"`
	AwayScore     sql.NullInt64  `db:"away_score"`
	HomePenalties sql.NullInt64  `db:"home_penalties"`
	AwayPenalties sql.NullInt64  `db:"away_penalties"`
	WinnerID      sql.NullString `db:"winner_id"`
	PlayedAt      sql.NullTime   `db:"played_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type knockoutMatchInsertModel struct {
	ID            string     `db:"id"`
	PhaseID       string     `db:"phase_id"`
	Order         int        `db:"match_order"`
	HomeTeamID    *string    `db:"home_team_id"`
	AwayTeamID    *string    `db:"away_team_id"`
	HomeScore     *int       `db:"home_score"`
	AwayScore     *int       `db:"away_score"`
	HomePenalties *int       `db:"home_penalties"`
	AwayPenalties *int       `db:"away_penalties"`
	WinnerID      *string    `db:"winner_id"`
	PlayedAt      *time.Time `db:"played_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}
