package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID         string        `db:"id"`
	GroupID    string        `db:"group_id"`
	HomeTeamID string        `db:"home_team_id"`
	AwayTeamID string        `db:"away_team_id"`
	MatchDay   int           `db:"match_day"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
	PlayedAt   sql.NullTime  `db:"played_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

type matchInsertModel struct {
	ID         string     `db:"id"`
	GroupID    string     `db:"group_id"`
	HomeTeamID string     `db:"home_team_id"`
	AwayTeamID string     `db:"away_team_id"`
	MatchDay   int        `db:"match_day"`
	HomeScore  *int       `db:"home_score"`
	AwayScore  *int       `db:"away_score"`
	PlayedAt   *time.Time `db:"played_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}
