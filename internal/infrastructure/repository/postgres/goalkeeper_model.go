package postgres

import (
	"database/sql"
	"time"
)

type goalkeeperTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	TeamID    string    `db:"team_id"`
	CreatedAt time.Time `db:"created_at"`
}

var goalkeeperStatColumns = []string{"id", "goalkeeper_id", "match_id", "knockout_match_id", "goals_conceded", "clean_sheet"}

type goalkeeperStatTableModel struct {
	ID              string         `db:"id"`
	GoalkeeperID    string         `db:"goalkeeper_id"`
	MatchID         sql.NullString `db:"match_id"`
	KnockoutMatchID sql.NullString `db:"knockout_match_id"`
	GoalsConceded   int            `db:"goals_conceded"`
	CleanSheet      bool           `db:"clean_sheet"`
}

type goalkeeperStatInsertModel struct {
	ID              string  `db:"id"`
	GoalkeeperID    string  `db:"goalkeeper_id"`
	MatchID         *string `db:"match_id"`
	KnockoutMatchID *string `db:"knockout_match_id"`
	GoalsConceded   int     `db:"goals_conceded"`
	CleanSheet      bool    `db:"clean_sheet"`
}
