package postgres

import "database/sql"

var scorerColumns = []string{"id", "match_id", "knockout_match_id", "team_id", "player_name", "goals"}

type scorerTableModel struct {
	ID              string         `db:"id"`
	MatchID         sql.NullString `db:"match_id"`
	KnockoutMatchID sql.NullString `db:"knockout_match_id"`
	TeamID          string         `db:"team_id"`
	PlayerName      string         `db:"player_name"`
	Goals           int            `db:"goals"`
}

type scorerInsertModel struct {
	ID              string  `db:"id"`
	MatchID         *string `db:"match_id"`
	KnockoutMatchID *string `db:"knockout_match_id"`
	TeamID          string  `db:"team_id"`
	PlayerName      string  `db:"player_name"`
	Goals           int     `db:"goals"`
}
