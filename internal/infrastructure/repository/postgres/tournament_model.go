package postgres

import "time"

type tournamentTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Year      int       `db:"year"`
	CreatedAt time.Time `db:"created_at"`
}

type groupTableModel struct {
	ID           string    `db:"id"`
	TournamentID string    `db:"tournament_id"`
	Label        string    `db:"label"`
	CreatedAt    time.Time `db:"created_at"`
}

type participationInsertModel struct {
	GroupID string `db:"group_id"`
	TeamID  string `db:"team_id"`
}
