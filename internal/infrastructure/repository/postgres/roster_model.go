package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID           string       `db:"id"`
	Name         string       `db:"name"`
	BirthDate    sql.NullTime `db:"birth_date"`
	IsFIGC       bool         `db:"is_figc"`
	FIGCCategory string       `db:"figc_category"`
	CreatedAt    time.Time    `db:"created_at"`
}

type playerInsertModel struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	BirthDate    *time.Time `db:"birth_date"`
	IsFIGC       bool       `db:"is_figc"`
	FIGCCategory string     `db:"figc_category"`
	CreatedAt    time.Time  `db:"created_at"`
}

var rosterEntryColumns = []string{"id", "team_id", "player_id", "jersey_number", "is_captain", "added_at"}

type rosterEntryTableModel struct {
	ID           string        `db:"id"`
	TeamID       string        `db:"team_id"`
	PlayerID     string        `db:"player_id"`
	JerseyNumber sql.NullInt64 `db:"jersey_number"`
	IsCaptain    bool          `db:"is_captain"`
	AddedAt      time.Time     `db:"added_at"`
}

type rosterEntryInsertModel struct {
	ID           string    `db:"id"`
	TeamID       string    `db:"team_id"`
	PlayerID     string    `db:"player_id"`
	JerseyNumber *int      `db:"jersey_number"`
	IsCaptain    bool      `db:"is_captain"`
	AddedAt      time.Time `db:"added_at"`
}

// rosterMemberRow is one team_rosters row joined with its player.
type rosterMemberRow struct {
	EntryID      string        `db:"entry_id"`
	TeamID       string        `db:"team_id"`
	PlayerID     string        `db:"player_id"`
	JerseyNumber sql.NullInt64 `db:"jersey_number"`
	IsCaptain    bool          `db:"is_captain"`
	AddedAt      time.Time     `db:"added_at"`
	Name         string        `db:"name"`
	BirthDate    sql.NullTime  `db:"birth_date"`
	IsFIGC       bool          `db:"is_figc"`
	FIGCCategory string        `db:"figc_category"`
	CreatedAt    time.Time     `db:"created_at"`
}
