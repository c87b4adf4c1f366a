package postgres

import "time"

type teamTableModel struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	LogoURL       string    `db:"logo_url"`
	IsPlaceholder bool      `db:"is_placeholder"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
