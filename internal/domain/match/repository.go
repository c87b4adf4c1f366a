package match

import (
	"context"
	"time"
)

type Repository interface {
	CreateMany(ctx context.Context, items []Match) error
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	// ListByGroup returns matches ordered by match day.
	ListByGroup(ctx context.Context, groupID string) ([]Match, error)
	UpdateResult(ctx context.Context, matchID string, homeScore, awayScore int, playedAt time.Time) error
}
