package goalkeeper

import (
	"context"

	"github.com/riskibarqy/cup-tournament/internal/domain/match"
)

type Repository interface {
	FindByTeamAndName(ctx context.Context, teamID, name string) (Goalkeeper, bool, error)
	Create(ctx context.Context, item Goalkeeper) error
	List(ctx context.Context) ([]Goalkeeper, error)
}

type StatRepository interface {
	DeleteByMatch(ctx context.Context, ref match.Ref) error
	InsertMany(ctx context.Context, items []Stat) error
	ListByMatch(ctx context.Context, ref match.Ref) ([]Stat, error)
	List(ctx context.Context) ([]Stat, error)
}
