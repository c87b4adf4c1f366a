package scorer

import (
	"context"

	"github.com/riskibarqy/cup-tournament/internal/domain/match"
)

type Repository interface {
	DeleteByMatch(ctx context.Context, ref match.Ref) error
	InsertMany(ctx context.Context, items []Scorer) error
	ListByMatch(ctx context.Context, ref match.Ref) ([]Scorer, error)
	List(ctx context.Context) ([]Scorer, error)
}
