package tournament

import "context"

type Repository interface {
	Create(ctx context.Context, item Tournament) error
	GetByID(ctx context.Context, tournamentID string) (Tournament, bool, error)
	List(ctx context.Context) ([]Tournament, error)
}
