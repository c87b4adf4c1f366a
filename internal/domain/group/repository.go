package group

import "context"

type Repository interface {
	Create(ctx context.Context, item Group) error
	GetByID(ctx context.Context, groupID string) (Group, bool, error)
	// ListByTournament returns groups ordered by label.
	ListByTournament(ctx context.Context, tournamentID string) ([]Group, error)
	AddParticipations(ctx context.Context, items []Participation) error
	ListTeamIDs(ctx context.Context, groupID string) ([]string, error)
}
