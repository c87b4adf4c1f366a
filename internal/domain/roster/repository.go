package roster

import "context"

type Repository interface {
	CreatePlayer(ctx context.Context, player Player) error
	GetPlayer(ctx context.Context, playerID string) (Player, bool, error)
	AddEntry(ctx context.Context, entry Entry) error
	// ListByTeam returns members in the order they joined.
	ListByTeam(ctx context.Context, teamID string) ([]Member, error)
	FindEntryByPlayer(ctx context.Context, playerID string) (Entry, bool, error)
	// SetCaptain marks playerID captain of teamID and clears the flag on everyone else.
	SetCaptain(ctx context.Context, teamID, playerID string) error
}
