package knockout

import (
	"context"
	"time"
)

type Repository interface {
	CreatePhase(ctx context.Context, phase Phase) error
	GetPhase(ctx context.Context, phaseID string) (Phase, bool, error)
	// ListPhasesByTournament returns phases in creation order.
	ListPhasesByTournament(ctx context.Context, tournamentID string) ([]Phase, error)
	CreateMatches(ctx context.Context, items []Match) error
	GetMatch(ctx context.Context, matchID string) (Match, bool, error)
	// ListMatchesByPhase returns matches ordered by Order.
	ListMatchesByPhase(ctx context.Context, phaseID string) ([]Match, error)
	SetTeams(ctx context.Context, matchID, homeTeamID, awayTeamID string) error
	AssignSlot(ctx context.Context, matchID string, side Side, teamID string) error
	UpdateResult(ctx context.Context, matchID string, res Result, winnerID *string, updatedAt time.Time) error
}
