package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cup-tournament/internal/domain/group"
	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	"github.com/riskibarqy/cup-tournament/internal/domain/standing"
	"github.com/riskibarqy/cup-tournament/internal/domain/team"
	"github.com/riskibarqy/cup-tournament/internal/domain/tournament"
)

type GroupStanding struct {
	Group group.Group
	Rows  []standing.TeamStats
}

type StandingService struct {
	tournamentRepo tournament.Repository
	groupRepo      group.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	options        []standing.Option
}

func NewStandingService(
	tournamentRepo tournament.Repository,
	groupRepo group.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	options ...standing.Option,
) *StandingService {
	return &StandingService{
		tournamentRepo: tournamentRepo,
		groupRepo:      groupRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		options:        options,
	}
}

func (s *StandingService) GroupStandings(ctx context.Context, groupID string) (GroupStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.GroupStandings",
		attribute.String("group_id", groupID))
	defer span.End()

	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return GroupStanding{}, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}

	item, exists, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return GroupStanding{}, fmt.Errorf("get group: %w", err)
	}
	if !exists {
		return GroupStanding{}, fmt.Errorf("%w: group=%s", ErrNotFound, groupID)
	}

	return s.compute(ctx, item)
}

// TournamentStandings returns every group's table, ordered by label.
func (s *StandingService) TournamentStandings(ctx context.Context, tournamentID string) ([]GroupStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.TournamentStandings",
		attribute.String("tournament_id", tournamentID))
	defer span.End()

	tournamentID, err := requireTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return nil, err
	}

	groups, err := s.groupRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	out := make([]GroupStanding, 0, len(groups))
	for _, g := range groups {
		row, err := s.compute(ctx, g)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *StandingService) compute(ctx context.Context, item group.Group) (GroupStanding, error) {
	teamIDs, err := s.groupRepo.ListTeamIDs(ctx, item.ID)
	if err != nil {
		return GroupStanding{}, fmt.Errorf("list group teams: %w", err)
	}
	teams, err := s.teamRepo.GetByIDs(ctx, teamIDs)
	if err != nil {
		return GroupStanding{}, fmt.Errorf("get group teams: %w", err)
	}
	matches, err := s.matchRepo.ListByGroup(ctx, item.ID)
	if err != nil {
		return GroupStanding{}, fmt.Errorf("list group matches: %w", err)
	}

	return GroupStanding{
		Group: item,
		Rows:  standing.Compute(teams, matches, s.options...),
	}, nil
}
