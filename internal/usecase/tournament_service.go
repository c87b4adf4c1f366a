package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/cup-tournament/internal/domain/group"
	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	"github.com/riskibarqy/cup-tournament/internal/domain/team"
	"github.com/riskibarqy/cup-tournament/internal/domain/tournament"
	"github.com/riskibarqy/cup-tournament/internal/platform/clock"
	idgen "github.com/riskibarqy/cup-tournament/internal/platform/id"
	"github.com/riskibarqy/cup-tournament/internal/platform/logging"
)

const defaultSetupWorkers = 4

type CreateTournamentInput struct {
	Name string
	Year int
}

type RenameTeamInput struct {
	TeamID  string
	Name    string
	LogoURL string
}

type GroupDetails struct {
	Group   group.Group
	Teams   []team.Team
	Matches []match.Match
}

type TournamentSetup struct {
	Tournament tournament.Tournament
	Groups     []GroupDetails
}

type TournamentService struct {
	tournamentRepo tournament.Repository
	groupRepo      group.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	idGen          idgen.Generator
	clock          clock.Clock
	logger         *logging.Logger
	setupWorkers   int
}

func NewTournamentService(
	tournamentRepo tournament.Repository,
	groupRepo group.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	idGen idgen.Generator,
	clk clock.Clock,
	logger *logging.Logger,
	setupWorkers int,
) *TournamentService {
	if logger == nil {
		logger = logging.Default()
	}
	if clk == nil {
		clk = clock.System()
	}
	if setupWorkers <= 0 {
		setupWorkers = defaultSetupWorkers
	}

	return &TournamentService{
		tournamentRepo: tournamentRepo,
		groupRepo:      groupRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		idGen:          idGen,
		clock:          clk,
		logger:         logger,
		setupWorkers:   setupWorkers,
	}
}

// CreateTournament sets up a fresh tournament: groups A-D, sixteen placeholder teams
// Sq1..Sq16 (group i gets the i-th block of four) and the six round-robin matches of
// each group.
func (s *TournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (TournamentSetup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.CreateTournament")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	tournamentID, err := s.idGen.NewID()
	if err != nil {
		return TournamentSetup{}, fmt.Errorf("generate tournament id: %w", err)
	}

	now := s.clock.Now()
	item := tournament.Tournament{ID: tournamentID, Name: input.Name, Year: input.Year, CreatedAt: now}
	if err := item.Validate(); err != nil {
		return TournamentSetup{}, invalidInput(err)
	}

	setup := TournamentSetup{Tournament: item, Groups: make([]GroupDetails, 0, group.Count)}
	teams := make([]team.Team, 0, group.Count*group.TeamsPerGroup)
	for i, label := range group.Labels {
		groupID, err := s.idGen.NewID()
		if err != nil {
			return TournamentSetup{}, fmt.Errorf("generate group id: %w", err)
		}

		details := GroupDetails{
			Group: group.Group{ID: groupID, TournamentID: tournamentID, Label: label, CreatedAt: now},
			Teams: make([]team.Team, 0, group.TeamsPerGroup),
		}
		for j := 0; j < group.TeamsPerGroup; j++ {
			teamID, err := s.idGen.NewID()
			if err != nil {
				return TournamentSetup{}, fmt.Errorf("generate team id: %w", err)
			}
			t := team.NewPlaceholder(teamID, i*group.TeamsPerGroup+j+1, now)
			details.Teams = append(details.Teams, t)
			teams = append(teams, t)
		}

		teamIDs := make([]string, 0, len(details.Teams))
		for _, t := range details.Teams {
			teamIDs = append(teamIDs, t.ID)
		}
		details.Matches = match.RoundRobin(groupID, teamIDs)
		for k := range details.Matches {
			matchID, err := s.idGen.NewID()
			if err != nil {
				return TournamentSetup{}, fmt.Errorf("generate match id: %w", err)
			}
			details.Matches[k].ID = matchID
			details.Matches[k].UpdatedAt = now
		}

		setup.Groups = append(setup.Groups, details)
	}

	plan := newWritePlan("create_tournament", s.logger).
		step("create_tournament", func(ctx context.Context) error {
			return s.tournamentRepo.Create(ctx, item)
		}).
		step("create_teams", func(ctx context.Context) error {
			return s.createTeams(ctx, teams)
		}).
		step("create_groups", func(ctx context.Context) error {
			for _, g := range setup.Groups {
				if err := s.groupRepo.Create(ctx, g.Group); err != nil {
					return fmt.Errorf("create group %s: %w", g.Group.Label, err)
				}
			}
			return nil
		}).
		step("link_participations", func(ctx context.Context) error {
			links := make([]group.Participation, 0, len(teams))
			for _, g := range setup.Groups {
				for _, t := range g.Teams {
					links = append(links, group.Participation{GroupID: g.Group.ID, TeamID: t.ID})
				}
			}
			return s.groupRepo.AddParticipations(ctx, links)
		}).
		step("create_matches", func(ctx context.Context) error {
			all := make([]match.Match, 0, len(setup.Groups)*6)
			for _, g := range setup.Groups {
				all = append(all, g.Matches...)
			}
			return s.matchRepo.CreateMany(ctx, all)
		})
	if err := plan.execute(ctx); err != nil {
		return TournamentSetup{}, err
	}

	s.logger.InfoContext(ctx, "tournament created",
		"tournament_id", item.ID,
		"name", item.Name,
		"year", item.Year,
	)
	return setup, nil
}

// createTeams inserts the placeholder teams through a bounded worker pool.
func (s *TournamentService) createTeams(ctx context.Context, teams []team.Team) error {
	pool, err := ants.NewPool(s.setupWorkers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		workers  sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, t := range teams {
		t := t
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if err := s.teamRepo.Create(ctx, t); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("create team %s: %w", t.Name, err)
				}
				mu.Unlock()
			}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return fmt.Errorf("submit team insert to worker pool: %w", err)
		}
	}

	workers.Wait()
	return firstErr
}

func (s *TournamentService) GetTournament(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	return item, nil
}

func (s *TournamentService) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return items, nil
}

// ListGroups returns the tournament's groups with their teams; Matches is left empty.
func (s *TournamentService) ListGroups(ctx context.Context, tournamentID string) ([]GroupDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListGroups")
	defer span.End()

	if _, err := s.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}

	groups, err := s.groupRepo.ListByTournament(ctx, strings.TrimSpace(tournamentID))
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	out := make([]GroupDetails, 0, len(groups))
	for _, g := range groups {
		teamIDs, err := s.groupRepo.ListTeamIDs(ctx, g.ID)
		if err != nil {
			return nil, fmt.Errorf("list group teams: %w", err)
		}
		teams, err := s.teamRepo.GetByIDs(ctx, teamIDs)
		if err != nil {
			return nil, fmt.Errorf("get group teams: %w", err)
		}
		out = append(out, GroupDetails{Group: g, Teams: teams})
	}
	return out, nil
}

func (s *TournamentService) GroupMatches(ctx context.Context, groupID string) ([]match.Match, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return nil, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}

	_, exists, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: group=%s", ErrNotFound, groupID)
	}

	items, err := s.matchRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group matches: %w", err)
	}
	return items, nil
}

// RenameTeam updates name and logo. The placeholder flag follows the new name.
// Goalkeepers already provisioned under the old name keep it.
func (s *TournamentService) RenameTeam(ctx context.Context, input RenameTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.RenameTeam")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.TeamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	if err := item.Rename(input.Name, input.LogoURL, s.clock.Now()); err != nil {
		return team.Team{}, invalidInput(err)
	}
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	s.logger.InfoContext(ctx, "team renamed",
		"team_id", item.ID,
		"name", item.Name,
		"is_placeholder", item.IsPlaceholder,
	)
	return item, nil
}
