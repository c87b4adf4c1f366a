package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cup-tournament/internal/domain/roster"
	"github.com/riskibarqy/cup-tournament/internal/domain/team"
	"github.com/riskibarqy/cup-tournament/internal/platform/clock"
	idgen "github.com/riskibarqy/cup-tournament/internal/platform/id"
	"github.com/riskibarqy/cup-tournament/internal/platform/logging"
)

const (
	stepCreatePlayer = "create_player"
	stepLinkRoster   = "link_roster"
)

type AddPlayerInput struct {
	TeamID       string
	Name         string
	BirthDate    *time.Time
	IsFIGC       bool
	FIGCCategory string
	JerseyNumber *int
	IsCaptain    bool
}

type LinkPlayerInput struct {
	TeamID       string
	PlayerID     string
	JerseyNumber *int
}

type RosterService struct {
	teamRepo   team.Repository
	rosterRepo roster.Repository
	rules      roster.Rules
	idGen      idgen.Generator
	clock      clock.Clock
	logger     *logging.Logger
}

func NewRosterService(
	teamRepo team.Repository,
	rosterRepo roster.Repository,
	rules roster.Rules,
	idGen idgen.Generator,
	clk clock.Clock,
	logger *logging.Logger,
) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}
	if clk == nil {
		clk = clock.System()
	}

	return &RosterService{
		teamRepo:   teamRepo,
		rosterRepo: rosterRepo,
		rules:      rules,
		idGen:      idGen,
		clock:      clk,
		logger:     logger,
	}
}

// AddPlayerToTeam creates a player and links it to the team. The two writes are not
// atomic: a failure while linking returns a *WriteError and leaves the player behind,
// which LinkPlayer can attach later.
func (s *RosterService) AddPlayerToTeam(ctx context.Context, input AddPlayerInput) (roster.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.AddPlayerToTeam")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.Name = strings.TrimSpace(input.Name)
	input.FIGCCategory = strings.TrimSpace(input.FIGCCategory)
	if input.TeamID == "" {
		return roster.Member{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return roster.Member{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if input.IsFIGC && input.FIGCCategory == "" {
		return roster.Member{}, invalidInput(roster.ErrFIGCCategoryRequired)
	}
	if !input.IsFIGC {
		input.FIGCCategory = ""
	}

	current, err := s.loadRoster(ctx, input.TeamID)
	if err != nil {
		return roster.Member{}, err
	}
	if err := roster.ValidateAddition(current, input.IsFIGC, s.rules); err != nil {
		return roster.Member{}, invalidInput(err)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return roster.Member{}, fmt.Errorf("generate player id: %w", err)
	}
	entryID, err := s.idGen.NewID()
	if err != nil {
		return roster.Member{}, fmt.Errorf("generate roster entry id: %w", err)
	}

	now := s.clock.Now()
	member := roster.Member{
		Player: roster.Player{
			ID:           playerID,
			Name:         input.Name,
			BirthDate:    input.BirthDate,
			IsFIGC:       input.IsFIGC,
			FIGCCategory: input.FIGCCategory,
			CreatedAt:    now,
		},
		Entry: roster.Entry{
			ID:           entryID,
			TeamID:       input.TeamID,
			PlayerID:     playerID,
			JerseyNumber: input.JerseyNumber,
			IsCaptain:    input.IsCaptain,
			AddedAt:      now,
		},
	}

	plan := newWritePlan("add_player_to_team", s.logger)
	plan.
		step(stepCreatePlayer, func(ctx context.Context) error {
			if err := s.rosterRepo.CreatePlayer(ctx, member.Player); err != nil {
				return err
			}
			plan.remember("player_id", playerID)
			return nil
		}).
		step(stepLinkRoster, func(ctx context.Context) error {
			return s.rosterRepo.AddEntry(ctx, member.Entry)
		})
	if err := plan.execute(ctx); err != nil {
		return roster.Member{}, err
	}

	s.logger.InfoContext(ctx, "player added to roster",
		"team_id", input.TeamID,
		"player_id", playerID,
		"is_figc", input.IsFIGC,
	)
	return member, nil
}

// LinkPlayer attaches an existing player to a team. It is the recovery path for a
// player whose roster link was never written.
func (s *RosterService) LinkPlayer(ctx context.Context, input LinkPlayerInput) (roster.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.LinkPlayer")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if input.TeamID == "" || input.PlayerID == "" {
		return roster.Member{}, fmt.Errorf("%w: team id and player id are required", ErrInvalidInput)
	}

	player, exists, err := s.rosterRepo.GetPlayer(ctx, input.PlayerID)
	if err != nil {
		return roster.Member{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return roster.Member{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}

	entry, linked, err := s.rosterRepo.FindEntryByPlayer(ctx, input.PlayerID)
	if err != nil {
		return roster.Member{}, fmt.Errorf("find roster entry: %w", err)
	}
	if linked {
		if entry.TeamID != input.TeamID {
			return roster.Member{}, fmt.Errorf("%w: player=%s is on team=%s", ErrConflict, input.PlayerID, entry.TeamID)
		}
		return roster.Member{Entry: entry, Player: player}, nil
	}

	current, err := s.loadRoster(ctx, input.TeamID)
	if err != nil {
		return roster.Member{}, err
	}
	if err := roster.ValidateAddition(current, player.IsFIGC, s.rules); err != nil {
		return roster.Member{}, invalidInput(err)
	}

	entryID, err := s.idGen.NewID()
	if err != nil {
		return roster.Member{}, fmt.Errorf("generate roster entry id: %w", err)
	}
	entry = roster.Entry{
		ID:           entryID,
		TeamID:       input.TeamID,
		PlayerID:     player.ID,
		JerseyNumber: input.JerseyNumber,
		AddedAt:      s.clock.Now(),
	}
	if err := s.rosterRepo.AddEntry(ctx, entry); err != nil {
		return roster.Member{}, fmt.Errorf("add roster entry: %w", err)
	}

	return roster.Member{Entry: entry, Player: player}, nil
}

func (s *RosterService) ListRoster(ctx context.Context, teamID string) ([]roster.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListRoster")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	return s.loadRoster(ctx, teamID)
}

func (s *RosterService) SetCaptain(ctx context.Context, teamID, playerID string) error {
	members, err := s.ListRoster(ctx, teamID)
	if err != nil {
		return err
	}

	playerID = strings.TrimSpace(playerID)
	for _, m := range members {
		if m.Player.ID == playerID {
			if err := s.rosterRepo.SetCaptain(ctx, m.Entry.TeamID, playerID); err != nil {
				return fmt.Errorf("set captain: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: player=%s not on team=%s", ErrNotFound, playerID, teamID)
}

func (s *RosterService) loadRoster(ctx context.Context, teamID string) ([]roster.Member, error) {
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	members, err := s.rosterRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	return members, nil
}
