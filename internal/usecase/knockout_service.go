package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cup-tournament/internal/domain/goalkeeper"
	"github.com/riskibarqy/cup-tournament/internal/domain/group"
	"github.com/riskibarqy/cup-tournament/internal/domain/knockout"
	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	"github.com/riskibarqy/cup-tournament/internal/domain/scorer"
	"github.com/riskibarqy/cup-tournament/internal/domain/standing"
	"github.com/riskibarqy/cup-tournament/internal/domain/team"
	"github.com/riskibarqy/cup-tournament/internal/domain/tournament"
	"github.com/riskibarqy/cup-tournament/internal/platform/clock"
	idgen "github.com/riskibarqy/cup-tournament/internal/platform/id"
	"github.com/riskibarqy/cup-tournament/internal/platform/logging"
)

const qualifyMaxGoroutines = 4

type PhaseMatches struct {
	Phase   knockout.Phase
	Matches []knockout.Match
}

type RecordKnockoutResultInput struct {
	MatchID       string
	HomeScore     int
	AwayScore     int
	HomePenalties *int
	AwayPenalties *int
	ScorersHome   string
	ScorersAway   string
}

type KnockoutResult struct {
	Match       knockout.Match
	Assignments []knockout.Assignment
}

type KnockoutService struct {
	tournamentRepo tournament.Repository
	groupRepo      group.Repository
	teamRepo       team.Repository
	knockoutRepo   knockout.Repository
	standings      *StandingService
	writer         *resultWriter
	topology       knockout.Topology
	idGen          idgen.Generator
	clock          clock.Clock
	logger         *logging.Logger
}

func NewKnockoutService(
	tournamentRepo tournament.Repository,
	groupRepo group.Repository,
	teamRepo team.Repository,
	knockoutRepo knockout.Repository,
	standings *StandingService,
	scorerRepo scorer.Repository,
	goalkeeperRepo goalkeeper.Repository,
	statRepo goalkeeper.StatRepository,
	idGen idgen.Generator,
	clk clock.Clock,
	logger *logging.Logger,
) *KnockoutService {
	if logger == nil {
		logger = logging.Default()
	}
	if clk == nil {
		clk = clock.System()
	}

	return &KnockoutService{
		tournamentRepo: tournamentRepo,
		groupRepo:      groupRepo,
		teamRepo:       teamRepo,
		knockoutRepo:   knockoutRepo,
		standings:      standings,
		writer:         newResultWriter(scorerRepo, goalkeeperRepo, statRepo, idGen, clk),
		topology:       knockout.StandardTopology(),
		idGen:          idGen,
		clock:          clk,
		logger:         logger,
	}
}

// CreatePhases creates the four phases with their empty matches. It does not look for
// existing phases; calling it twice duplicates the bracket. Use EnsurePhases when that
// matters.
func (s *KnockoutService) CreatePhases(ctx context.Context, tournamentID string) ([]PhaseMatches, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.KnockoutService.CreatePhases")
	defer span.End()

	tournamentID, err := s.requireTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := make([]PhaseMatches, 0, len(knockout.PhaseOrder))
	plan := newWritePlan("create_knockout_phases", s.logger)
	for _, phaseType := range knockout.PhaseOrder {
		phaseType := phaseType
		plan.step("create_"+string(phaseType), func(ctx context.Context) error {
			phaseID, err := s.idGen.NewID()
			if err != nil {
				return fmt.Errorf("generate phase id: %w", err)
			}
			phase := knockout.Phase{ID: phaseID, TournamentID: tournamentID, Type: phaseType, CreatedAt: now}

			matches := make([]knockout.Match, 0, phaseType.MatchCount())
			for order := 1; order <= phaseType.MatchCount(); order++ {
				matchID, err := s.idGen.NewID()
				if err != nil {
					return fmt.Errorf("generate knockout match id: %w", err)
				}
				matches = append(matches, knockout.Match{ID: matchID, PhaseID: phaseID, Order: order, UpdatedAt: now})
			}

			if err := s.knockoutRepo.CreatePhase(ctx, phase); err != nil {
				return fmt.Errorf("create phase %s: %w", phaseType, err)
			}
			if err := s.knockoutRepo.CreateMatches(ctx, matches); err != nil {
				return fmt.Errorf("create %s matches: %w", phaseType, err)
			}
			out = append(out, PhaseMatches{Phase: phase, Matches: matches})
			return nil
		})
	}
	if err := plan.execute(ctx); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "knockout phases created", "tournament_id", tournamentID)
	return out, nil
}

// EnsurePhases returns the stored bracket, creating it first when the tournament has
// no phases.
func (s *KnockoutService) EnsurePhases(ctx context.Context, tournamentID string) ([]PhaseMatches, error) {
	tournamentID, err := s.requireTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	existing, err := s.loadBracket(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}
	return s.CreatePhases(ctx, tournamentID)
}

// ListBracket returns phases in creation order with their matches ordered by slot.
func (s *KnockoutService) ListBracket(ctx context.Context, tournamentID string) ([]PhaseMatches, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.KnockoutService.ListBracket")
	defer span.End()

	tournamentID, err := s.requireTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return s.loadBracket(ctx, tournamentID)
}

// QualifyToQuarterfinals seeds the quarterfinals from the current group tables using
// 1A-2B, 1B-2A, 1C-2D, 1D-2C. Quarterfinals whose seeds are unknown are left alone;
// already seeded ones are overwritten.
func (s *KnockoutService) QualifyToQuarterfinals(ctx context.Context, tournamentID string) ([]knockout.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.KnockoutService.QualifyToQuarterfinals",
		attribute.String("tournament_id", tournamentID))
	defer span.End()

	bracket, err := s.EnsurePhases(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	var quarterfinals []knockout.Match
	for _, pm := range bracket {
		if pm.Phase.Type == knockout.PhaseQuarterfinals {
			quarterfinals = pm.Matches
			break
		}
	}
	if len(quarterfinals) < knockout.PhaseQuarterfinals.MatchCount() {
		return nil, fmt.Errorf("%w: tournament=%s has %d quarterfinal matches", ErrConflict, tournamentID, len(quarterfinals))
	}

	qualifiers, err := s.groupQualifiers(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	byOrder := make(map[int]knockout.Match, len(quarterfinals))
	for _, m := range quarterfinals {
		byOrder[m.Order] = m
	}

	pairings := knockout.QuarterfinalPairings(qualifiers)
	plan := newWritePlan("qualify_quarterfinals", s.logger)
	seeded := make([]knockout.Match, 0, len(pairings))
	for _, p := range pairings {
		item, ok := byOrder[p.Order]
		if !ok {
			continue
		}
		p := p
		plan.step(fmt.Sprintf("seed_qf%d", p.Order), func(ctx context.Context) error {
			if err := s.knockoutRepo.SetTeams(ctx, item.ID, p.HomeTeamID, p.AwayTeamID); err != nil {
				return fmt.Errorf("set quarterfinal %d teams: %w", p.Order, err)
			}
			home, away := p.HomeTeamID, p.AwayTeamID
			item.HomeTeamID = &home
			item.AwayTeamID = &away
			seeded = append(seeded, item)
			return nil
		})
	}
	if err := plan.execute(ctx); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "quarterfinals seeded",
		"tournament_id", tournamentID,
		"seeded", len(seeded),
	)
	return seeded, nil
}

// groupQualifiers computes each group's table concurrently and keeps the top two.
func (s *KnockoutService) groupQualifiers(ctx context.Context, tournamentID string) ([]knockout.Qualifier, error) {
	groups, err := s.groupRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	p := pool.NewWithResults[knockout.Qualifier]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(qualifyMaxGoroutines)
	for _, g := range groups {
		g := g
		p.Go(func(ctx context.Context) (knockout.Qualifier, error) {
			table, err := s.standings.compute(ctx, g)
			if err != nil {
				return knockout.Qualifier{}, fmt.Errorf("group %s standings: %w", g.Label, err)
			}

			q := knockout.Qualifier{GroupLabel: g.Label}
			top := standing.Qualified(table.Rows)
			if len(top) > 0 {
				q.WinnerID = top[0].TeamID
			}
			if len(top) > 1 {
				q.RunnerUpID = top[1].TeamID
			}
			return q, nil
		})
	}

	return p.Wait()
}

// RecordKnockoutResult stores a knockout score and moves the winner, and for
// semifinals the loser, on through the bracket. A drawn score needs decisive
// penalties. When the result is stored but advancement fails the stored match is
// returned together with an *AdvancementError.
func (s *KnockoutService) RecordKnockoutResult(ctx context.Context, input RecordKnockoutResultInput) (KnockoutResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.KnockoutService.RecordKnockoutResult",
		attribute.String("match_id", input.MatchID))
	defer span.End()

	input.MatchID = strings.TrimSpace(input.MatchID)
	if input.MatchID == "" {
		return KnockoutResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	now := s.clock.Now()
	res := knockout.Result{
		HomeScore:     input.HomeScore,
		AwayScore:     input.AwayScore,
		HomePenalties: input.HomePenalties,
		AwayPenalties: input.AwayPenalties,
		PlayedAt:      now,
	}
	if err := res.Validate(); err != nil {
		return KnockoutResult{}, invalidInput(err)
	}

	item, exists, err := s.knockoutRepo.GetMatch(ctx, input.MatchID)
	if err != nil {
		return KnockoutResult{}, fmt.Errorf("get knockout match: %w", err)
	}
	if !exists {
		return KnockoutResult{}, fmt.Errorf("%w: knockout match=%s", ErrNotFound, input.MatchID)
	}
	if !item.TeamsAssigned() {
		return KnockoutResult{}, fmt.Errorf("%w: %w: match=%s", ErrConflict, knockout.ErrTeamsNotAssigned, item.ID)
	}
	homeID, awayID := *item.HomeTeamID, *item.AwayTeamID

	outcome, err := knockout.DecideWinner(homeID, awayID, res)
	if err != nil {
		return KnockoutResult{}, invalidInput(err)
	}
	if item.WinnerID != nil && *item.WinnerID != outcome.WinnerID {
		return KnockoutResult{}, fmt.Errorf("%w: match=%s already won by team=%s", ErrConflict, item.ID, *item.WinnerID)
	}

	homeScorers, awayScorers, err := parseScorers(input.ScorersHome, input.ScorersAway, homeID, awayID)
	if err != nil {
		return KnockoutResult{}, err
	}
	homeTeam, awayTeam, err := loadTeamPair(ctx, s.teamRepo, homeID, awayID)
	if err != nil {
		return KnockoutResult{}, err
	}

	// Penalties only mean something after a draw.
	if !res.Drawn() {
		res.HomePenalties, res.AwayPenalties = nil, nil
	}
	winnerID := outcome.WinnerID

	plan := newWritePlan("record_knockout_result", s.logger).
		step(stepUpdateMatch, func(ctx context.Context) error {
			return s.knockoutRepo.UpdateResult(ctx, item.ID, res, &winnerID, now)
		})
	s.writer.appendSteps(plan, match.KnockoutRef(item.ID),
		sideResult{team: homeTeam, scorers: homeScorers, conceded: input.AwayScore},
		sideResult{team: awayTeam, scorers: awayScorers, conceded: input.HomeScore},
	)
	if err := plan.execute(ctx); err != nil {
		return KnockoutResult{}, err
	}

	home, away := input.HomeScore, input.AwayScore
	item.HomeScore = &home
	item.AwayScore = &away
	item.HomePenalties = res.HomePenalties
	item.AwayPenalties = res.AwayPenalties
	item.WinnerID = &winnerID
	item.PlayedAt = &now
	item.UpdatedAt = now

	s.logger.InfoContext(ctx, "knockout result recorded",
		"match_id", item.ID,
		"winner_id", winnerID,
		"home_score", home,
		"away_score", away,
	)

	out := KnockoutResult{Match: item}
	assignments, err := s.advance(ctx, item, outcome)
	if err != nil {
		advErr := &AdvancementError{MatchID: item.ID, Err: err}
		s.logger.WarnContext(ctx, "knockout advancement failed", "match_id", item.ID, "error", err)
		return out, advErr
	}
	out.Assignments = assignments
	return out, nil
}

func (s *KnockoutService) advance(ctx context.Context, item knockout.Match, outcome knockout.Outcome) ([]knockout.Assignment, error) {
	phase, exists, err := s.knockoutRepo.GetPhase(ctx, item.PhaseID)
	if err != nil {
		return nil, fmt.Errorf("get phase: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("phase %s not found", item.PhaseID)
	}
	if s.topology.Terminal(knockout.Slot{Phase: phase.Type, Order: item.Order}) {
		return nil, nil
	}

	bracket, err := s.loadBracket(ctx, phase.TournamentID)
	if err != nil {
		return nil, err
	}

	phases := make([]knockout.Phase, 0, len(bracket))
	matches := make([]knockout.Match, 0, 8)
	for _, pm := range bracket {
		phases = append(phases, pm.Phase)
		matches = append(matches, pm.Matches...)
	}

	graph, err := knockout.NewBracket(s.topology, phases, matches)
	if err != nil {
		return nil, err
	}
	assignments, err := graph.Advance(item.ID, outcome)
	if err != nil {
		return nil, err
	}

	for _, a := range assignments {
		if err := s.knockoutRepo.AssignSlot(ctx, a.MatchID, a.Side, a.TeamID); err != nil {
			return nil, fmt.Errorf("assign %s slot of match %s: %w", a.Side, a.MatchID, err)
		}
	}
	return assignments, nil
}

func (s *KnockoutService) loadBracket(ctx context.Context, tournamentID string) ([]PhaseMatches, error) {
	phases, err := s.knockoutRepo.ListPhasesByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list phases: %w", err)
	}

	out := make([]PhaseMatches, 0, len(phases))
	for _, p := range phases {
		matches, err := s.knockoutRepo.ListMatchesByPhase(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("list %s matches: %w", p.Type, err)
		}
		out = append(out, PhaseMatches{Phase: p, Matches: matches})
	}
	return out, nil
}

func (s *KnockoutService) requireTournament(ctx context.Context, tournamentID string) (string, error) {
	return requireTournament(ctx, s.tournamentRepo, tournamentID)
}

// requireTournament trims tournamentID and checks the tournament exists.
func requireTournament(ctx context.Context, repo tournament.Repository, tournamentID string) (string, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return "", fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	_, exists, err := repo.GetByID(ctx, tournamentID)
	if err != nil {
		return "", fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	return tournamentID, nil
}

// IsAdvancementFailure reports whether err only concerns advancement, meaning the
// result itself was stored.
func IsAdvancementFailure(err error) bool {
	var advErr *AdvancementError
	return errors.As(err, &advErr)
}
