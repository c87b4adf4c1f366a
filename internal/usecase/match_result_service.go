package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cup-tournament/internal/domain/goalkeeper"
	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	"github.com/riskibarqy/cup-tournament/internal/domain/scorer"
	"github.com/riskibarqy/cup-tournament/internal/domain/team"
	"github.com/riskibarqy/cup-tournament/internal/platform/clock"
	idgen "github.com/riskibarqy/cup-tournament/internal/platform/id"
	"github.com/riskibarqy/cup-tournament/internal/platform/logging"
)

type RecordGroupResultInput struct {
	MatchID     string
	HomeScore   int
	AwayScore   int
	ScorersHome string
	ScorersAway string
}

type MatchResultService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	writer    *resultWriter
	clock     clock.Clock
	logger    *logging.Logger
}

func NewMatchResultService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	scorerRepo scorer.Repository,
	goalkeeperRepo goalkeeper.Repository,
	statRepo goalkeeper.StatRepository,
	idGen idgen.Generator,
	clk clock.Clock,
	logger *logging.Logger,
) *MatchResultService {
	if logger == nil {
		logger = logging.Default()
	}
	if clk == nil {
		clk = clock.System()
	}

	return &MatchResultService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		writer:    newResultWriter(scorerRepo, goalkeeperRepo, statRepo, idGen, clk),
		clock:     clk,
		logger:    logger,
	}
}

// RecordGroupResult stores a group match score, replacing any previous result together
// with its scorers and goalkeeper lines. Scorer totals are not checked against the
// score.
func (s *MatchResultService) RecordGroupResult(ctx context.Context, input RecordGroupResultInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.RecordGroupResult",
		attribute.String("match_id", input.MatchID))
	defer span.End()

	input.MatchID = strings.TrimSpace(input.MatchID)
	if input.MatchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if err := match.ValidateScore(input.HomeScore, input.AwayScore); err != nil {
		return match.Match{}, invalidInput(err)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, input.MatchID)
	}

	homeScorers, awayScorers, err := parseScorers(input.ScorersHome, input.ScorersAway, item.HomeTeamID, item.AwayTeamID)
	if err != nil {
		return match.Match{}, err
	}

	homeTeam, awayTeam, err := loadTeamPair(ctx, s.teamRepo, item.HomeTeamID, item.AwayTeamID)
	if err != nil {
		return match.Match{}, err
	}

	now := s.clock.Now()
	if err := item.SetResult(input.HomeScore, input.AwayScore, now); err != nil {
		return match.Match{}, invalidInput(err)
	}

	ref := match.GroupRef(item.ID)
	plan := newWritePlan("record_group_result", s.logger).
		step(stepUpdateMatch, func(ctx context.Context) error {
			return s.matchRepo.UpdateResult(ctx, item.ID, input.HomeScore, input.AwayScore, now)
		})
	s.writer.appendSteps(plan, ref,
		sideResult{team: homeTeam, scorers: homeScorers, conceded: input.AwayScore},
		sideResult{team: awayTeam, scorers: awayScorers, conceded: input.HomeScore},
	)
	if err := plan.execute(ctx); err != nil {
		return match.Match{}, err
	}

	s.logger.InfoContext(ctx, "group result recorded",
		"match_id", item.ID,
		"home_score", input.HomeScore,
		"away_score", input.AwayScore,
		"scorer_goals_home", scorer.TotalGoals(homeScorers),
		"scorer_goals_away", scorer.TotalGoals(awayScorers),
	)

	return item, nil
}
