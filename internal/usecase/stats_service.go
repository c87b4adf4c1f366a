package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/riskibarqy/cup-tournament/internal/domain/goalkeeper"
	"github.com/riskibarqy/cup-tournament/internal/domain/scorer"
	"github.com/riskibarqy/cup-tournament/internal/domain/stats"
	"github.com/riskibarqy/cup-tournament/internal/domain/team"
)

type StatsService struct {
	teamRepo       team.Repository
	scorerRepo     scorer.Repository
	goalkeeperRepo goalkeeper.Repository
	statRepo       goalkeeper.StatRepository
	tieBreak       stats.TieBreak
}

func NewStatsService(
	teamRepo team.Repository,
	scorerRepo scorer.Repository,
	goalkeeperRepo goalkeeper.Repository,
	statRepo goalkeeper.StatRepository,
	tieBreak stats.TieBreak,
) *StatsService {
	return &StatsService{
		teamRepo:       teamRepo,
		scorerRepo:     scorerRepo,
		goalkeeperRepo: goalkeeperRepo,
		statRepo:       statRepo,
		tieBreak:       tieBreak,
	}
}

// TopScorers ranks scorers across group and knockout matches. limit <= 0 returns all.
func (s *StatsService) TopScorers(ctx context.Context, limit int) ([]stats.TopScorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TopScorers")
	defer span.End()

	var (
		rows  []scorer.Scorer
		teams []team.Team
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.scorerRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("list scorers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	input := make([]stats.ScorerRow, 0, len(rows))
	for _, r := range rows {
		input = append(input, stats.ScorerRow{
			Stage:      r.Match.Stage,
			PlayerName: r.PlayerName,
			TeamID:     r.TeamID,
			TeamName:   teamNames[r.TeamID],
			Goals:      r.Goals,
		})
	}

	out := stats.TopScorers(input, s.tieBreak)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *StatsService) GoalkeeperRanking(ctx context.Context) ([]stats.GoalkeeperRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.GoalkeeperRanking")
	defer span.End()

	var (
		keepers []goalkeeper.Goalkeeper
		rows    []goalkeeper.Stat
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		keepers, err = s.goalkeeperRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("list goalkeepers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rows, err = s.statRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("list goalkeeper stats: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats.RankGoalkeepers(keepers, rows), nil
}

func (s *StatsService) ListGoalkeepers(ctx context.Context) ([]goalkeeper.Goalkeeper, error) {
	items, err := s.goalkeeperRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goalkeepers: %w", err)
	}
	return items, nil
}
