package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/cup-tournament/internal/domain/goalkeeper"
	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	"github.com/riskibarqy/cup-tournament/internal/domain/scorer"
	"github.com/riskibarqy/cup-tournament/internal/domain/team"
	"github.com/riskibarqy/cup-tournament/internal/platform/clock"
	idgen "github.com/riskibarqy/cup-tournament/internal/platform/id"
)

const (
	stepUpdateMatch            = "update_match"
	stepProvisionGoalkeepers   = "provision_goalkeepers"
	stepReplaceScorers         = "replace_scorers"
	stepReplaceGoalkeeperStats = "replace_goalkeeper_stats"
)

// sideResult is what one team brings to a result write.
type sideResult struct {
	team     team.Team
	scorers  []scorer.Entry
	conceded int
}

// resultWriter owns the goalkeeper and scorer bookkeeping shared by group and knockout
// results.
type resultWriter struct {
	scorerRepo     scorer.Repository
	goalkeeperRepo goalkeeper.Repository
	statRepo       goalkeeper.StatRepository
	idGen          idgen.Generator
	clock          clock.Clock
}

func newResultWriter(
	scorerRepo scorer.Repository,
	goalkeeperRepo goalkeeper.Repository,
	statRepo goalkeeper.StatRepository,
	idGen idgen.Generator,
	clk clock.Clock,
) *resultWriter {
	return &resultWriter{
		scorerRepo:     scorerRepo,
		goalkeeperRepo: goalkeeperRepo,
		statRepo:       statRepo,
		idGen:          idGen,
		clock:          clk,
	}
}

// parseScorers runs before any write so a malformed tally never leaves a half saved
// result.
func parseScorers(homeText, awayText string, homeTeamID, awayTeamID string) ([]scorer.Entry, []scorer.Entry, error) {
	home, err := scorer.Parse(homeText, homeTeamID)
	if err != nil {
		return nil, nil, invalidInput(fmt.Errorf("home scorers: %w", err))
	}
	away, err := scorer.Parse(awayText, awayTeamID)
	if err != nil {
		return nil, nil, invalidInput(fmt.Errorf("away scorers: %w", err))
	}
	return home, away, nil
}

// appendSteps adds goalkeeper provisioning, scorer replacement and goalkeeper stat
// replacement for ref to plan.
func (w *resultWriter) appendSteps(plan *writePlan, ref match.Ref, home, away sideResult) {
	var keepers [2]goalkeeper.Goalkeeper
	sides := [2]sideResult{home, away}

	plan.step(stepProvisionGoalkeepers, func(ctx context.Context) error {
		for i, side := range sides {
			gk, err := w.ensureGoalkeeper(ctx, side.team)
			if err != nil {
				return err
			}
			keepers[i] = gk
		}
		return nil
	})

	plan.step(stepReplaceScorers, func(ctx context.Context) error {
		if err := w.scorerRepo.DeleteByMatch(ctx, ref); err != nil {
			return fmt.Errorf("delete scorers: %w", err)
		}

		rows := make([]scorer.Scorer, 0, len(home.scorers)+len(away.scorers))
		for _, side := range sides {
			for _, entry := range side.scorers {
				id, err := w.idGen.NewID()
				if err != nil {
					return fmt.Errorf("generate scorer id: %w", err)
				}
				rows = append(rows, scorer.Scorer{
					ID:         id,
					Match:      ref,
					TeamID:     entry.TeamID,
					PlayerName: entry.PlayerName,
					Goals:      entry.Goals,
				})
			}
		}
		if len(rows) == 0 {
			return nil
		}
		if err := w.scorerRepo.InsertMany(ctx, rows); err != nil {
			return fmt.Errorf("insert scorers: %w", err)
		}
		return nil
	})

	plan.step(stepReplaceGoalkeeperStats, func(ctx context.Context) error {
		if err := w.statRepo.DeleteByMatch(ctx, ref); err != nil {
			return fmt.Errorf("delete goalkeeper stats: %w", err)
		}

		rows := make([]goalkeeper.Stat, 0, len(sides))
		for i, side := range sides {
			id, err := w.idGen.NewID()
			if err != nil {
				return fmt.Errorf("generate goalkeeper stat id: %w", err)
			}
			rows = append(rows, goalkeeper.NewStat(id, keepers[i].ID, ref, side.conceded))
		}
		if err := w.statRepo.InsertMany(ctx, rows); err != nil {
			return fmt.Errorf("insert goalkeeper stats: %w", err)
		}
		return nil
	})
}

// ensureGoalkeeper finds the team's goalkeeper under the current naming rule or
// creates it. Renamed teams therefore get a fresh goalkeeper; existing ones are never
// renamed. A concurrent save that created the keeper first wins and its row is reused.
func (w *resultWriter) ensureGoalkeeper(ctx context.Context, t team.Team) (goalkeeper.Goalkeeper, error) {
	name := goalkeeper.DefaultName(t.Name)
	gk, exists, err := w.goalkeeperRepo.FindByTeamAndName(ctx, t.ID, name)
	if err != nil {
		return goalkeeper.Goalkeeper{}, fmt.Errorf("find goalkeeper team=%s: %w", t.ID, err)
	}
	if exists {
		return gk, nil
	}

	id, err := w.idGen.NewID()
	if err != nil {
		return goalkeeper.Goalkeeper{}, fmt.Errorf("generate goalkeeper id: %w", err)
	}
	gk = goalkeeper.Goalkeeper{
		ID:        id,
		Name:      name,
		TeamID:    t.ID,
		CreatedAt: w.clock.Now(),
	}
	err = w.goalkeeperRepo.Create(ctx, gk)
	if errors.Is(err, goalkeeper.ErrExists) {
		return w.reloadGoalkeeper(ctx, t.ID, name)
	}
	if err != nil {
		return goalkeeper.Goalkeeper{}, fmt.Errorf("create goalkeeper team=%s: %w", t.ID, err)
	}
	return gk, nil
}

func (w *resultWriter) reloadGoalkeeper(ctx context.Context, teamID, name string) (goalkeeper.Goalkeeper, error) {
	gk, exists, err := w.goalkeeperRepo.FindByTeamAndName(ctx, teamID, name)
	if err != nil {
		return goalkeeper.Goalkeeper{}, fmt.Errorf("reload goalkeeper team=%s: %w", teamID, err)
	}
	if !exists {
		return goalkeeper.Goalkeeper{}, fmt.Errorf("goalkeeper team=%s name=%s reported as existing but not found", teamID, name)
	}
	return gk, nil
}

// loadTeamPair fetches both teams of a fixture.
func loadTeamPair(ctx context.Context, repo team.Repository, homeID, awayID string) (team.Team, team.Team, error) {
	home, exists, err := repo.GetByID(ctx, homeID)
	if err != nil {
		return team.Team{}, team.Team{}, fmt.Errorf("get home team: %w", err)
	}
	if !exists {
		return team.Team{}, team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, homeID)
	}
	away, exists, err := repo.GetByID(ctx, awayID)
	if err != nil {
		return team.Team{}, team.Team{}, fmt.Errorf("get away team: %w", err)
	}
	if !exists {
		return team.Team{}, team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, awayID)
	}
	return home, away, nil
}
