package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/cup-tournament/internal/domain/goalkeeper"
	"github.com/riskibarqy/cup-tournament/internal/domain/knockout"
	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	"github.com/riskibarqy/cup-tournament/internal/domain/roster"
	"github.com/riskibarqy/cup-tournament/internal/domain/scorer"
)

func TestScorerRepository_DeleteByMatchOnlyTouchesThatMatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScorerRepository()
	rows := []scorer.Scorer{
		{ID: "s1", Match: match.GroupRef("m1"), TeamID: "t1", PlayerName: "Rossi", Goals: 1},
		{ID: "s2", Match: match.KnockoutRef("m1"), TeamID: "t1", PlayerName: "Rossi", Goals: 2},
		{ID: "s3", Match: match.GroupRef("m2"), TeamID: "t2", PlayerName: "Verdi", Goals: 1},
	}
	if err := repo.InsertMany(ctx, rows); err != nil {
		t.Fatalf("insert scorers: %v", err)
	}

	if err := repo.DeleteByMatch(ctx, match.GroupRef("m1")); err != nil {
		t.Fatalf("delete scorers: %v", err)
	}

	left, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list scorers: %v", err)
	}
	if len(left) != 2 || left[0].ID != "s2" || left[1].ID != "s3" {
		t.Fatalf("unexpected rows after delete: %+v", left)
	}
}

func TestScorerRepository_RejectsZeroGoals(t *testing.T) {
	t.Parallel()

	err := NewScorerRepository().InsertMany(context.Background(), []scorer.Scorer{
		{ID: "s1", Match: match.GroupRef("m1"), TeamID: "t1", PlayerName: "Rossi", Goals: 0},
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestGoalkeeperRepository_UniquePerTeamAndName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewGoalkeeperRepository()
	gk := goalkeeper.Goalkeeper{ID: "g1", Name: "P1_Aquile", TeamID: "t1"}
	if err := repo.Create(ctx, gk); err != nil {
		t.Fatalf("create goalkeeper: %v", err)
	}

	gk.ID = "g2"
	err := repo.Create(ctx, gk)
	if !errors.Is(err, ErrDuplicate) || !errors.Is(err, goalkeeper.ErrExists) {
		t.Fatalf("expected ErrDuplicate and ErrExists, got %v", err)
	}

	other := goalkeeper.Goalkeeper{ID: "g1", Name: "P1_Lupi", TeamID: "t2"}
	if err := repo.Create(ctx, other); !errors.Is(err, ErrDuplicate) || errors.Is(err, goalkeeper.ErrExists) {
		t.Fatalf("expected id clash without ErrExists, got %v", err)
	}

	found, ok, err := repo.FindByTeamAndName(ctx, "t1", "P1_Aquile")
	if err != nil || !ok || found.ID != "g1" {
		t.Fatalf("unexpected lookup: %+v ok=%v err=%v", found, ok, err)
	}
}

func TestKnockoutRepository_SlotsAndResult(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewKnockoutRepository()
	if err := repo.CreatePhase(ctx, knockout.Phase{ID: "p1", TournamentID: "t", Type: knockout.PhaseFinal}); err != nil {
		t.Fatalf("create phase: %v", err)
	}
	if err := repo.CreateMatches(ctx, []knockout.Match{{ID: "f1", PhaseID: "p1", Order: 1}}); err != nil {
		t.Fatalf("create matches: %v", err)
	}

	if err := repo.AssignSlot(ctx, "f1", knockout.SideAway, "b"); err != nil {
		t.Fatalf("assign away: %v", err)
	}
	if err := repo.AssignSlot(ctx, "f1", knockout.SideHome, "a"); err != nil {
		t.Fatalf("assign home: %v", err)
	}

	winner := "a"
	at := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)
	if err := repo.UpdateResult(ctx, "f1", knockout.Result{HomeScore: 1, AwayScore: 0, PlayedAt: at}, &winner, at); err != nil {
		t.Fatalf("update result: %v", err)
	}

	got, ok, err := repo.GetMatch(ctx, "f1")
	if err != nil || !ok {
		t.Fatalf("get match: ok=%v err=%v", ok, err)
	}
	if *got.HomeTeamID != "a" || *got.AwayTeamID != "b" || *got.WinnerID != "a" || got.HomePenalties != nil {
		t.Fatalf("unexpected match: %+v", got)
	}

	if err := repo.AssignSlot(ctx, "missing", knockout.SideHome, "a"); !errors.Is(err, ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}

func TestRosterRepository_SetCaptain(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRosterRepository()
	for _, id := range []string{"p1", "p2"} {
		if err := repo.CreatePlayer(ctx, roster.Player{ID: id, Name: "Player " + id}); err != nil {
			t.Fatalf("create player: %v", err)
		}
		if err := repo.AddEntry(ctx, roster.Entry{ID: "e" + id, TeamID: "t1", PlayerID: id, IsCaptain: id == "p1"}); err != nil {
			t.Fatalf("add entry: %v", err)
		}
	}

	if err := repo.SetCaptain(ctx, "t1", "nobody"); !errors.Is(err, ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
	if err := repo.SetCaptain(ctx, "t1", "p2"); err != nil {
		t.Fatalf("set captain: %v", err)
	}

	members, err := repo.ListByTeam(ctx, "t1")
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if members[0].Entry.IsCaptain || !members[1].Entry.IsCaptain {
		t.Fatalf("unexpected captains: %+v", members)
	}
}
