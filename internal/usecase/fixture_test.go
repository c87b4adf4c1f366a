package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/cup-tournament/internal/domain/goalkeeper"
	"github.com/riskibarqy/cup-tournament/internal/domain/knockout"
	"github.com/riskibarqy/cup-tournament/internal/domain/roster"
	"github.com/riskibarqy/cup-tournament/internal/domain/scorer"
	"github.com/riskibarqy/cup-tournament/internal/domain/team"
	"github.com/riskibarqy/cup-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cup-tournament/internal/platform/clock"
	idgen "github.com/riskibarqy/cup-tournament/internal/platform/id"
	"github.com/riskibarqy/cup-tournament/internal/platform/logging"
)

var testNow = time.Date(2026, 6, 14, 18, 30, 0, 0, time.UTC)

type testEnv struct {
	store       *memory.Store
	tournaments *TournamentService
	results     *MatchResultService
	standings   *StandingService
	knockout    *KnockoutService
	rosters     *RosterService
	stats       *StatsService
}

type envOption func(*envDeps)

// envDeps holds the repositories a test may swap for a failing one.
type envDeps struct {
	scorers     scorer.Repository
	goalkeepers goalkeeper.Repository
	knockout    knockout.Repository
	rosters     roster.Repository
}

func withScorerRepo(repo scorer.Repository) envOption {
	return func(d *envDeps) { d.scorers = repo }
}

func withGoalkeeperRepo(repo goalkeeper.Repository) envOption {
	return func(d *envDeps) { d.goalkeepers = repo }
}

func withKnockoutRepo(repo knockout.Repository) envOption {
	return func(d *envDeps) { d.knockout = repo }
}

func withRosterRepo(repo roster.Repository) envOption {
	return func(d *envDeps) { d.rosters = repo }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	store := memory.NewStore()
	deps := envDeps{
		scorers:     store.Scorers,
		goalkeepers: store.Goalkeepers,
		knockout:    store.Knockout,
		rosters:     store.Rosters,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	ids := idgen.NewSequenceGenerator("id")
	clk := clock.Fixed(testNow)
	logger := logging.NewNop()

	standings := NewStandingService(store.Tournaments, store.Groups, store.Teams, store.Matches)
	return &testEnv{
		store:       store,
		tournaments: NewTournamentService(store.Tournaments, store.Groups, store.Teams, store.Matches, ids, clk, logger, 2),
		results: NewMatchResultService(
			store.Matches, store.Teams, deps.scorers, deps.goalkeepers, store.GoalkeeperStats, ids, clk, logger,
		),
		standings: standings,
		knockout: NewKnockoutService(
			store.Tournaments, store.Groups, store.Teams, deps.knockout, standings,
			deps.scorers, deps.goalkeepers, store.GoalkeeperStats, ids, clk, logger,
		),
		rosters: NewRosterService(store.Teams, deps.rosters, roster.DefaultRules(), ids, clk, logger),
		stats:   NewStatsService(store.Teams, deps.scorers, store.Goalkeepers, store.GoalkeeperStats, nil),
	}
}

func (e *testEnv) setup(t *testing.T) TournamentSetup {
	t.Helper()

	setup, err := e.tournaments.CreateTournament(context.Background(), CreateTournamentInput{Name: "Torneo Estivo", Year: 2026})
	if err != nil {
		t.Fatalf("create tournament: %v", err)
	}
	return setup
}

// playGroupsHomeWins plays every group match 1-0 to the home side. With round-robin
// pairing the first team of each group finishes first and the second finishes second.
func (e *testEnv) playGroupsHomeWins(t *testing.T, setup TournamentSetup) {
	t.Helper()

	for _, g := range setup.Groups {
		for _, m := range g.Matches {
			if _, err := e.results.RecordGroupResult(context.Background(), RecordGroupResultInput{
				MatchID:   m.ID,
				HomeScore: 1,
				AwayScore: 0,
			}); err != nil {
				t.Fatalf("record group result %s: %v", m.ID, err)
			}
		}
	}
}

func (e *testEnv) teamByName(t *testing.T, setup TournamentSetup, name string) team.Team {
	t.Helper()

	for _, g := range setup.Groups {
		for _, item := range g.Teams {
			if item.Name == name {
				return item
			}
		}
	}
	t.Fatalf("team %s not in setup", name)
	return team.Team{}
}

func (e *testEnv) knockoutMatch(t *testing.T, tournamentID string, phase knockout.PhaseType, order int) knockout.Match {
	t.Helper()

	bracket, err := e.knockout.ListBracket(context.Background(), tournamentID)
	if err != nil {
		t.Fatalf("list bracket: %v", err)
	}
	for _, pm := range bracket {
		if pm.Phase.Type != phase {
			continue
		}
		for _, m := range pm.Matches {
			if m.Order == order {
				return m
			}
		}
	}
	t.Fatalf("no %s match with order %d", phase, order)
	return knockout.Match{}
}

var errStoreDown = errors.New("store unavailable")

// failingScorerRepo fails every insert.
type failingScorerRepo struct {
	scorer.Repository
}

func (failingScorerRepo) InsertMany(context.Context, []scorer.Scorer) error {
	return errStoreDown
}

// failingSlotRepo fails every slot assignment.
type failingSlotRepo struct {
	knockout.Repository
}

func (failingSlotRepo) AssignSlot(context.Context, string, knockout.Side, string) error {
	return errStoreDown
}

// failingLinkRepo creates players but cannot link them.
type failingLinkRepo struct {
	roster.Repository
}

func (failingLinkRepo) AddEntry(context.Context, roster.Entry) error {
	return errStoreDown
}

// staleLookupGoalkeeperRepo misses the first lookup, like a save that read just before a
// concurrent one created the keeper.
type staleLookupGoalkeeperRepo struct {
	goalkeeper.Repository
	missed atomic.Bool
}

func (r *staleLookupGoalkeeperRepo) FindByTeamAndName(ctx context.Context, teamID, name string) (goalkeeper.Goalkeeper, bool, error) {
	if r.missed.CompareAndSwap(false, true) {
		return goalkeeper.Goalkeeper{}, false, nil
	}
	return r.Repository.FindByTeamAndName(ctx, teamID, name)
}
