package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/cup-tournament/internal/config"
	"github.com/riskibarqy/cup-tournament/internal/domain/goalkeeper"
	"github.com/riskibarqy/cup-tournament/internal/domain/group"
	"github.com/riskibarqy/cup-tournament/internal/domain/knockout"
	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	"github.com/riskibarqy/cup-tournament/internal/domain/roster"
	"github.com/riskibarqy/cup-tournament/internal/domain/scorer"
	"github.com/riskibarqy/cup-tournament/internal/domain/team"
	"github.com/riskibarqy/cup-tournament/internal/domain/tournament"
	repocache "github.com/riskibarqy/cup-tournament/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/cup-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cup-tournament/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cup-tournament/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/cup-tournament/internal/platform/cache"
	"github.com/riskibarqy/cup-tournament/internal/platform/clock"
	idgen "github.com/riskibarqy/cup-tournament/internal/platform/id"
	"github.com/riskibarqy/cup-tournament/internal/platform/logging"
	"github.com/riskibarqy/cup-tournament/internal/usecase"
)

// repositories is the storage a running service is built on, independent of driver.
type repositories struct {
	tournaments     tournament.Repository
	teams           team.Repository
	groups          group.Repository
	matches         match.Repository
	scorers         scorer.Repository
	goalkeepers     goalkeeper.Repository
	goalkeeperStats goalkeeper.StatRepository
	knockout        knockout.Repository
	rosters         roster.Repository
}

func fromMemory(store *memory.Store) repositories {
	return repositories{
		tournaments:     store.Tournaments,
		teams:           store.Teams,
		groups:          store.Groups,
		matches:         store.Matches,
		scorers:         store.Scorers,
		goalkeepers:     store.Goalkeepers,
		goalkeeperStats: store.GoalkeeperStats,
		knockout:        store.Knockout,
		rosters:         store.Rosters,
	}
}

func fromPostgres(store *postgres.Store) repositories {
	return repositories{
		tournaments:     store.Tournaments,
		teams:           store.Teams,
		groups:          store.Groups,
		matches:         store.Matches,
		scorers:         store.Scorers,
		goalkeepers:     store.Goalkeepers,
		goalkeeperStats: store.GoalkeeperStats,
		knockout:        store.Knockout,
		rosters:         store.Rosters,
	}
}

// NewHTTPServer wires storage, use cases and the router. The returned cleanup releases
// the database pool and must run after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	clk := clock.System()
	if cfg.CacheTTL > 0 {
		repos = withReadCache(repos, basecache.NewStore(cfg.CacheTTL, clk))
		logger.InfoContext(ctx, "read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	services := buildServices(cfg, repos, idgen.NewUUIDGenerator(), clk, logger)
	handler := httpapi.NewHandler(services, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		logger.InfoContext(ctx, "postgres store ready",
			"db", redactDBURL(cfg.DBURL),
			"max_open_conns", cfg.DBMaxOpenConns,
		)
		return fromPostgres(postgres.NewStore(db)), db.Close, nil
	default:
		logger.InfoContext(ctx, "memory store ready")
		return fromMemory(memory.NewStore()), func() error { return nil }, nil
	}
}

// withReadCache puts the tournament and team tables behind a TTL cache. Match and
// bracket data change with every result and are always read through.
func withReadCache(repos repositories, store *basecache.Store) repositories {
	repos.tournaments = repocache.NewTournamentRepository(repos.tournaments, store)
	repos.teams = repocache.NewTeamRepository(repos.teams, store)
	return repos
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres %s: %w", dbNameFromURL(cfg.DBURL), err)
	}
	return db, nil
}

func buildServices(
	cfg config.Config,
	repos repositories,
	ids idgen.Generator,
	clk clock.Clock,
	logger *logging.Logger,
) httpapi.Services {
	rules := roster.Rules{MaxPlayers: cfg.RosterMaxPlayers, MaxFIGC: cfg.RosterMaxFIGC}
	if rules.MaxPlayers <= 0 {
		rules = roster.DefaultRules()
	}

	standings := usecase.NewStandingService(repos.tournaments, repos.groups, repos.teams, repos.matches)
	return httpapi.Services{
		Tournaments: usecase.NewTournamentService(
			repos.tournaments, repos.groups, repos.teams, repos.matches, ids, clk, logger, cfg.SetupMaxWorkers,
		),
		Results: usecase.NewMatchResultService(
			repos.matches, repos.teams, repos.scorers, repos.goalkeepers, repos.goalkeeperStats, ids, clk, logger,
		),
		Standings: standings,
		Knockout: usecase.NewKnockoutService(
			repos.tournaments, repos.groups, repos.teams, repos.knockout, standings,
			repos.scorers, repos.goalkeepers, repos.goalkeeperStats, ids, clk, logger,
		),
		Rosters: usecase.NewRosterService(repos.teams, repos.rosters, rules, ids, clk, logger),
		Stats:   usecase.NewStatsService(repos.teams, repos.scorers, repos.goalkeepers, repos.goalkeeperStats, nil),
	}
}
