package cache

import (
	"context"
	"strings"

	"github.com/riskibarqy/cup-tournament/internal/domain/team"
	"github.com/riskibarqy/cup-tournament/internal/domain/tournament"
	basecache "github.com/riskibarqy/cup-tournament/internal/platform/cache"
)

const (
	teamKeyPrefix       = "team:"
	teamListKey         = "team:list"
	teamIDsKeyPrefix    = "team:ids:"
	tournamentListKey   = "tournament:list"
	tournamentKeyPrefix = "tournament:id:"
)

// TournamentRepository caches reads of the tournament table. Tournaments are never
// updated, so only creation invalidates.
type TournamentRepository struct {
	next  tournament.Repository
	cache *basecache.Store
}

func NewTournamentRepository(next tournament.Repository, cache *basecache.Store) *TournamentRepository {
	return &TournamentRepository{next: next, cache: cache}
}

func (r *TournamentRepository) Create(ctx context.Context, item tournament.Tournament) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, tournamentListKey, tournamentKeyPrefix+item.ID)
	return nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, tournamentKeyPrefix+tournamentID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return cachedTournamentByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return tournament.Tournament{}, false, err
	}

	cached, _ := v.(cachedTournamentByID)
	return cached.value, cached.exists, nil
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	v, err := r.cache.GetOrLoad(ctx, tournamentListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]tournament.Tournament(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]tournament.Tournament)
	return append([]tournament.Tournament(nil), items...), nil
}

type cachedTournamentByID struct {
	value  tournament.Tournament
	exists bool
}

// TeamRepository caches team reads. Any write drops every team entry since a rename
// changes the list and batch results too.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, teamKeyPrefix)
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	err := r.next.Update(ctx, item)
	r.cache.DeletePrefix(ctx, teamKeyPrefix)
	return err
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, teamKeyPrefix+"id:"+teamID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) GetByIDs(ctx context.Context, teamIDs []string) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamIDsKey(teamIDs), func(ctx context.Context) (any, error) {
		items, err := r.next.GetByIDs(ctx, teamIDs)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

// teamIDsKey keeps request order since callers rely on the order of the result.
func teamIDsKey(teamIDs []string) string {
	return teamIDsKeyPrefix + strings.Join(teamIDs, ",")
}
