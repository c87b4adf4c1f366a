package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/cup-tournament/internal/domain/goalkeeper"
	"github.com/riskibarqy/cup-tournament/internal/domain/match"
)

type GoalkeeperRepository struct {
	mu      sync.RWMutex
	keepers []goalkeeper.Goalkeeper
}

func NewGoalkeeperRepository() *GoalkeeperRepository {
	return &GoalkeeperRepository{}
}

func (r *GoalkeeperRepository) FindByTeamAndName(_ context.Context, teamID, name string) (goalkeeper.Goalkeeper, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.keepers {
		if item.TeamID == teamID && item.Name == name {
			return item, true, nil
		}
	}
	return goalkeeper.Goalkeeper{}, false, nil
}

// Create enforces one goalkeeper per (team, name).
func (r *GoalkeeperRepository) Create(_ context.Context, item goalkeeper.Goalkeeper) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.keepers {
		if existing.TeamID == item.TeamID && existing.Name == item.Name {
			return fmt.Errorf("%w: %w: team=%s name=%s", ErrDuplicate, goalkeeper.ErrExists, item.TeamID, item.Name)
		}
		if existing.ID == item.ID {
			return fmt.Errorf("%w: goalkeeper id=%s", ErrDuplicate, item.ID)
		}
	}
	r.keepers = append(r.keepers, item)
	return nil
}

func (r *GoalkeeperRepository) List(_ context.Context) ([]goalkeeper.Goalkeeper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]goalkeeper.Goalkeeper, len(r.keepers))
	copy(out, r.keepers)
	return out, nil
}

type GoalkeeperStatRepository struct {
	mu   sync.RWMutex
	rows []goalkeeper.Stat
}

func NewGoalkeeperStatRepository() *GoalkeeperStatRepository {
	return &GoalkeeperStatRepository{}
}

func (r *GoalkeeperStatRepository) DeleteByMatch(_ context.Context, ref match.Ref) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.Match != ref {
			kept = append(kept, row)
		}
	}
	r.rows = kept
	return nil
}

func (r *GoalkeeperStatRepository) InsertMany(_ context.Context, items []goalkeeper.Stat) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, items...)
	return nil
}

func (r *GoalkeeperStatRepository) ListByMatch(_ context.Context, ref match.Ref) ([]goalkeeper.Stat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]goalkeeper.Stat, 0, 2)
	for _, row := range r.rows {
		if row.Match == ref {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *GoalkeeperStatRepository) List(_ context.Context) ([]goalkeeper.Stat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]goalkeeper.Stat, len(r.rows))
	copy(out, r.rows)
	return out, nil
}
