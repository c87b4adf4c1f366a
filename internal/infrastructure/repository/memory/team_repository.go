package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/cup-tournament/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[string]team.Team
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{teams: make(map[string]team.Team)}
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.teams[item.ID]; exists {
		return fmt.Errorf("%w: team=%s", ErrDuplicate, item.ID)
	}
	r.teams[item.ID] = item
	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	return item, ok, nil
}

// GetByIDs keeps the order of teamIDs and skips unknown ids.
func (r *TeamRepository) GetByIDs(_ context.Context, teamIDs []string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(teamIDs))
	for _, id := range teamIDs {
		if item, ok := r.teams[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.teams[item.ID]; !exists {
		return fmt.Errorf("%w: team=%s", ErrMissing, item.ID)
	}
	r.teams[item.ID] = item
	return nil
}
