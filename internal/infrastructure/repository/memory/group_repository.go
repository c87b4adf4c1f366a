package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/cup-tournament/internal/domain/group"
)

type GroupRepository struct {
	mu      sync.RWMutex
	groups  map[string]group.Group
	members map[string][]string
}

func NewGroupRepository() *GroupRepository {
	return &GroupRepository{
		groups:  make(map[string]group.Group),
		members: make(map[string][]string),
	}
}

func (r *GroupRepository) Create(_ context.Context, item group.Group) error {
	if !group.IsValidLabel(item.Label) {
		return fmt.Errorf("invalid group label %q", item.Label)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.groups[item.ID]; exists {
		return fmt.Errorf("%w: group=%s", ErrDuplicate, item.ID)
	}
	r.groups[item.ID] = item
	return nil
}

func (r *GroupRepository) GetByID(_ context.Context, groupID string) (group.Group, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.groups[groupID]
	return item, ok, nil
}

func (r *GroupRepository) ListByTournament(_ context.Context, tournamentID string) ([]group.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]group.Group, 0, group.Count)
	for _, item := range r.groups {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Label < out[j].Label
	})
	return out, nil
}

func (r *GroupRepository) AddParticipations(_ context.Context, items []group.Participation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		if _, ok := r.groups[item.GroupID]; !ok {
			return fmt.Errorf("%w: group=%s", ErrMissing, item.GroupID)
		}
	}
	for _, item := range items {
		if containsString(r.members[item.GroupID], item.TeamID) {
			continue
		}
		r.members[item.GroupID] = append(r.members[item.GroupID], item.TeamID)
	}
	return nil
}

// ListTeamIDs returns team ids in the order they joined the group.
func (r *GroupRepository) ListTeamIDs(_ context.Context, groupID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.members[groupID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

func containsString(items []string, value string) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}
