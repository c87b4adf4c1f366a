package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/cup-tournament/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{matches: make(map[string]match.Match)}
}

func (r *MatchRepository) CreateMany(_ context.Context, items []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		if _, exists := r.matches[item.ID]; exists {
			return fmt.Errorf("%w: match=%s", ErrDuplicate, item.ID)
		}
	}
	for _, item := range items {
		r.matches[item.ID] = item
	}
	return nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[matchID]
	return item, ok, nil
}

func (r *MatchRepository) ListByGroup(_ context.Context, groupID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, 6)
	for _, item := range r.matches {
		if item.GroupID == groupID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchDay != out[j].MatchDay {
			return out[i].MatchDay < out[j].MatchDay
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) UpdateResult(_ context.Context, matchID string, homeScore, awayScore int, playedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.matches[matchID]
	if !ok {
		return fmt.Errorf("%w: match=%s", ErrMissing, matchID)
	}
	if err := item.SetResult(homeScore, awayScore, playedAt); err != nil {
		return err
	}
	r.matches[matchID] = item
	return nil
}
