package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	"github.com/riskibarqy/cup-tournament/internal/domain/scorer"
)

// ScorerRepository keeps rows in insertion order.
type ScorerRepository struct {
	mu   sync.RWMutex
	rows []scorer.Scorer
}

func NewScorerRepository() *ScorerRepository {
	return &ScorerRepository{}
}

func (r *ScorerRepository) DeleteByMatch(_ context.Context, ref match.Ref) error {
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

func (r *ScorerRepository) InsertMany(_ context.Context, items []scorer.Scorer) error {
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

func (r *ScorerRepository) ListByMatch(_ context.Context, ref match.Ref) ([]scorer.Scorer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scorer.Scorer, 0)
	for _, row := range r.rows {
		if row.Match == ref {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *ScorerRepository) List(_ context.Context) ([]scorer.Scorer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scorer.Scorer, len(r.rows))
	copy(out, r.rows)
	return out, nil
}
