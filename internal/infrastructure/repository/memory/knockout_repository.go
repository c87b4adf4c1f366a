package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/cup-tournament/internal/domain/knockout"
)

type KnockoutRepository struct {
	mu         sync.RWMutex
	phases     []knockout.Phase
	matches    map[string]knockout.Match
	phaseIndex map[string]int
}

func NewKnockoutRepository() *KnockoutRepository {
	return &KnockoutRepository{
		matches:    make(map[string]knockout.Match),
		phaseIndex: make(map[string]int),
	}
}

// CreatePhase does not reject a second phase of the same type; duplicates are the
// caller's concern.
func (r *KnockoutRepository) CreatePhase(_ context.Context, phase knockout.Phase) error {
	if !phase.Type.Valid() {
		return fmt.Errorf("invalid phase type %q", phase.Type)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.phaseIndex[phase.ID]; exists {
		return fmt.Errorf("%w: phase=%s", ErrDuplicate, phase.ID)
	}
	r.phaseIndex[phase.ID] = len(r.phases)
	r.phases = append(r.phases, phase)
	return nil
}

func (r *KnockoutRepository) GetPhase(_ context.Context, phaseID string) (knockout.Phase, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.phaseIndex[phaseID]
	if !ok {
		return knockout.Phase{}, false, nil
	}
	return r.phases[idx], true, nil
}

func (r *KnockoutRepository) ListPhasesByTournament(_ context.Context, tournamentID string) ([]knockout.Phase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]knockout.Phase, 0, len(knockout.PhaseOrder))
	for _, p := range r.phases {
		if p.TournamentID == tournamentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *KnockoutRepository) CreateMatches(_ context.Context, items []knockout.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		if _, ok := r.phaseIndex[item.PhaseID]; !ok {
			return fmt.Errorf("%w: phase=%s", ErrMissing, item.PhaseID)
		}
		if _, exists := r.matches[item.ID]; exists {
			return fmt.Errorf("%w: knockout match=%s", ErrDuplicate, item.ID)
		}
	}
	for _, item := range items {
		r.matches[item.ID] = item
	}
	return nil
}

func (r *KnockoutRepository) GetMatch(_ context.Context, matchID string) (knockout.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[matchID]
	return item, ok, nil
}

func (r *KnockoutRepository) ListMatchesByPhase(_ context.Context, phaseID string) ([]knockout.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]knockout.Match, 0, 4)
	for _, item := range r.matches {
		if item.PhaseID == phaseID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out, nil
}

func (r *KnockoutRepository) SetTeams(_ context.Context, matchID, homeTeamID, awayTeamID string) error {
	return r.mutate(matchID, func(item *knockout.Match) {
		home, away := homeTeamID, awayTeamID
		item.HomeTeamID = &home
		item.AwayTeamID = &away
	})
}

func (r *KnockoutRepository) AssignSlot(_ context.Context, matchID string, side knockout.Side, teamID string) error {
	if !side.Valid() {
		return fmt.Errorf("invalid side %q", side)
	}
	return r.mutate(matchID, func(item *knockout.Match) {
		id := teamID
		if side == knockout.SideHome {
			item.HomeTeamID = &id
			return
		}
		item.AwayTeamID = &id
	})
}

func (r *KnockoutRepository) UpdateResult(_ context.Context, matchID string, res knockout.Result, winnerID *string, updatedAt time.Time) error {
	return r.mutate(matchID, func(item *knockout.Match) {
		home, away, at := res.HomeScore, res.AwayScore, res.PlayedAt
		item.HomeScore = &home
		item.AwayScore = &away
		item.HomePenalties = copyInt(res.HomePenalties)
		item.AwayPenalties = copyInt(res.AwayPenalties)
		if winnerID != nil {
			w := *winnerID
			item.WinnerID = &w
		}
		item.PlayedAt = &at
		item.UpdatedAt = updatedAt
	})
}

func (r *KnockoutRepository) mutate(matchID string, fn func(item *knockout.Match)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.matches[matchID]
	if !ok {
		return fmt.Errorf("%w: knockout match=%s", ErrMissing, matchID)
	}
	fn(&item)
	r.matches[matchID] = item
	return nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
