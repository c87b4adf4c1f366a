package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/cup-tournament/internal/domain/roster"
)

type RosterRepository struct {
	mu      sync.RWMutex
	players map[string]roster.Player
	entries []roster.Entry
}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{players: make(map[string]roster.Player)}
}

func (r *RosterRepository) CreatePlayer(_ context.Context, player roster.Player) error {
	if err := player.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[player.ID]; exists {
		return fmt.Errorf("%w: player=%s", ErrDuplicate, player.ID)
	}
	r.players[player.ID] = player
	return nil
}

func (r *RosterRepository) GetPlayer(_ context.Context, playerID string) (roster.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.players[playerID]
	return item, ok, nil
}

// AddEntry allows a player on one team only.
func (r *RosterRepository) AddEntry(_ context.Context, entry roster.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[entry.PlayerID]; !ok {
		return fmt.Errorf("%w: player=%s", ErrMissing, entry.PlayerID)
	}
	for _, existing := range r.entries {
		if existing.ID == entry.ID || existing.PlayerID == entry.PlayerID {
			return fmt.Errorf("%w: roster entry player=%s", ErrDuplicate, entry.PlayerID)
		}
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *RosterRepository) ListByTeam(_ context.Context, teamID string) ([]roster.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Member, 0, roster.DefaultMaxPlayers)
	for _, entry := range r.entries {
		if entry.TeamID == teamID {
			out = append(out, roster.Member{Entry: entry, Player: r.players[entry.PlayerID]})
		}
	}
	return out, nil
}

func (r *RosterRepository) FindEntryByPlayer(_ context.Context, playerID string) (roster.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if entry.PlayerID == playerID {
			return entry, true, nil
		}
	}
	return roster.Entry{}, false, nil
}

func (r *RosterRepository) SetCaptain(_ context.Context, teamID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	target := -1
	for i, entry := range r.entries {
		if entry.TeamID == teamID && entry.PlayerID == playerID {
			target = i
			break
		}
	}
	if target < 0 {
		return fmt.Errorf("%w: roster entry team=%s player=%s", ErrMissing, teamID, playerID)
	}

	for i := range r.entries {
		if r.entries[i].TeamID == teamID {
			r.entries[i].IsCaptain = i == target
		}
	}
	return nil
}
