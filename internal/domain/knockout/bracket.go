package knockout

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicatePhase     = errors.New("tournament has more than one phase of the same type")
	ErrUnknownMatch       = errors.New("match is not part of the bracket")
	ErrMissingDestination = errors.New("advancement destination does not exist")
)

// Assignment writes one team into one side of a destination match.
type Assignment struct {
	MatchID string
	Side    Side
	TeamID  string
}

// Bracket resolves a tournament's stored phases and matches against a topology.
type Bracket struct {
	topology Topology
	bySlot   map[Slot]Match
	slotOf   map[string]Slot
}

func NewBracket(topology Topology, phases []Phase, matches []Match) (*Bracket, error) {
	phaseType := make(map[string]PhaseType, len(phases))
	seen := make(map[PhaseType]struct{}, len(phases))
	for _, p := range phases {
		if _, dup := seen[p.Type]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePhase, p.Type)
		}
		seen[p.Type] = struct{}{}
		phaseType[p.ID] = p.Type
	}

	b := &Bracket{
		topology: topology,
		bySlot:   make(map[Slot]Match, len(matches)),
		slotOf:   make(map[string]Slot, len(matches)),
	}
	for _, m := range matches {
		pt, ok := phaseType[m.PhaseID]
		if !ok {
			return nil, fmt.Errorf("match %s references unknown phase %s", m.ID, m.PhaseID)
		}
		slot := Slot{Phase: pt, Order: m.Order}
		if _, dup := b.bySlot[slot]; dup {
			return nil, fmt.Errorf("slot %s holds more than one match", slot)
		}
		b.bySlot[slot] = m
		b.slotOf[m.ID] = slot
	}

	return b, nil
}

func (b *Bracket) Match(slot Slot) (Match, bool) {
	m, ok := b.bySlot[slot]
	return m, ok
}

func (b *Bracket) SlotOf(matchID string) (Slot, bool) {
	slot, ok := b.slotOf[matchID]
	return slot, ok
}

// Advance lists the slot writes a decided match triggers. Every destination must
// exist, otherwise nothing is returned.
func (b *Bracket) Advance(matchID string, outcome Outcome) ([]Assignment, error) {
	from, ok := b.slotOf[matchID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMatch, matchID)
	}

	edges := b.topology[from]
	out := make([]Assignment, 0, len(edges))
	for _, e := range edges {
		dest, ok := b.bySlot[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: %s from %s", ErrMissingDestination, e.To, from)
		}
		teamID := outcome.WinnerID
		if e.Carry == CarryLoser {
			teamID = outcome.LoserID
		}
		out = append(out, Assignment{MatchID: dest.ID, Side: e.Side, TeamID: teamID})
	}

	return out, nil
}
