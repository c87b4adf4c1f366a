package knockout

import "fmt"

// Slot addresses a match by phase and 1-based order.
type Slot struct {
	Phase PhaseType
	Order int
}

func (s Slot) String() string {
	return fmt.Sprintf("%s#%d", s.Phase, s.Order)
}

// Carry says which finisher of a match moves on.
type Carry string

const (
	CarryWinner Carry = "winner"
	CarryLoser  Carry = "loser"
)

// Edge moves one finisher of a source match into a side of a destination match.
type Edge struct {
	Carry Carry
	To    Slot
	Side  Side
}

// Topology is the advancement graph. A slot with no edges ends the bracket.
type Topology map[Slot][]Edge

// StandardTopology is the eight team bracket: QF1/QF2 feed SF1, QF3/QF4 feed SF2, the
// SF winners meet in the final and the SF losers play for third place.
func StandardTopology() Topology {
	qf := func(order int) Slot { return Slot{Phase: PhaseQuarterfinals, Order: order} }
	sf := func(order int) Slot { return Slot{Phase: PhaseSemifinals, Order: order} }
	final := Slot{Phase: PhaseFinal, Order: 1}
	third := Slot{Phase: PhaseThirdPlace, Order: 1}

	return Topology{
		qf(1): {{Carry: CarryWinner, To: sf(1), Side: SideHome}},
		qf(2): {{Carry: CarryWinner, To: sf(1), Side: SideAway}},
		qf(3): {{Carry: CarryWinner, To: sf(2), Side: SideHome}},
		qf(4): {{Carry: CarryWinner, To: sf(2), Side: SideAway}},
		sf(1): {
			{Carry: CarryWinner, To: final, Side: SideHome},
			{Carry: CarryLoser, To: third, Side: SideHome},
		},
		sf(2): {
			{Carry: CarryWinner, To: final, Side: SideAway},
			{Carry: CarryLoser, To: third, Side: SideAway},
		},
	}
}

// Terminal reports whether nothing advances out of slot.
func (t Topology) Terminal(slot Slot) bool {
	return len(t[slot]) == 0
}

// Validate checks that every edge lands on a slot that exists for its phase and that
// no destination side is fed twice.
func (t Topology) Validate() error {
	fed := make(map[Slot]map[Side]Slot)
	for from, edges := range t {
		if !from.Phase.Valid() || from.Order < 1 || from.Order > from.Phase.MatchCount() {
			return fmt.Errorf("invalid source slot %s", from)
		}
		for _, e := range edges {
			if !e.To.Phase.Valid() || e.To.Order < 1 || e.To.Order > e.To.Phase.MatchCount() {
				return fmt.Errorf("edge from %s targets invalid slot %s", from, e.To)
			}
			if !e.Side.Valid() {
				return fmt.Errorf("edge from %s has invalid side %q", from, e.Side)
			}
			if e.Carry != CarryWinner && e.Carry != CarryLoser {
				return fmt.Errorf("edge from %s has invalid carry %q", from, e.Carry)
			}
			sides := fed[e.To]
			if sides == nil {
				sides = make(map[Side]Slot)
				fed[e.To] = sides
			}
			if prev, ok := sides[e.Side]; ok {
				return fmt.Errorf("%s %s side fed by both %s and %s", e.To, e.Side, prev, from)
			}
			sides[e.Side] = from
		}
	}
	return nil
}
