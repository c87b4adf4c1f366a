package knockout

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func fullBracket(t *testing.T) ([]Phase, []Match) {
	t.Helper()

	phases := make([]Phase, 0, len(PhaseOrder))
	matches := make([]Match, 0, 8)
	for _, pt := range PhaseOrder {
		p := Phase{ID: "p-" + string(pt), TournamentID: "t1", Type: pt}
		phases = append(phases, p)
		for order := 1; order <= pt.MatchCount(); order++ {
			matches = append(matches, Match{
				ID:      fmt.Sprintf("%s-%d", pt, order),
				PhaseID: p.ID,
				Order:   order,
			})
		}
	}
	return phases, matches
}

func TestStandardTopology_Valid(t *testing.T) {
	t.Parallel()

	require.NoError(t, StandardTopology().Validate())
}

func TestTopologyValidate_RejectsDoubleFeed(t *testing.T) {
	t.Parallel()

	top := StandardTopology()
	top[Slot{Phase: PhaseQuarterfinals, Order: 2}] = []Edge{
		{Carry: CarryWinner, To: Slot{Phase: PhaseSemifinals, Order: 1}, Side: SideHome},
	}
	require.Error(t, top.Validate())
}

func TestBracketAdvance_QuarterfinalsFeedSemifinals(t *testing.T) {
	t.Parallel()

	phases, matches := fullBracket(t)
	b, err := NewBracket(StandardTopology(), phases, matches)
	require.NoError(t, err)

	cases := []struct {
		from string
		want Assignment
	}{
		{from: "quarterfinals-1", want: Assignment{MatchID: "semifinals-1", Side: SideHome, TeamID: "w"}},
		{from: "quarterfinals-2", want: Assignment{MatchID: "semifinals-1", Side: SideAway, TeamID: "w"}},
		{from: "quarterfinals-3", want: Assignment{MatchID: "semifinals-2", Side: SideHome, TeamID: "w"}},
		{from: "quarterfinals-4", want: Assignment{MatchID: "semifinals-2", Side: SideAway, TeamID: "w"}},
	}
	for _, tc := range cases {
		got, err := b.Advance(tc.from, Outcome{WinnerID: "w", LoserID: "l"})
		require.NoError(t, err)
		require.Equal(t, []Assignment{tc.want}, got, tc.from)
	}
}

func TestBracketAdvance_SemifinalsFeedFinalAndThirdPlace(t *testing.T) {
	t.Parallel()

	phases, matches := fullBracket(t)
	b, err := NewBracket(StandardTopology(), phases, matches)
	require.NoError(t, err)

	got, err := b.Advance("semifinals-2", Outcome{WinnerID: "w", LoserID: "l"})
	require.NoError(t, err)
	require.Equal(t, []Assignment{
		{MatchID: "final-1", Side: SideAway, TeamID: "w"},
		{MatchID: "third_place-1", Side: SideAway, TeamID: "l"},
	}, got)

	got, err = b.Advance("semifinals-1", Outcome{WinnerID: "w", LoserID: "l"})
	require.NoError(t, err)
	require.Equal(t, SideHome, got[0].Side)
	require.Equal(t, SideHome, got[1].Side)
}

func TestBracketAdvance_TerminalPhases(t *testing.T) {
	t.Parallel()

	phases, matches := fullBracket(t)
	b, err := NewBracket(StandardTopology(), phases, matches)
	require.NoError(t, err)

	for _, id := range []string{"final-1", "third_place-1"} {
		got, err := b.Advance(id, Outcome{WinnerID: "w", LoserID: "l"})
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

func TestTopologyTerminal(t *testing.T) {
	t.Parallel()

	topo := StandardTopology()
	require.True(t, topo.Terminal(Slot{Phase: PhaseFinal, Order: 1}))
	require.True(t, topo.Terminal(Slot{Phase: PhaseThirdPlace, Order: 1}))
	require.False(t, topo.Terminal(Slot{Phase: PhaseQuarterfinals, Order: 4}))
	require.False(t, topo.Terminal(Slot{Phase: PhaseSemifinals, Order: 2}))
}

func TestBracketAdvance_MissingDestination(t *testing.T) {
	t.Parallel()

	phases, matches := fullBracket(t)
	// Drop the third place match; the semifinal loser has nowhere to go.
	kept := matches[:0]
	for _, m := range matches {
		if m.ID != "third_place-1" {
			kept = append(kept, m)
		}
	}

	b, err := NewBracket(StandardTopology(), phases, kept)
	require.NoError(t, err)

	got, err := b.Advance("semifinals-1", Outcome{WinnerID: "w", LoserID: "l"})
	if !errors.Is(err, ErrMissingDestination) {
		t.Fatalf("expected ErrMissingDestination, got %v", err)
	}
	require.Nil(t, got)
}

func TestBracketAdvance_UnknownMatch(t *testing.T) {
	t.Parallel()

	phases, matches := fullBracket(t)
	b, err := NewBracket(StandardTopology(), phases, matches)
	require.NoError(t, err)

	_, err = b.Advance("nope", Outcome{WinnerID: "w", LoserID: "l"})
	require.ErrorIs(t, err, ErrUnknownMatch)
}

func TestNewBracket_DuplicatePhase(t *testing.T) {
	t.Parallel()

	phases, matches := fullBracket(t)
	phases = append(phases, Phase{ID: "dup", TournamentID: "t1", Type: PhaseSemifinals})

	_, err := NewBracket(StandardTopology(), phases, matches)
	require.ErrorIs(t, err, ErrDuplicatePhase)
}

func TestQuarterfinalPairings(t *testing.T) {
	t.Parallel()

	qualifiers := []Qualifier{
		{GroupLabel: "D", WinnerID: "1D", RunnerUpID: "2D"},
		{GroupLabel: "A", WinnerID: "1A", RunnerUpID: "2A"},
		{GroupLabel: "C", WinnerID: "1C", RunnerUpID: "2C"},
		{GroupLabel: "B", WinnerID: "1B", RunnerUpID: "2B"},
	}

	got := QuarterfinalPairings(qualifiers)
	require.Equal(t, []Pairing{
		{Order: 1, HomeTeamID: "1A", AwayTeamID: "2B"},
		{Order: 2, HomeTeamID: "1B", AwayTeamID: "2A"},
		{Order: 3, HomeTeamID: "1C", AwayTeamID: "2D"},
		{Order: 4, HomeTeamID: "1D", AwayTeamID: "2C"},
	}, got)
}

func TestQuarterfinalPairings_PartialQualification(t *testing.T) {
	t.Parallel()

	got := QuarterfinalPairings([]Qualifier{
		{GroupLabel: "A", WinnerID: "1A", RunnerUpID: "2A"},
		{GroupLabel: "B", WinnerID: "1B"},
	})
	require.Equal(t, []Pairing{{Order: 2, HomeTeamID: "1B", AwayTeamID: "2A"}}, got)
}
