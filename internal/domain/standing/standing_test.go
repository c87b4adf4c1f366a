package standing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	"github.com/riskibarqy/cup-tournament/internal/domain/team"
)

func played(home, away string, hs, as int) match.Match {
	return match.Match{HomeTeamID: home, AwayTeamID: away, HomeScore: &hs, AwayScore: &as}
}

func groupTeams() []team.Team {
	return []team.Team{
		{ID: "a", Name: "Aquile"},
		{ID: "b", Name: "Bisonti"},
		{ID: "c", Name: "Cobra"},
		{ID: "d", Name: "Delfini"},
	}
}

func order(rows []TeamStats) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.TeamID)
	}
	return out
}

func TestCompute_Aggregates(t *testing.T) {
	t.Parallel()

	rows := Compute(groupTeams(), []match.Match{
		played("a", "b", 2, 1),
		played("a", "c", 1, 1),
		played("d", "a", 3, 0),
	})

	var a TeamStats
	for _, r := range rows {
		if r.TeamID == "a" {
			a = r
		}
	}
	require.Equal(t, TeamStats{
		TeamID: "a", TeamName: "Aquile",
		Played: 3, Won: 1, Drawn: 1, Lost: 1,
		GoalsFor: 3, GoalsAgainst: 5, GoalDifference: -2,
		Points: 4, Position: a.Position,
	}, a)
}

func TestCompute_UnbeatenTeamFirstRegardlessOfGoalDifference(t *testing.T) {
	t.Parallel()

	// d wins every game by one goal; b piles up goals against the rest.
	matches := []match.Match{
		played("d", "a", 1, 0),
		played("d", "b", 1, 0),
		played("d", "c", 1, 0),
		played("b", "a", 9, 0),
		played("b", "c", 9, 0),
		played("a", "c", 0, 0),
	}

	rows := Compute(groupTeams(), matches)
	require.Equal(t, "d", rows[0].TeamID)
	require.Equal(t, 9, rows[0].Points)
	require.Equal(t, 3, rows[0].GoalDifference)
	require.Equal(t, "b", rows[1].TeamID)
	require.Equal(t, 17, rows[1].GoalDifference)
}

func TestCompute_GoalDifferenceThenGoalsFor(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		played("a", "c", 1, 0), // a: 3 pts, GD +1, GF 1
		played("b", "d", 3, 2), // b: 3 pts, GD +1, GF 3
		played("c", "d", 4, 0), // c: 3 pts, GD +3
	}
	rows := Compute(groupTeams(), matches)
	require.Equal(t, []string{"c", "b", "a", "d"}, order(rows))
}

func TestRank_FewerGoalsConcededRanksHigher(t *testing.T) {
	t.Parallel()

	// Level on points, goal difference and goals for; only goals against differs. Names
	// would put b first, so the order proves the goals against step ran.
	rows := []TeamStats{
		{TeamID: "b", TeamName: "Alfa", Points: 4, GoalDifference: 1, GoalsFor: 3, GoalsAgainst: 3},
		{TeamID: "a", TeamName: "Zeta", Points: 4, GoalDifference: 1, GoalsFor: 3, GoalsAgainst: 2},
	}
	ranked := Rank(rows, nil)
	require.Equal(t, []string{"a", "b"}, order(ranked))
	require.Equal(t, 1, ranked[0].Position)
}

func TestRank_CardsBeforeName(t *testing.T) {
	t.Parallel()

	rows := []TeamStats{
		{TeamID: "x", TeamName: "Alfa", Cards: 2},
		{TeamID: "y", TeamName: "Zeta", Cards: 1},
	}
	require.Equal(t, []string{"y", "x"}, order(Rank(rows, nil)))
}

func TestCompute_NameIsFinalFallback(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		played("d", "c", 1, 1),
		played("b", "a", 1, 1),
	}
	rows := Compute(groupTeams(), matches)
	require.Equal(t, []string{"a", "b", "c", "d"}, order(rows))
}

func TestCompute_IgnoresUnplayedAndForeignMatches(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{HomeTeamID: "a", AwayTeamID: "b"},
		played("a", "zz", 5, 0),
		played("c", "d", 1, 2),
	}
	rows := Compute(groupTeams(), matches)
	require.Equal(t, "d", rows[0].TeamID)
	for _, r := range rows {
		if r.TeamID == "a" {
			require.Zero(t, r.Played)
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		played("a", "b", 1, 1),
		played("c", "d", 2, 2),
		played("a", "c", 0, 0),
		played("b", "d", 3, 3),
	}
	first := Compute(groupTeams(), matches)
	require.Equal(t, []string{"d", "b", "c", "a"}, order(first))
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Compute(groupTeams(), matches))
	}
}

func TestWithHeadToHead(t *testing.T) {
	t.Parallel()

	// a and b level on everything; the head-to-head step prefers b.
	matches := []match.Match{
		played("a", "c", 1, 0),
		played("b", "d", 1, 0),
	}
	preferB := func(x, y TeamStats, _ []match.Match) int {
		switch {
		case x.TeamID == "b" && y.TeamID == "a":
			return -1
		case x.TeamID == "a" && y.TeamID == "b":
			return 1
		}
		return 0
	}

	require.Equal(t, "a", Compute(groupTeams(), matches)[0].TeamID)
	require.Equal(t, "b", Compute(groupTeams(), matches, WithHeadToHead(preferB))[0].TeamID)
}

func TestQualified(t *testing.T) {
	t.Parallel()

	rows := Compute(groupTeams(), nil)
	q := Qualified(rows)
	require.Len(t, q, 2)
	require.Equal(t, rows[:2], q)
	require.Len(t, Qualified(rows[:1]), 1)
}
