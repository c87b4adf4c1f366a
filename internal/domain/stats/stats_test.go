package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cup-tournament/internal/domain/goalkeeper"
	"github.com/riskibarqy/cup-tournament/internal/domain/match"
)

func TestTopScorers(t *testing.T) {
	t.Parallel()

	rows := []ScorerRow{
		{Stage: match.StageGroup, PlayerName: "Rossi", TeamID: "t1", TeamName: "Aquile", Goals: 2},
		{Stage: match.StageKnockout, PlayerName: "Rossi", TeamID: "t1", TeamName: "Aquile", Goals: 1},
		{Stage: match.StageGroup, PlayerName: "Rossi", TeamID: "t2", TeamName: "Bisonti", Goals: 1},
		{Stage: match.StageGroup, PlayerName: "Bianchi", TeamID: "t2", TeamName: "Bisonti", Goals: 3},
		{Stage: match.StageGroup, PlayerName: "Verdi", TeamID: "t3", TeamName: "Cobra", Goals: 1},
	}

	got := TopScorers(rows, nil)
	require.Equal(t, []TopScorer{
		{PlayerName: "Bianchi", TeamID: "t2", TeamName: "Bisonti", Goals: 3},
		{PlayerName: "Rossi", TeamID: "t1", TeamName: "Aquile", Goals: 3},
		{PlayerName: "Rossi", TeamID: "t2", TeamName: "Bisonti", Goals: 1},
		{PlayerName: "Verdi", TeamID: "t3", TeamName: "Cobra", Goals: 1},
	}, got)
}

func TestTopScorers_TieBreakHook(t *testing.T) {
	t.Parallel()

	rows := []ScorerRow{
		{PlayerName: "Rossi", TeamID: "t1", TeamName: "Aquile", Goals: 2},
		{PlayerName: "Rossi", TeamID: "t2", TeamName: "Bisonti", Goals: 2},
	}

	require.Equal(t, "Aquile", TopScorers(rows, nil)[0].TeamName)

	preferBisonti := func(a, b TopScorer) int {
		if a.TeamName == "Bisonti" {
			return -1
		}
		if b.TeamName == "Bisonti" {
			return 1
		}
		return 0
	}
	require.Equal(t, "Bisonti", TopScorers(rows, preferBisonti)[0].TeamName)
}

func stat(id, keeperID string, ref match.Ref, conceded int) goalkeeper.Stat {
	return goalkeeper.NewStat(id, keeperID, ref, conceded)
}

func TestRankGoalkeepers(t *testing.T) {
	t.Parallel()

	keepers := []goalkeeper.Goalkeeper{
		{ID: "k1", Name: "P1_Aquile", TeamID: "t1"},
		{ID: "k2", Name: "P1_Bisonti", TeamID: "t2"},
		{ID: "k3", Name: "P1_Cobra", TeamID: "t3"},
		{ID: "k4", Name: "P1_Delfini", TeamID: "t4"},
		{ID: "k5", Name: "P1_Unused", TeamID: "t5"},
	}
	rows := []goalkeeper.Stat{
		// k1: three clean sheets, group only.
		stat("s1", "k1", match.GroupRef("m1"), 0),
		stat("s2", "k1", match.GroupRef("m2"), 0),
		stat("s3", "k1", match.GroupRef("m3"), 0),
		// k2: one clean sheet but reached the knockout stage.
		stat("s4", "k2", match.GroupRef("m4"), 0),
		stat("s5", "k2", match.KnockoutRef("q1"), 3),
		// k3 and k4: one clean sheet each, k4 concedes less on average.
		stat("s6", "k3", match.GroupRef("m5"), 0),
		stat("s7", "k3", match.GroupRef("m6"), 4),
		stat("s8", "k4", match.GroupRef("m7"), 0),
		stat("s9", "k4", match.GroupRef("m8"), 1),
		// unknown keeper rows are skipped
		stat("s10", "ghost", match.GroupRef("m9"), 0),
	}

	got := RankGoalkeepers(keepers, rows)
	ids := make([]string, 0, len(got))
	for _, g := range got {
		ids = append(ids, g.GoalkeeperID)
	}
	require.Equal(t, []string{"k2", "k1", "k4", "k3"}, ids)

	require.True(t, got[0].ReachedQuarterfinals)
	require.Equal(t, 2, got[0].MatchesPlayed)
	require.InDelta(t, 1.5, got[0].AverageConceded, 1e-9)
	require.Equal(t, 3, got[1].CleanSheets)
	require.Zero(t, got[1].AverageConceded)
}
