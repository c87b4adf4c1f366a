package stats

import (
	"sort"
	"strings"

	"github.com/riskibarqy/cup-tournament/internal/domain/match"
)

// ScorerRow is a stored scorer row joined with its team name.
type ScorerRow struct {
	Stage      match.Stage
	PlayerName string
	TeamID     string
	TeamName   string
	Goals      int
}

type TopScorer struct {
	PlayerName string
	TeamID     string
	TeamName   string
	Goals      int
}

// TieBreak orders top scorers level on goals and name. Negative puts a first. The
// criterion is not settled, so none is applied unless one is passed.
type TieBreak func(a, b TopScorer) int

// TopScorers sums goals per (player name, team name) across both stages. Two rows with
// the same name and team are the same scorer; the same name on two teams is not.
func TopScorers(rows []ScorerRow, tieBreak TieBreak) []TopScorer {
	type key struct {
		player string
		team   string
	}

	index := make(map[key]int, len(rows))
	out := make([]TopScorer, 0, len(rows))
	for _, r := range rows {
		if r.Goals <= 0 {
			continue
		}
		k := key{player: r.PlayerName, team: r.TeamName}
		if i, ok := index[k]; ok {
			out[i].Goals += r.Goals
			continue
		}
		index[k] = len(out)
		out = append(out, TopScorer{
			PlayerName: r.PlayerName,
			TeamID:     r.TeamID,
			TeamName:   r.TeamName,
			Goals:      r.Goals,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Goals != b.Goals {
			return a.Goals > b.Goals
		}
		if c := strings.Compare(a.PlayerName, b.PlayerName); c != 0 {
			return c < 0
		}
		if tieBreak != nil {
			if c := tieBreak(a, b); c != 0 {
				return c < 0
			}
		}
		return a.TeamName < b.TeamName
	})

	return out
}
