package stats

import (
	"sort"

	"github.com/riskibarqy/cup-tournament/internal/domain/goalkeeper"
	"github.com/riskibarqy/cup-tournament/internal/domain/match"
)

type GoalkeeperRanking struct {
	GoalkeeperID         string
	Name                 string
	TeamID               string
	MatchesPlayed        int
	GoalsConceded        int
	CleanSheets          int
	AverageConceded      float64
	ReachedQuarterfinals bool
}

// RankGoalkeepers merges group and knockout stat rows per goalkeeper. A keeper
// reached the quarterfinals iff at least one row is from the knockout stage. Keepers
// without rows are not ranked.
//
// Order: reached quarterfinals first, then clean sheets desc, then average conceded
// asc, then name and id for a stable result.
func RankGoalkeepers(keepers []goalkeeper.Goalkeeper, rows []goalkeeper.Stat) []GoalkeeperRanking {
	byID := make(map[string]goalkeeper.Goalkeeper, len(keepers))
	for _, k := range keepers {
		byID[k.ID] = k
	}

	index := make(map[string]int)
	out := make([]GoalkeeperRanking, 0, len(keepers))
	for _, r := range rows {
		i, ok := index[r.GoalkeeperID]
		if !ok {
			k, known := byID[r.GoalkeeperID]
			if !known {
				continue
			}
			i = len(out)
			index[r.GoalkeeperID] = i
			out = append(out, GoalkeeperRanking{GoalkeeperID: k.ID, Name: k.Name, TeamID: k.TeamID})
		}

		g := &out[i]
		g.MatchesPlayed++
		g.GoalsConceded += r.GoalsConceded
		if r.CleanSheet {
			g.CleanSheets++
		}
		if r.Match.Stage == match.StageKnockout {
			g.ReachedQuarterfinals = true
		}
	}

	for i := range out {
		if out[i].MatchesPlayed > 0 {
			out[i].AverageConceded = float64(out[i].GoalsConceded) / float64(out[i].MatchesPlayed)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ReachedQuarterfinals != b.ReachedQuarterfinals {
			return a.ReachedQuarterfinals
		}
		if a.CleanSheets != b.CleanSheets {
			return a.CleanSheets > b.CleanSheets
		}
		if a.AverageConceded != b.AverageConceded {
			return a.AverageConceded < b.AverageConceded
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.GoalkeeperID < b.GoalkeeperID
	})

	return out
}
