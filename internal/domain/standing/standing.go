package standing

import (
	"sort"
	"strings"

	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	"github.com/riskibarqy/cup-tournament/internal/domain/team"
)

const (
	pointsWin  = 3
	pointsDraw = 1

	QualifiedPerGroup = 2
)

// TeamStats is one row of a group table.
type TeamStats struct {
	TeamID         string
	TeamName       string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Cards          int
	Position       int
}

// TieBreaker orders two rows. It returns a negative value when a ranks above b, a
// positive value when b ranks above a and zero when it cannot separate them. played
// holds the group's played matches.
type TieBreaker func(a, b TeamStats, played []match.Match) int

type options struct {
	headToHead TieBreaker
}

type Option func(*options)

// WithHeadToHead fills the head-to-head step of the chain. Without it the step never
// separates teams.
func WithHeadToHead(tb TieBreaker) Option {
	return func(o *options) {
		o.headToHead = tb
	}
}

// Chain returns the ordered tie-break steps used by Compute.
func Chain(opts ...Option) []TieBreaker {
	cfg := options{headToHead: noHeadToHead}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.headToHead == nil {
		cfg.headToHead = noHeadToHead
	}

	return []TieBreaker{
		byPoints,
		cfg.headToHead,
		byGoalDifference,
		byGoalsFor,
		byGoalsAgainst,
		byCards,
		byName,
	}
}

// Compute builds the table for one group. Unplayed matches and matches involving
// teams outside the group are ignored. The result is deterministic for the same input.
func Compute(teams []team.Team, matches []match.Match, opts ...Option) []TeamStats {
	rows := make([]TeamStats, len(teams))
	index := make(map[string]int, len(teams))
	for i, t := range teams {
		rows[i] = TeamStats{TeamID: t.ID, TeamName: t.Name}
		index[t.ID] = i
	}

	played := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if !m.IsPlayed() {
			continue
		}
		hi, okHome := index[m.HomeTeamID]
		ai, okAway := index[m.AwayTeamID]
		if !okHome || !okAway {
			continue
		}
		played = append(played, m)
		applyResult(&rows[hi], *m.HomeScore, *m.AwayScore)
		applyResult(&rows[ai], *m.AwayScore, *m.HomeScore)
	}

	for i := range rows {
		rows[i].GoalDifference = rows[i].GoalsFor - rows[i].GoalsAgainst
	}

	return Rank(rows, played, opts...)
}

// Rank orders already aggregated rows through the tie-break chain and fills Position.
func Rank(rows []TeamStats, played []match.Match, opts ...Option) []TeamStats {
	chain := Chain(opts...)
	sort.SliceStable(rows, func(i, j int) bool {
		for _, tb := range chain {
			if c := tb(rows[i], rows[j], played); c != 0 {
				return c < 0
			}
		}
		return false
	})

	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}

// Qualified returns the first QualifiedPerGroup rows.
func Qualified(rows []TeamStats) []TeamStats {
	if len(rows) <= QualifiedPerGroup {
		return rows
	}
	return rows[:QualifiedPerGroup]
}

func applyResult(row *TeamStats, scored, conceded int) {
	row.Played++
	row.GoalsFor += scored
	row.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		row.Won++
		row.Points += pointsWin
	case scored == conceded:
		row.Drawn++
		row.Points += pointsDraw
	default:
		row.Lost++
	}
}

func byPoints(a, b TeamStats, _ []match.Match) int {
	return b.Points - a.Points
}

func noHeadToHead(_, _ TeamStats, _ []match.Match) int {
	return 0
}

func byGoalDifference(a, b TeamStats, _ []match.Match) int {
	return b.GoalDifference - a.GoalDifference
}

func byGoalsFor(a, b TeamStats, _ []match.Match) int {
	return b.GoalsFor - a.GoalsFor
}

func byGoalsAgainst(a, b TeamStats, _ []match.Match) int {
	return a.GoalsAgainst - b.GoalsAgainst
}

// byCards is reserved; Cards is always zero for now.
func byCards(a, b TeamStats, _ []match.Match) int {
	return a.Cards - b.Cards
}

func byName(a, b TeamStats, _ []match.Match) int {
	if c := strings.Compare(a.TeamName, b.TeamName); c != 0 {
		return c
	}
	return strings.Compare(a.TeamID, b.TeamID)
}
