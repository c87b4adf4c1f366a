package match

import (
	"errors"
	"fmt"
	"time"
)

var ErrNegativeScore = errors.New("score must be a non-negative integer")

// Stage tells which kind of fixture a Ref points at.
type Stage string

const (
	StageGroup    Stage = "group"
	StageKnockout Stage = "knockout"
)

// Ref identifies either a group match or a knockout match, never both.
type Ref struct {
	Stage Stage
	ID    string
}

func GroupRef(matchID string) Ref {
	return Ref{Stage: StageGroup, ID: matchID}
}

func KnockoutRef(matchID string) Ref {
	return Ref{Stage: StageKnockout, ID: matchID}
}

func (r Ref) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("match ref id is required")
	}
	switch r.Stage {
	case StageGroup, StageKnockout:
		return nil
	default:
		return fmt.Errorf("unknown match stage %q", r.Stage)
	}
}

func (r Ref) String() string {
	return string(r.Stage) + ":" + r.ID
}

// Match is a group-stage fixture. Scores are nil until played.
type Match struct {
	ID         string
	GroupID    string
	HomeTeamID string
	AwayTeamID string
	MatchDay   int
	HomeScore  *int
	AwayScore  *int
	PlayedAt   *time.Time
	UpdatedAt  time.Time
}

func (m Match) IsPlayed() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// SetResult overwrites any previous result.
func (m *Match) SetResult(homeScore, awayScore int, playedAt time.Time) error {
	if err := ValidateScore(homeScore, awayScore); err != nil {
		return err
	}
	home, away, at := homeScore, awayScore, playedAt
	m.HomeScore = &home
	m.AwayScore = &away
	m.PlayedAt = &at
	m.UpdatedAt = playedAt
	return nil
}

func ValidateScore(homeScore, awayScore int) error {
	if homeScore < 0 {
		return fmt.Errorf("%w: home=%d", ErrNegativeScore, homeScore)
	}
	if awayScore < 0 {
		return fmt.Errorf("%w: away=%d", ErrNegativeScore, awayScore)
	}
	return nil
}

// RoundRobin pairs every team with every other team once. Match days run 1..n(n-1)/2
// in pairing order; IDs are left for the caller to assign.
func RoundRobin(groupID string, teamIDs []string) []Match {
	out := make([]Match, 0, len(teamIDs)*(len(teamIDs)-1)/2)
	matchDay := 1
	for i := 0; i < len(teamIDs); i++ {
		for j := i + 1; j < len(teamIDs); j++ {
			out = append(out, Match{
				GroupID:    groupID,
				HomeTeamID: teamIDs[i],
				AwayTeamID: teamIDs[j],
				MatchDay:   matchDay,
			})
			matchDay++
		}
	}
	return out
}
