package knockout

import (
	"fmt"
	"time"
)

type PhaseType string

const (
	PhaseQuarterfinals PhaseType = "quarterfinals"
	PhaseSemifinals    PhaseType = "semifinals"
	PhaseThirdPlace    PhaseType = "third_place"
	PhaseFinal         PhaseType = "final"
)

// PhaseOrder is the creation order of the four phases.
var PhaseOrder = [...]PhaseType{
	PhaseQuarterfinals,
	PhaseSemifinals,
	PhaseThirdPlace,
	PhaseFinal,
}

// MatchCount is the number of matches a phase holds.
func (p PhaseType) MatchCount() int {
	switch p {
	case PhaseQuarterfinals:
		return 4
	case PhaseSemifinals:
		return 2
	case PhaseThirdPlace, PhaseFinal:
		return 1
	default:
		return 0
	}
}

func (p PhaseType) Valid() bool {
	return p.MatchCount() > 0
}

type Phase struct {
	ID           string
	TournamentID string
	Type         PhaseType
	CreatedAt    time.Time
}

// Side is a team slot within a knockout match.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

func (s Side) Valid() bool {
	return s == SideHome || s == SideAway
}

// Match is one bracket fixture. Team slots stay nil until filled by seeding or
// advancement.
type Match struct {
	ID            string
	PhaseID       string
	Order         int
	HomeTeamID    *string
	AwayTeamID    *string
	HomeScore     *int
	AwayScore     *int
	HomePenalties *int
	AwayPenalties *int
	WinnerID      *string
	PlayedAt      *time.Time
	UpdatedAt     time.Time
}

func (m Match) TeamsAssigned() bool {
	return m.HomeTeamID != nil && m.AwayTeamID != nil
}

func (m Match) IsPlayed() bool {
	return m.WinnerID != nil
}

func (m Match) Team(side Side) *string {
	if side == SideHome {
		return m.HomeTeamID
	}
	return m.AwayTeamID
}

// Result is the input for a knockout score submission.
type Result struct {
	HomeScore     int
	AwayScore     int
	HomePenalties *int
	AwayPenalties *int
	PlayedAt      time.Time
}

// Drawn reports a level regular-time score.
func (r Result) Drawn() bool {
	return r.HomeScore == r.AwayScore
}

func (r Result) Validate() error {
	if r.HomeScore < 0 || r.AwayScore < 0 {
		return fmt.Errorf("scores must be non-negative, got %d-%d", r.HomeScore, r.AwayScore)
	}
	if (r.HomePenalties == nil) != (r.AwayPenalties == nil) {
		return ErrInvalidPenalties
	}
	if r.HomePenalties != nil && *r.HomePenalties < 0 {
		return fmt.Errorf("home penalties must be non-negative, got %d", *r.HomePenalties)
	}
	if r.AwayPenalties != nil && *r.AwayPenalties < 0 {
		return fmt.Errorf("away penalties must be non-negative, got %d", *r.AwayPenalties)
	}
	return nil
}
