package goalkeeper

import (
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/cup-tournament/internal/domain/match"
)

const namePrefix = "P1_"

// ErrExists is returned by Repository.Create when the team already has a goalkeeper
// with that name.
var ErrExists = errors.New("goalkeeper already exists")

// Goalkeeper is provisioned lazily the first time a team's result is saved.
type Goalkeeper struct {
	ID        string
	Name      string
	TeamID    string
	CreatedAt time.Time
}

// DefaultName is the name a team's goalkeeper gets at provisioning time. Later team
// renames do not touch existing goalkeepers.
func DefaultName(teamName string) string {
	return namePrefix + teamName
}

// Stat is the per-match line for one goalkeeper.
type Stat struct {
	ID            string
	GoalkeeperID  string
	Match         match.Ref
	GoalsConceded int
	CleanSheet    bool
}

func NewStat(id, goalkeeperID string, ref match.Ref, goalsConceded int) Stat {
	return Stat{
		ID:            id,
		GoalkeeperID:  goalkeeperID,
		Match:         ref,
		GoalsConceded: goalsConceded,
		CleanSheet:    goalsConceded == 0,
	}
}

func (s Stat) Validate() error {
	if s.ID == "" || s.GoalkeeperID == "" {
		return fmt.Errorf("goalkeeper stat id and goalkeeper id are required")
	}
	if s.GoalsConceded < 0 {
		return fmt.Errorf("goals conceded must be >= 0, got %d", s.GoalsConceded)
	}
	return s.Match.Validate()
}
