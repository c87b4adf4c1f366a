package scorer

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/cup-tournament/internal/domain/match"
)

// Scorer is one goal tally row attached to a group or knockout match.
type Scorer struct {
	ID         string
	Match      match.Ref
	TeamID     string
	PlayerName string
	Goals      int
}

func (s Scorer) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scorer id is required")
	}
	if err := s.Match.Validate(); err != nil {
		return err
	}
	if s.TeamID == "" {
		return fmt.Errorf("scorer team id is required")
	}
	if strings.TrimSpace(s.PlayerName) == "" {
		return fmt.Errorf("scorer player name is required")
	}
	if s.Goals < 1 {
		return fmt.Errorf("scorer goals must be >= 1, got %d", s.Goals)
	}
	return nil
}
