package roster

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrRosterFull           = errors.New("team roster is full")
	ErrFIGCQuotaExceeded    = errors.New("team already has the maximum number of FIGC players")
	ErrFIGCCategoryRequired = errors.New("FIGC player needs a category")
)

const (
	DefaultMaxPlayers = 10
	DefaultMaxFIGC    = 3
)

type Player struct {
	ID           string
	Name         string
	BirthDate    *time.Time
	IsFIGC       bool
	FIGCCategory string
	CreatedAt    time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.IsFIGC && strings.TrimSpace(p.FIGCCategory) == "" {
		return ErrFIGCCategoryRequired
	}
	return nil
}

// Entry links a player to a team.
type Entry struct {
	ID           string
	TeamID       string
	PlayerID     string
	JerseyNumber *int
	IsCaptain    bool
	AddedAt      time.Time
}

// Member is a roster entry joined with its player.
type Member struct {
	Entry  Entry
	Player Player
}

type Rules struct {
	MaxPlayers int
	MaxFIGC    int
}

func DefaultRules() Rules {
	return Rules{MaxPlayers: DefaultMaxPlayers, MaxFIGC: DefaultMaxFIGC}
}

// ValidateAddition checks the quotas a new member must respect. The roster size check
// runs first.
func ValidateAddition(current []Member, wantFIGC bool, rules Rules) error {
	if len(current) >= rules.MaxPlayers {
		return fmt.Errorf("%w: %d/%d players", ErrRosterFull, len(current), rules.MaxPlayers)
	}
	if !wantFIGC {
		return nil
	}

	figc := CountFIGC(current)
	if figc >= rules.MaxFIGC {
		return fmt.Errorf("%w: %d/%d FIGC players", ErrFIGCQuotaExceeded, figc, rules.MaxFIGC)
	}
	return nil
}

func CountFIGC(members []Member) int {
	n := 0
	for _, m := range members {
		if m.Player.IsFIGC {
			n++
		}
	}
	return n
}
