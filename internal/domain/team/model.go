package team

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var placeholderPattern = regexp.MustCompile(`^Sq\d+$`)

// Team is one of the sixteen squads of a tournament.
type Team struct {
	ID            string
	Name          string
	LogoURL       string
	IsPlaceholder bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PlaceholderName is the auto-generated name given to squad n at setup (Sq1..Sq16).
func PlaceholderName(n int) string {
	return "Sq" + strconv.Itoa(n)
}

func IsPlaceholderName(name string) bool {
	return placeholderPattern.MatchString(name)
}

func NewPlaceholder(id string, n int, now time.Time) Team {
	return Team{
		ID:            id,
		Name:          PlaceholderName(n),
		IsPlaceholder: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Rename is the only place IsPlaceholder changes after creation.
func (t *Team) Rename(name, logoURL string, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("team name is required")
	}

	t.Name = name
	t.LogoURL = strings.TrimSpace(logoURL)
	t.IsPlaceholder = IsPlaceholderName(name)
	t.UpdatedAt = now
	return nil
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
