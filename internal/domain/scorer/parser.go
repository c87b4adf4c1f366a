package scorer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrParse = errors.New("malformed scorer token")

const (
	tokenSeparator = ";"
	goalsSeparator = "-"
)

// Entry is one parsed `Name-Goals` token.
type Entry struct {
	TeamID     string
	PlayerName string
	Goals      int
}

// Parse reads the `Rossi-2;Verdi-1` tally format for one team.
//
// It is lenient: tokens whose goal count is missing, non-numeric or not positive are
// dropped, as are empty tokens. Only a token that has no `-` at all, or nothing before
// it, is an error because there is no player to attribute goals to.
func Parse(text, teamID string) ([]Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []Entry{}, nil
	}

	out := make([]Entry, 0, strings.Count(text, tokenSeparator)+1)
	for _, raw := range strings.Split(text, tokenSeparator) {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}

		name, goalsText, found := strings.Cut(token, goalsSeparator)
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrParse, token)
		}

		goals, err := strconv.Atoi(strings.TrimSpace(goalsText))
		if err != nil || goals <= 0 {
			continue
		}

		out = append(out, Entry{
			TeamID:     teamID,
			PlayerName: name,
			Goals:      goals,
		})
	}

	return out, nil
}

// TotalGoals sums the parsed tallies; it is informational only and never compared
// against the recorded score.
func TotalGoals(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Goals
	}
	return total
}
