package group

import "time"

const (
	// Count is the number of groups in a tournament.
	Count = 4
	// TeamsPerGroup is fixed; brackets of other sizes are not supported.
	TeamsPerGroup = 4
)

// Labels are the group labels in creation and seeding order.
var Labels = [Count]string{"A", "B", "C", "D"}

type Group struct {
	ID           string
	TournamentID string
	Label        string
	CreatedAt    time.Time
}

// Participation links a team to its group.
type Participation struct {
	GroupID string
	TeamID  string
}

func IsValidLabel(label string) bool {
	for _, item := range Labels {
		if item == label {
			return true
		}
	}
	return false
}
