package knockout

import (
	"errors"
	"fmt"
)

var (
	ErrPenaltiesRequired = errors.New("drawn knockout match needs a decisive penalty shoot-out")
	ErrInvalidPenalties  = errors.New("penalties must be given for both sides")
	ErrTeamsNotAssigned  = errors.New("knockout match teams are not assigned")
)

// Outcome names who goes through and who drops out.
type Outcome struct {
	WinnerID string
	LoserID  string
}

// DecideWinner picks the winner on goals, and on penalties only for a draw. A draw
// without penalties, or with level penalties, yields ErrPenaltiesRequired. Penalties
// supplied for a decided match do not affect the outcome.
func DecideWinner(homeID, awayID string, res Result) (Outcome, error) {
	if homeID == "" || awayID == "" {
		return Outcome{}, ErrTeamsNotAssigned
	}
	if err := res.Validate(); err != nil {
		return Outcome{}, err
	}

	switch {
	case res.HomeScore > res.AwayScore:
		return Outcome{WinnerID: homeID, LoserID: awayID}, nil
	case res.AwayScore > res.HomeScore:
		return Outcome{WinnerID: awayID, LoserID: homeID}, nil
	}

	if res.HomePenalties == nil {
		return Outcome{}, ErrPenaltiesRequired
	}

	hp, ap := *res.HomePenalties, *res.AwayPenalties
	switch {
	case hp > ap:
		return Outcome{WinnerID: homeID, LoserID: awayID}, nil
	case ap > hp:
		return Outcome{WinnerID: awayID, LoserID: homeID}, nil
	default:
		return Outcome{}, fmt.Errorf("%w: penalties level at %d-%d", ErrPenaltiesRequired, hp, ap)
	}
}
