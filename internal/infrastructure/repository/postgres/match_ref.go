package postgres

import (
	"database/sql"
	"fmt"

	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	qb "github.com/riskibarqy/cup-tournament/internal/platform/querybuilder"
)

// Scorers and goalkeeper stats point at exactly one of matches or knockout_matches.
const (
	groupMatchColumn    = "match_id"
	knockoutMatchColumn = "knockout_match_id"
)

func refColumn(ref match.Ref) (string, error) {
	if err := ref.Validate(); err != nil {
		return "", err
	}
	if ref.Stage == match.StageKnockout {
		return knockoutMatchColumn, nil
	}
	return groupMatchColumn, nil
}

func refCondition(ref match.Ref) (qb.Condition, error) {
	column, err := refColumn(ref)
	if err != nil {
		return nil, err
	}
	return qb.Eq(column, ref.ID), nil
}

// refValues splits ref into the (match_id, knockout_match_id) pair.
func refValues(ref match.Ref) (*string, *string) {
	id := ref.ID
	if ref.Stage == match.StageKnockout {
		return nil, &id
	}
	return &id, nil
}

func refFromColumns(groupMatchID, knockoutMatchID sql.NullString) (match.Ref, error) {
	switch {
	case groupMatchID.Valid && !knockoutMatchID.Valid:
		return match.GroupRef(groupMatchID.String), nil
	case knockoutMatchID.Valid && !groupMatchID.Valid:
		return match.KnockoutRef(knockoutMatchID.String), nil
	default:
		return match.Ref{}, fmt.Errorf("row must reference exactly one match, got match_id=%v knockout_match_id=%v",
			groupMatchID.Valid, knockoutMatchID.Valid)
	}
}
