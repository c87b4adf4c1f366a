package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	qb "github.com/riskibarqy/cup-tournament/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) CreateMany(ctx context.Context, items []match.Match) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]matchInsertModel, 0, len(items))
	for _, item := range items {
		models = append(models, matchInsertModel(item))
	}

	query, args, err := qb.InsertModels("matches", models, "")
	if err != nil {
		return fmt.Errorf("build insert matches query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return execError("insert matches", err)
	}
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ListByGroup(ctx context.Context, groupID string) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("group_id", groupID)).
		OrderBy("match_day", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list group matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list group matches group=%s: %w", groupID, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) UpdateResult(ctx context.Context, matchID string, homeScore, awayScore int, playedAt time.Time) error {
	query, args, err := qb.Update("matches").
		Set("home_score", homeScore).
		Set("away_score", awayScore).
		Set("played_at", playedAt).
		Set("updated_at", playedAt).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match result query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return execError("update match result", err)
	}
	return requireAffected(result, "update match result "+matchID)
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.ID,
		GroupID:    row.GroupID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		MatchDay:   row.MatchDay,
		HomeScore:  nullIntToPtr(row.HomeScore),
		AwayScore:  nullIntToPtr(row.AwayScore),
		PlayedAt:   nullTimeToPtr(row.PlayedAt),
		UpdatedAt:  row.UpdatedAt,
	}
}
