package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	"github.com/riskibarqy/cup-tournament/internal/domain/scorer"
	qb "github.com/riskibarqy/cup-tournament/internal/platform/querybuilder"
)

type ScorerRepository struct {
	db *sqlx.DB
}

func NewScorerRepository(db *sqlx.DB) *ScorerRepository {
	return &ScorerRepository{db: db}
}

func (r *ScorerRepository) DeleteByMatch(ctx context.Context, ref match.Ref) error {
	cond, err := refCondition(ref)
	if err != nil {
		return err
	}
	query, args, err := qb.DeleteFrom("scorers").Where(cond).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete scorers query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete scorers match=%s: %w", ref, err)
	}
	return nil
}

func (r *ScorerRepository) InsertMany(ctx context.Context, items []scorer.Scorer) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]scorerInsertModel, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		matchID, knockoutMatchID := refValues(item.Match)
		models = append(models, scorerInsertModel{
			ID:              item.ID,
			MatchID:         matchID,
			KnockoutMatchID: knockoutMatchID,
			TeamID:          item.TeamID,
			PlayerName:      item.PlayerName,
			Goals:           item.Goals,
		})
	}

	query, args, err := qb.InsertModels("scorers", models, "")
	if err != nil {
		return fmt.Errorf("build insert scorers query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return execError("insert scorers", err)
	}
	return nil
}

func (r *ScorerRepository) ListByMatch(ctx context.Context, ref match.Ref) ([]scorer.Scorer, error) {
	cond, err := refCondition(ref)
	if err != nil {
		return nil, err
	}
	query, args, err := qb.Select(scorerColumns...).From("scorers").
		Where(cond).
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list scorers by match query: %w", err)
	}
	return r.selectScorers(ctx, query, args)
}

func (r *ScorerRepository) List(ctx context.Context) ([]scorer.Scorer, error) {
	query, args, err := qb.Select(scorerColumns...).From("scorers").
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list scorers query: %w", err)
	}
	return r.selectScorers(ctx, query, args)
}

func (r *ScorerRepository) selectScorers(ctx context.Context, query string, args []any) ([]scorer.Scorer, error) {
	var rows []scorerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select scorers: %w", err)
	}

	out := make([]scorer.Scorer, 0, len(rows))
	for _, row := range rows {
		ref, err := refFromColumns(row.MatchID, row.KnockoutMatchID)
		if err != nil {
			return nil, fmt.Errorf("scorer %s: %w", row.ID, err)
		}
		out = append(out, scorer.Scorer{
			ID:         row.ID,
			Match:      ref,
			TeamID:     row.TeamID,
			PlayerName: row.PlayerName,
			Goals:      row.Goals,
		})
	}
	return out, nil
}
