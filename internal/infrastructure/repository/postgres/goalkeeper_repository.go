package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cup-tournament/internal/domain/goalkeeper"
	"github.com/riskibarqy/cup-tournament/internal/domain/match"
	qb "github.com/riskibarqy/cup-tournament/internal/platform/querybuilder"
)

type GoalkeeperRepository struct {
	db *sqlx.DB
}

func NewGoalkeeperRepository(db *sqlx.DB) *GoalkeeperRepository {
	return &GoalkeeperRepository{db: db}
}

func (r *GoalkeeperRepository) FindByTeamAndName(ctx context.Context, teamID, name string) (goalkeeper.Goalkeeper, bool, error) {
	query, args, err := qb.Select("*").From("goalkeepers").
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("name", name),
		).
		ToSQL()
	if err != nil {
		return goalkeeper.Goalkeeper{}, false, fmt.Errorf("build find goalkeeper query: %w", err)
	}

	var row goalkeeperTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return goalkeeper.Goalkeeper{}, false, nil
		}
		return goalkeeper.Goalkeeper{}, false, fmt.Errorf("find goalkeeper team=%s: %w", teamID, err)
	}
	return goalkeeper.Goalkeeper(row), true, nil
}

func (r *GoalkeeperRepository) Create(ctx context.Context, item goalkeeper.Goalkeeper) error {
	query, args, err := qb.InsertModel("goalkeepers", goalkeeperTableModel(item), "")
	if err != nil {
		return fmt.Errorf("build create goalkeeper query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %w", goalkeeper.ErrExists, execError("create goalkeeper", err))
		}
		return execError("create goalkeeper", err)
	}
	return nil
}

func (r *GoalkeeperRepository) List(ctx context.Context) ([]goalkeeper.Goalkeeper, error) {
	query, args, err := qb.Select("*").From("goalkeepers").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list goalkeepers query: %w", err)
	}

	var rows []goalkeeperTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list goalkeepers: %w", err)
	}

	out := make([]goalkeeper.Goalkeeper, 0, len(rows))
	for _, row := range rows {
		out = append(out, goalkeeper.Goalkeeper(row))
	}
	return out, nil
}

type GoalkeeperStatRepository struct {
	db *sqlx.DB
}

func NewGoalkeeperStatRepository(db *sqlx.DB) *GoalkeeperStatRepository {
	return &GoalkeeperStatRepository{db: db}
}

func (r *GoalkeeperStatRepository) DeleteByMatch(ctx context.Context, ref match.Ref) error {
	cond, err := refCondition(ref)
	if err != nil {
		return err
	}
	query, args, err := qb.DeleteFrom("goalkeeper_stats").Where(cond).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete goalkeeper stats query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete goalkeeper stats match=%s: %w", ref, err)
	}
	return nil
}

func (r *GoalkeeperStatRepository) InsertMany(ctx context.Context, items []goalkeeper.Stat) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]goalkeeperStatInsertModel, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		matchID, knockoutMatchID := refValues(item.Match)
		models = append(models, goalkeeperStatInsertModel{
			ID:              item.ID,
			GoalkeeperID:    item.GoalkeeperID,
			MatchID:         matchID,
			KnockoutMatchID: knockoutMatchID,
			GoalsConceded:   item.GoalsConceded,
			CleanSheet:      item.CleanSheet,
		})
	}

	query, args, err := qb.InsertModels("goalkeeper_stats", models, "")
	if err != nil {
		return fmt.Errorf("build insert goalkeeper stats query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return execError("insert goalkeeper stats", err)
	}
	return nil
}

func (r *GoalkeeperStatRepository) ListByMatch(ctx context.Context, ref match.Ref) ([]goalkeeper.Stat, error) {
	cond, err := refCondition(ref)
	if err != nil {
		return nil, err
	}
	query, args, err := qb.Select(goalkeeperStatColumns...).From("goalkeeper_stats").
		Where(cond).
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list goalkeeper stats by match query: %w", err)
	}
	return r.selectStats(ctx, query, args)
}

func (r *GoalkeeperStatRepository) List(ctx context.Context) ([]goalkeeper.Stat, error) {
	query, args, err := qb.Select(goalkeeperStatColumns...).From("goalkeeper_stats").
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list goalkeeper stats query: %w", err)
	}
	return r.selectStats(ctx, query, args)
}

func (r *GoalkeeperStatRepository) selectStats(ctx context.Context, query string, args []any) ([]goalkeeper.Stat, error) {
	var rows []goalkeeperStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select goalkeeper stats: %w", err)
	}

	out := make([]goalkeeper.Stat, 0, len(rows))
	for _, row := range rows {
		ref, err := refFromColumns(row.MatchID, row.KnockoutMatchID)
		if err != nil {
			return nil, fmt.Errorf("goalkeeper stat %s: %w", row.ID, err)
		}
		out = append(out, goalkeeper.Stat{
			ID:            row.ID,
			GoalkeeperID:  row.GoalkeeperID,
			Match:         ref,
			GoalsConceded: row.GoalsConceded,
			CleanSheet:    row.CleanSheet,
		})
	}
	return out, nil
}
