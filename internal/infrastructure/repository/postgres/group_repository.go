package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cup-tournament/internal/domain/group"
	qb "github.com/riskibarqy/cup-tournament/internal/platform/querybuilder"
)

type GroupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(ctx context.Context, item group.Group) error {
	query, args, err := qb.InsertModel("tournament_groups", groupTableModel(item), "")
	if err != nil {
		return fmt.Errorf("build create group query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return execError("create group", err)
	}
	return nil
}

func (r *GroupRepository) GetByID(ctx context.Context, groupID string) (group.Group, bool, error) {
	query, args, err := qb.Select("*").From("tournament_groups").
		Where(qb.Eq("id", groupID)).
		ToSQL()
	if err != nil {
		return group.Group{}, false, fmt.Errorf("build get group query: %w", err)
	}

	var row groupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return group.Group{}, false, nil
		}
		return group.Group{}, false, fmt.Errorf("get group: %w", err)
	}
	return group.Group(row), true, nil
}

func (r *GroupRepository) ListByTournament(ctx context.Context, tournamentID string) ([]group.Group, error) {
	query, args, err := qb.Select("*").From("tournament_groups").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("label").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list groups query: %w", err)
	}

	var rows []groupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list groups tournament=%s: %w", tournamentID, err)
	}

	out := make([]group.Group, 0, len(rows))
	for _, row := range rows {
		out = append(out, group.Group(row))
	}
	return out, nil
}

func (r *GroupRepository) AddParticipations(ctx context.Context, items []group.Participation) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]participationInsertModel, 0, len(items))
	for _, item := range items {
		models = append(models, participationInsertModel(item))
	}

	query, args, err := qb.InsertModels("participations", models, "")
	if err != nil {
		return fmt.Errorf("build insert participations query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return execError("insert participations", err)
	}
	return nil
}

// ListTeamIDs keeps the order the teams were linked in; fixtures depend on it.
func (r *GroupRepository) ListTeamIDs(ctx context.Context, groupID string) ([]string, error) {
	query, args, err := qb.Select("team_id").From("participations").
		Where(qb.Eq("group_id", groupID)).
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list group teams query: %w", err)
	}

	out := []string{}
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list group teams group=%s: %w", groupID, err)
	}
	return out, nil
}
