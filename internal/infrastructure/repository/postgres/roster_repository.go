package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cup-tournament/internal/domain/roster"
	qb "github.com/riskibarqy/cup-tournament/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) CreatePlayer(ctx context.Context, player roster.Player) error {
	if err := player.Validate(); err != nil {
		return err
	}
	query, args, err := qb.InsertModel("players", playerInsertModel(player), "")
	if err != nil {
		return fmt.Errorf("build create player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return execError("create player", err)
	}
	return nil
}

func (r *RosterRepository) GetPlayer(ctx context.Context, playerID string) (roster.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return roster.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Player{}, false, nil
		}
		return roster.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	return roster.Player{
		ID:           row.ID,
		Name:         row.Name,
		BirthDate:    nullTimeToPtr(row.BirthDate),
		IsFIGC:       row.IsFIGC,
		FIGCCategory: row.FIGCCategory,
		CreatedAt:    row.CreatedAt,
	}, true, nil
}

// AddEntry relies on the unique player_id constraint to keep a player on one team.
func (r *RosterRepository) AddEntry(ctx context.Context, entry roster.Entry) error {
	query, args, err := qb.InsertModel("team_rosters", rosterEntryInsertModel(entry), "")
	if err != nil {
		return fmt.Errorf("build add roster entry query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return execError(fmt.Sprintf("add roster entry player=%s", entry.PlayerID), err)
	}
	return nil
}

func (r *RosterRepository) ListByTeam(ctx context.Context, teamID string) ([]roster.Member, error) {
	query, args, err := qb.Select(
		"r.id AS entry_id", "r.team_id", "r.player_id", "r.jersey_number", "r.is_captain", "r.added_at",
		"p.name", "p.birth_date", "p.is_figc", "p.figc_category", "p.created_at",
	).
		From("team_rosters r JOIN players p ON p.id = r.player_id").
		Where(qb.Eq("r.team_id", teamID)).
		OrderBy("r.seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list roster query: %w", err)
	}

	var rows []rosterMemberRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list roster team=%s: %w", teamID, err)
	}

	out := make([]roster.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Member{
			Entry: roster.Entry{
				ID:           row.EntryID,
				TeamID:       row.TeamID,
				PlayerID:     row.PlayerID,
				JerseyNumber: nullIntToPtr(row.JerseyNumber),
				IsCaptain:    row.IsCaptain,
				AddedAt:      row.AddedAt,
			},
			Player: roster.Player{
				ID:           row.PlayerID,
				Name:         row.Name,
				BirthDate:    nullTimeToPtr(row.BirthDate),
				IsFIGC:       row.IsFIGC,
				FIGCCategory: row.FIGCCategory,
				CreatedAt:    row.CreatedAt,
			},
		})
	}
	return out, nil
}

func (r *RosterRepository) FindEntryByPlayer(ctx context.Context, playerID string) (roster.Entry, bool, error) {
	query, args, err := qb.Select(rosterEntryColumns...).From("team_rosters").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return roster.Entry{}, false, fmt.Errorf("build find roster entry query: %w", err)
	}

	var row rosterEntryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Entry{}, false, nil
		}
		return roster.Entry{}, false, fmt.Errorf("find roster entry player=%s: %w", playerID, err)
	}
	return roster.Entry{
		ID:           row.ID,
		TeamID:       row.TeamID,
		PlayerID:     row.PlayerID,
		JerseyNumber: nullIntToPtr(row.JerseyNumber),
		IsCaptain:    row.IsCaptain,
		AddedAt:      row.AddedAt,
	}, true, nil
}

// SetCaptain flips every flag of the team in one statement so a team never has two captains.
func (r *RosterRepository) SetCaptain(ctx context.Context, teamID, playerID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx set captain: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var exists bool
	existsQuery, existsArgs, err := qb.Select("TRUE").From("team_rosters").
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("player_id", playerID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build find captain entry query: %w", err)
	}
	if err := tx.GetContext(ctx, &exists, existsQuery, existsArgs...); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("set captain team=%s player=%s: not found", teamID, playerID)
		}
		return fmt.Errorf("find captain entry: %w", err)
	}

	query, args, err := qb.Update("team_rosters").
		SetExpr("is_captain", "(player_id = ?)", playerID).
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set captain query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set captain team=%s: %w", teamID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set captain tx: %w", err)
	}
	return nil
}
