package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cup-tournament/internal/domain/knockout"
	qb "github.com/riskibarqy/cup-tournament/internal/platform/querybuilder"
)

type KnockoutRepository struct {
	db *sqlx.DB
}

func NewKnockoutRepository(db *sqlx.DB) *KnockoutRepository {
	return &KnockoutRepository{db: db}
}

func (r *KnockoutRepository) CreatePhase(ctx context.Context, phase knockout.Phase) error {
	if !phase.Type.Valid() {
		return fmt.Errorf("invalid phase type %q", phase.Type)
	}
	query, args, err := qb.InsertModel("knockout_phases", knockoutPhaseTableModel{
		ID:           phase.ID,
		TournamentID: phase.TournamentID,
		Type:         string(phase.Type),
		CreatedAt:    phase.CreatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build create knockout phase query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return execError("create knockout phase", err)
	}
	return nil
}

func (r *KnockoutRepository) GetPhase(ctx context.Context, phaseID string) (knockout.Phase, bool, error) {
	query, args, err := qb.Select(knockoutPhaseColumns...).From("knockout_phases").
		Where(qb.Eq("id", phaseID)).
		ToSQL()
	if err != nil {
		return knockout.Phase{}, false, fmt.Errorf("build get knockout phase query: %w", err)
	}

	var row knockoutPhaseTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return knockout.Phase{}, false, nil
		}
		return knockout.Phase{}, false, fmt.Errorf("get knockout phase: %w", err)
	}
	return phaseFromRow(row), true, nil
}

func (r *KnockoutRepository) ListPhasesByTournament(ctx context.Context, tournamentID string) ([]knockout.Phase, error) {
	query, args, err := qb.Select(knockoutPhaseColumns...).From("knockout_phases").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list knockout phases query: %w", err)
	}

	var rows []knockoutPhaseTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list knockout phases tournament=%s: %w", tournamentID, err)
	}

	out := make([]knockout.Phase, 0, len(rows))
	for _, row := range rows {
		out = append(out, phaseFromRow(row))
	}
	return out, nil
}

func (r *KnockoutRepository) CreateMatches(ctx context.Context, items []knockout.Match) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]knockoutMatchInsertModel, 0, len(items))
	for _, item := range items {
		models = append(models, knockoutMatchInsertModel(item))
	}

	query, args, err := qb.InsertModels("knockout_matches", models, "")
	if err != nil {
		return fmt.Errorf("build insert knockout matches query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return execError("insert knockout matches", err)
	}
	return nil
}

func (r *KnockoutRepository) GetMatch(ctx context.Context, matchID string) (knockout.Match, bool, error) {
	query, args, err := qb.Select("*").From("knockout_matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return knockout.Match{}, false, fmt.Errorf("build get knockout match query: %w", err)
	}

	var row knockoutMatchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return knockout.Match{}, false, nil
		}
		return knockout.Match{}, false, fmt.Errorf("get knockout match: %w", err)
	}
	return knockoutMatchFromRow(row), true, nil
}

func (r *KnockoutRepository) ListMatchesByPhase(ctx context.Context, phaseID string) ([]knockout.Match, error) {
	query, args, err := qb.Select("*").From("knockout_matches").
		Where(qb.Eq("phase_id", phaseID)).
		OrderBy("match_order").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list knockout matches query: %w", err)
	}

	var rows []knockoutMatchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list knockout matches phase=%s: %w", phaseID, err)
	}

	out := make([]knockout.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, knockoutMatchFromRow(row))
	}
	return out, nil
}

func (r *KnockoutRepository) SetTeams(ctx context.Context, matchID, homeTeamID, awayTeamID string) error {
	query, args, err := qb.Update("knockout_matches").
		Set("home_team_id", homeTeamID).
		Set("away_team_id", awayTeamID).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set knockout teams query: %w", err)
	}
	return r.exec(ctx, query, args, "set knockout teams "+matchID)
}

func (r *KnockoutRepository) AssignSlot(ctx context.Context, matchID string, side knockout.Side, teamID string) error {
	if !side.Valid() {
		return fmt.Errorf("invalid side %q", side)
	}
	column := "away_team_id"
	if side == knockout.SideHome {
		column = "home_team_id"
	}

	query, args, err := qb.Update("knockout_matches").
		Set(column, teamID).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build assign knockout slot query: %w", err)
	}
	return r.exec(ctx, query, args, "assign knockout slot "+matchID)
}

// UpdateResult never clears a stored winner; a nil winnerID leaves the column as is.
func (r *KnockoutRepository) UpdateResult(ctx context.Context, matchID string, res knockout.Result, winnerID *string, updatedAt time.Time) error {
	query, args, err := qb.Update("knockout_matches").
		Set("home_score", res.HomeScore).
		Set("away_score", res.AwayScore).
		Set("home_penalties", res.HomePenalties).
		Set("away_penalties", res.AwayPenalties).
		SetExpr("winner_id", "COALESCE(?, winner_id)", winnerID).
		Set("played_at", res.PlayedAt).
		Set("updated_at", updatedAt).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update knockout result query: %w", err)
	}
	return r.exec(ctx, query, args, "update knockout result "+matchID)
}

func (r *KnockoutRepository) exec(ctx context.Context, query string, args []any, op string) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return execError(op, err)
	}
	return requireAffected(result, op)
}

func phaseFromRow(row knockoutPhaseTableModel) knockout.Phase {
	return knockout.Phase{
		ID:           row.ID,
		TournamentID: row.TournamentID,
		Type:         knockout.PhaseType(row.Type),
		CreatedAt:    row.CreatedAt,
	}
}

func knockoutMatchFromRow(row knockoutMatchTableModel) knockout.Match {
	return knockout.Match{
		ID:            row.ID,
		PhaseID:       row.PhaseID,
		Order:         row.Order,
		HomeTeamID:    nullStringToPtr(row.HomeTeamID),
		AwayTeamID:    nullStringToPtr(row.AwayTeamID),
		HomeScore:     nullIntToPtr(row.HomeScore),
		AwayScore:     nullIntToPtr(row.AwayScore),
		HomePenalties: nullIntToPtr(row.HomePenalties),
		AwayPenalties: nullIntToPtr(row.AwayPenalties),
		WinnerID:      nullStringToPtr(row.WinnerID),
		PlayedAt:      nullTimeToPtr(row.PlayedAt),
		UpdatedAt:     row.UpdatedAt,
	}
}
