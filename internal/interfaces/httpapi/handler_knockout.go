package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/riskibarqy/cup-tournament/internal/usecase"
)

type recordKnockoutResultRequest struct {
	HomeScore     *int   `json:"home_score" validate:"required,gte=0"`
	AwayScore     *int   `json:"away_score" validate:"required,gte=0"`
	HomePenalties *int   `json:"home_penalties" validate:"omitempty,gte=0"`
	AwayPenalties *int   `json:"away_penalties" validate:"omitempty,gte=0"`
	ScorersHome   string `json:"scorers_home" validate:"max=2000"`
	ScorersAway   string `json:"scorers_away" validate:"max=2000"`
}

func (h *Handler) CreateKnockoutPhases(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateKnockoutPhases")
	defer span.End()

	tournamentID := chi.URLParam(r, "tournamentID")
	phases, err := h.knockoutService.EnsurePhases(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "create knockout phases failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, bracketToDTO(phases))
}

func (h *Handler) QualifyToQuarterfinals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.QualifyToQuarterfinals")
	defer span.End()

	tournamentID := chi.URLParam(r, "tournamentID")
	matches, err := h.knockoutService.QualifyToQuarterfinals(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "qualify to quarterfinals failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, knockoutMatchesToDTO(matches))
}

func (h *Handler) GetBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBracket")
	defer span.End()

	tournamentID := chi.URLParam(r, "tournamentID")
	phases, err := h.knockoutService.ListBracket(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get bracket failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bracketToDTO(phases))
}

// RecordKnockoutResult answers 200 with a warning when the score was stored but the
// bracket could not be advanced.
func (h *Handler) RecordKnockoutResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordKnockoutResult")
	defer span.End()

	matchID := chi.URLParam(r, "matchID")
	var req recordKnockoutResultRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.knockoutService.RecordKnockoutResult(ctx, usecase.RecordKnockoutResultInput{
		MatchID:       matchID,
		HomeScore:     *req.HomeScore,
		AwayScore:     *req.AwayScore,
		HomePenalties: req.HomePenalties,
		AwayPenalties: req.AwayPenalties,
		ScorersHome:   req.ScorersHome,
		ScorersAway:   req.ScorersAway,
	})
	if err != nil {
		if usecase.IsAdvancementFailure(err) {
			h.logger.ErrorContext(ctx, "knockout advancement failed", "match_id", matchID, "error", err)
			writeSuccessWithWarning(ctx, w, http.StatusOK, knockoutResultToDTO(result), googleWarning{
				Reason:  "advancementFailed",
				Message: err.Error(),
			})
			return
		}
		h.logger.WarnContext(ctx, "record knockout result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, knockoutResultToDTO(result))
}
