package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/riskibarqy/cup-tournament/internal/usecase"
)

type recordGroupResultRequest struct {
	HomeScore   *int   `json:"home_score" validate:"required,gte=0"`
	AwayScore   *int   `json:"away_score" validate:"required,gte=0"`
	ScorersHome string `json:"scorers_home" validate:"max=2000"`
	ScorersAway string `json:"scorers_away" validate:"max=2000"`
}

func (h *Handler) RecordGroupResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordGroupResult")
	defer span.End()

	matchID := chi.URLParam(r, "matchID")
	var req recordGroupResultRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.resultService.RecordGroupResult(ctx, usecase.RecordGroupResultInput{
		MatchID:     matchID,
		HomeScore:   *req.HomeScore,
		AwayScore:   *req.AwayScore,
		ScorersHome: req.ScorersHome,
		ScorersAway: req.ScorersAway,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record group result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}
