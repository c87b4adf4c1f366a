package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/cup-tournament/internal/usecase"
)

const defaultTopScorerLimit = 20

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	limit := defaultTopScorerLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		limit = parsed
	}

	items, err := h.statsService.TopScorers(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list top scorers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, topScorersToDTO(items))
}

func (h *Handler) ListGoalkeeperRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGoalkeeperRanking")
	defer span.End()

	items, err := h.statsService.GoalkeeperRanking(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list goalkeeper ranking failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, goalkeeperRankingToDTO(items))
}
