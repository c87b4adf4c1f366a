package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/riskibarqy/cup-tournament/internal/usecase"
)

type addPlayerRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	BirthDate    string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	IsFIGC       bool   `json:"is_figc"`
	FIGCCategory string `json:"figc_category" validate:"max=50"`
	JerseyNumber *int   `json:"jersey_number" validate:"omitempty,gte=1,lte=99"`
	IsCaptain    bool   `json:"is_captain"`
}

type linkPlayerRequest struct {
	JerseyNumber *int `json:"jersey_number" validate:"omitempty,gte=1,lte=99"`
}

func (h *Handler) ListRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoster")
	defer span.End()

	teamID := chi.URLParam(r, "teamID")
	members, err := h.rosterService.ListRoster(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list roster failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]rosterMemberDTO, 0, len(members))
	for _, item := range members {
		out = append(out, memberToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AddPlayerToTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayerToTeam")
	defer span.End()

	teamID := chi.URLParam(r, "teamID")
	var req addPlayerRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		parsed, err := time.Parse(dateLayout, req.BirthDate)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: birth_date: %v", usecase.ErrInvalidInput, err))
			return
		}
		birthDate = &parsed
	}

	member, err := h.rosterService.AddPlayerToTeam(ctx, usecase.AddPlayerInput{
		TeamID:       teamID,
		Name:         req.Name,
		BirthDate:    birthDate,
		IsFIGC:       req.IsFIGC,
		FIGCCategory: req.FIGCCategory,
		JerseyNumber: req.JerseyNumber,
		IsCaptain:    req.IsCaptain,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add player to team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, memberToDTO(member))
}

func (h *Handler) LinkPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LinkPlayer")
	defer span.End()

	teamID := chi.URLParam(r, "teamID")
	playerID := chi.URLParam(r, "playerID")
	var req linkPlayerRequest
	if err := h.decodeRequest(ctx, r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}

	member, err := h.rosterService.LinkPlayer(ctx, usecase.LinkPlayerInput{
		TeamID:       teamID,
		PlayerID:     playerID,
		JerseyNumber: req.JerseyNumber,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "link player failed", "team_id", teamID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, memberToDTO(member))
}

func (h *Handler) SetCaptain(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetCaptain")
	defer span.End()

	teamID := chi.URLParam(r, "teamID")
	playerID := chi.URLParam(r, "playerID")
	if err := h.rosterService.SetCaptain(ctx, teamID, playerID); err != nil {
		h.logger.WarnContext(ctx, "set captain failed", "team_id", teamID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"team_id": teamID, "captain_id": playerID})
}
