package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/riskibarqy/cup-tournament/internal/usecase"
)

type createTournamentRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	Year int    `json:"year" validate:"required,gte=1900,lte=9999"`
}

type renameTeamRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	LogoURL string `json:"logo_url" validate:"omitempty,url,max=500"`
}

func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTournament")
	defer span.End()

	var req createTournamentRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	setup, err := h.tournamentService.CreateTournament(ctx, usecase.CreateTournamentInput{
		Name: req.Name,
		Year: req.Year,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create tournament failed", "name", req.Name, "year", req.Year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, setupToDTO(setup))
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	items, err := h.tournamentService.ListTournaments(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]tournamentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, tournamentToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournament")
	defer span.End()

	tournamentID := chi.URLParam(r, "tournamentID")
	item, err := h.tournamentService.GetTournament(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(item))
}

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroups")
	defer span.End()

	tournamentID := chi.URLParam(r, "tournamentID")
	groups, err := h.tournamentService.ListGroups(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list groups failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]groupDTO, 0, len(groups))
	for _, item := range groups {
		out = append(out, groupDetailsToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListGroupMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroupMatches")
	defer span.End()

	groupID := chi.URLParam(r, "groupID")
	matches, err := h.tournamentService.GroupMatches(ctx, groupID)
	if err != nil {
		h.logger.WarnContext(ctx, "list group matches failed", "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(matches))
}

func (h *Handler) GetGroupStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGroupStandings")
	defer span.End()

	groupID := chi.URLParam(r, "groupID")
	result, err := h.standingService.GroupStandings(ctx, groupID)
	if err != nil {
		h.logger.WarnContext(ctx, "get group standings failed", "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingToDTO(result.Group, result.Rows))
}

func (h *Handler) GetTournamentStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournamentStandings")
	defer span.End()

	tournamentID := chi.URLParam(r, "tournamentID")
	results, err := h.standingService.TournamentStandings(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament standings failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]groupStandingDTO, 0, len(results))
	for _, item := range results {
		out = append(out, standingToDTO(item.Group, item.Rows))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) RenameTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RenameTeam")
	defer span.End()

	teamID := chi.URLParam(r, "teamID")
	var req renameTeamRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.tournamentService.RenameTeam(ctx, usecase.RenameTeamInput{
		TeamID:  teamID,
		Name:    req.Name,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "rename team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}
