package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/riskibarqy/cup-tournament/internal/usecase"
)

func registerSystemRoutes(r chi.Router, handler *Handler) {
	r.Get("/healthz", handler.Healthz)
}

func registerTournamentRoutes(r chi.Router, handler *Handler) {
	r.Route("/tournaments", func(r chi.Router) {
		r.Post("/", handler.CreateTournament)
		r.Get("/", handler.ListTournaments)
		r.Get("/{tournamentID}", handler.GetTournament)
		r.Get("/{tournamentID}/groups", handler.ListGroups)
		r.Get("/{tournamentID}/standings", handler.GetTournamentStandings)
		r.Post("/{tournamentID}/knockout/phases", handler.CreateKnockoutPhases)
		r.Post("/{tournamentID}/knockout/qualify", handler.QualifyToQuarterfinals)
		r.Get("/{tournamentID}/knockout", handler.GetBracket)
	})
	r.Get("/groups/{groupID}/matches", handler.ListGroupMatches)
	r.Get("/groups/{groupID}/standings", handler.GetGroupStandings)
	r.Put("/matches/{matchID}/result", handler.RecordGroupResult)
	r.Patch("/teams/{teamID}", handler.RenameTeam)
}

func registerKnockoutRoutes(r chi.Router, handler *Handler) {
	r.Put("/knockout/matches/{matchID}/result", handler.RecordKnockoutResult)
}

func registerRosterRoutes(r chi.Router, handler *Handler) {
	r.Route("/teams/{teamID}/roster", func(r chi.Router) {
		r.Get("/", handler.ListRoster)
		r.Post("/", handler.AddPlayerToTeam)
		r.Post("/{playerID}", handler.LinkPlayer)
		r.Put("/{playerID}/captain", handler.SetCaptain)
	})
}

func registerStatsRoutes(r chi.Router, handler *Handler) {
	r.Get("/stats/topscorers", handler.ListTopScorers)
	r.Get("/stats/goalkeepers", handler.ListGoalkeeperRanking)
}

func errRouteNotFound(r *http.Request) error {
	return fmt.Errorf("%w: route %s %s", usecase.ErrNotFound, r.Method, r.URL.Path)
}

func errMethodNotAllowed(r *http.Request) error {
	return fmt.Errorf("%w: method %s not allowed on %s", usecase.ErrInvalidInput, r.Method, r.URL.Path)
}
