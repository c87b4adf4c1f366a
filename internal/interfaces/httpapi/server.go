package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riskibarqy/cup-tournament/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogging(logger))
	r.Use(CORS(corsAllowedOrigins))
	r.Use(recoverPanic(logger))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(req.Context(), w, errRouteNotFound(req))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeError(req.Context(), w, errMethodNotAllowed(req))
	})

	registerSystemRoutes(r, handler)
	r.Route("/v1", func(r chi.Router) {
		registerTournamentRoutes(r, handler)
		registerKnockoutRoutes(r, handler)
		registerRosterRoutes(r, handler)
		registerStatsRoutes(r, handler)
	})

	return RequestTracing(r)
}
