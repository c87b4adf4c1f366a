package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/cup-tournament/internal/platform/logging"
	"github.com/riskibarqy/cup-tournament/internal/usecase"
)

// Services groups the use cases the HTTP layer dispatches to.
type Services struct {
	Tournaments *usecase.TournamentService
	Results     *usecase.MatchResultService
	Standings   *usecase.StandingService
	Knockout    *usecase.KnockoutService
	Rosters     *usecase.RosterService
	Stats       *usecase.StatsService
}

type Handler struct {
	tournamentService *usecase.TournamentService
	resultService     *usecase.MatchResultService
	standingService   *usecase.StandingService
	knockoutService   *usecase.KnockoutService
	rosterService     *usecase.RosterService
	statsService      *usecase.StatsService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		tournamentService: services.Tournaments,
		resultService:     services.Results,
		standingService:   services.Standings,
		knockoutService:   services.Knockout,
		rosterService:     services.Rosters,
		statsService:      services.Stats,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a JSON body into dst and validates it. An empty body is accepted
// when allowEmpty is set so optional payloads can be omitted.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any, allowEmpty bool) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
		}
	}
	return h.validateRequest(ctx, dst)
}
