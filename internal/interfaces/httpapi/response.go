package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/cup-tournament/internal/domain/knockout"
	"github.com/riskibarqy/cup-tournament/internal/domain/roster"
	"github.com/riskibarqy/cup-tournament/internal/domain/scorer"
	"github.com/riskibarqy/cup-tournament/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "cup-tournament"
	internalMessage  = "internal server error"
)

var encodeFailureBody = []byte(`{"apiVersion":"2.0","error":{"code":500,"message":"internal server error","status":"INTERNAL"}}`)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Warnings   []googleWarning  `json:"warnings,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// googleWarning reports a follow-up failure on a request whose main write succeeded.
type googleWarning struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

var internalError = mappedError{
	HTTPStatus: http.StatusInternalServerError,
	Reason:     "internalError",
	Status:     "INTERNAL",
}

// errorRules is checked top to bottom; domain sentinels come before the generic usecase ones
// they are usually wrapped with.
var errorRules = []struct {
	targets []error
	mapped  mappedError
}{
	{
		targets: []error{scorer.ErrParse},
		mapped:  mappedError{http.StatusBadRequest, "invalidScorers", "INVALID_ARGUMENT"},
	},
	{
		targets: []error{roster.ErrRosterFull, roster.ErrFIGCQuotaExceeded, roster.ErrFIGCCategoryRequired},
		mapped:  mappedError{http.StatusBadRequest, "invalidRoster", "INVALID_ARGUMENT"},
	},
	{
		targets: []error{knockout.ErrPenaltiesRequired, knockout.ErrInvalidPenalties},
		mapped:  mappedError{http.StatusBadRequest, "invalidPenalties", "INVALID_ARGUMENT"},
	},
	{
		targets: []error{usecase.ErrInvalidInput},
		mapped:  mappedError{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"},
	},
	{
		targets: []error{usecase.ErrNotFound},
		mapped:  mappedError{http.StatusNotFound, "notFound", "NOT_FOUND"},
	},
	{
		targets: []error{usecase.ErrConflict},
		mapped:  mappedError{http.StatusConflict, "conflict", "FAILED_PRECONDITION"},
	},
	{
		targets: []error{usecase.ErrPartialWrite},
		mapped:  mappedError{http.StatusInternalServerError, "partialWrite", "DATA_LOSS"},
	},
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w.Header().Set("Content-Type", "application/json")
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(encodeFailureBody)
		return
	}

	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeEnvelope(ctx, w, status, googleResponseEnvelope{Data: data})
}

func writeSuccessWithWarning(ctx context.Context, w http.ResponseWriter, status int, data any, warning googleWarning) {
	writeEnvelope(ctx, w, status, googleResponseEnvelope{
		Data:     data,
		Warnings: []googleWarning{warning},
	})
}

// writeError renders err with the mapped status. 500 messages are replaced with a generic
// text, except partial writes whose detail names the failed step.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	message := err.Error()
	if mapped.HTTPStatus == http.StatusInternalServerError && !errors.Is(err, usecase.ErrPartialWrite) {
		message = internalMessage
	}
	writeEnvelope(ctx, w, mapped.HTTPStatus, errorEnvelope(mapped, message))
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeEnvelope(ctx, w, http.StatusInternalServerError, errorEnvelope(internalError, internalMessage))
}

func writeEnvelope(ctx context.Context, w http.ResponseWriter, status int, envelope googleResponseEnvelope) {
	envelope.APIVersion = googleAPIVersion
	writeJSON(ctx, w, status, envelope)
}

func errorEnvelope(mapped mappedError, message string) googleResponseEnvelope {
	return googleResponseEnvelope{
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: message,
			Status:  mapped.Status,
			Errors: []googleErrorItem{{
				Domain:  errorDomain,
				Reason:  mapped.Reason,
				Message: message,
			}},
		},
	}
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	for _, rule := range errorRules {
		for _, target := range rule.targets {
			if errors.Is(err, target) {
				return rule.mapped
			}
		}
	}
	return internalError
}
