package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantacalcio/internal/domain/auction"
	"github.com/riskibarqy/fantacalcio/internal/domain/backup"
	"github.com/riskibarqy/fantacalcio/internal/domain/quotation"
	"github.com/riskibarqy/fantacalcio/internal/domain/statistics"
	"github.com/riskibarqy/fantacalcio/internal/usecase"
)

// responseEnvelope is the shape of every JSON body the API writes.
type responseEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, responseEnvelope{
		Success: true,
		Data:    data,
	})
}

func writeMessage(ctx context.Context, w http.ResponseWriter, status int, message string, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeMessage")
	defer span.End()

	writeJSON(ctx, w, status, responseEnvelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	if mapped.HTTPStatus >= http.StatusInternalServerError && mapped.Reason == "internalError" {
		writeInternalError(ctx, w)
		return
	}

	writeJSON(ctx, w, mapped.HTTPStatus, responseEnvelope{
		Success: false,
		Error:   err.Error(),
		Reason:  mapped.Reason,
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, responseEnvelope{
		Success: false,
		Error:   "internal server error",
		Reason:  "internalError",
	})
}

func mapError(ctx context.Context, err error) mappedError {
	ctx, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, statistics.ErrInvalidSort),
		errors.Is(err, backup.ErrMalformed),
		errors.Is(err, auction.ErrInvalidPrice):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput"}
	case errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, auction.ErrPlayerNotFound),
		errors.Is(err, auction.ErrTeamNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound"}
	case errors.Is(err, auction.ErrPlayerNotAvailable):
		return mappedError{HTTPStatus: http.StatusConflict, Reason: "playerNotAvailable"}
	case errors.Is(err, auction.ErrInsufficientBudget):
		return mappedError{HTTPStatus: http.StatusConflict, Reason: "insufficientBudget"}
	case errors.Is(err, auction.ErrPlayerNotOwnedByTeam),
		errors.Is(err, auction.ErrPlayerWithoutOwnerTeam):
		return mappedError{HTTPStatus: http.StatusConflict, Reason: "playerNotOwnedByTeam"}
	case errors.Is(err, usecase.ErrConflict):
		return mappedError{HTTPStatus: http.StatusConflict, Reason: "conflict"}
	case errors.Is(err, usecase.ErrIntegrity),
		errors.Is(err, auction.ErrPurchaseRecordMissing),
		errors.Is(err, quotation.ErrDuplicateQuotation):
		return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "integrityError"}
	case errors.Is(err, usecase.ErrRateLimited):
		return mappedError{HTTPStatus: http.StatusTooManyRequests, Reason: "rateLimited"}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable"}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError"}
	}
}
