// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go_golf_stat_keep/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError writes err as a JSON error response. AppErrors expose their
// detail to the client; anything else is logged and reported generically.
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError
	switch {
	case errors.As(err, &appErr):
		errResp = model.APIErrorResponse{Error: appErr.Detail}
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Request failed", "error", err, "status", statusCode)
		}
	default:
		errResp = model.APIErrorResponse{Error: genericDetail(err, statusCode)}
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Unhandled error", "error", err, "status", statusCode)
		} else {
			logger.Warn("Request rejected", "error", err, "status", statusCode)
		}
	}

	if statusCode == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", "1")
	}
	RespondWithJSON(w, statusCode, errResp)
}

// genericDetail builds a client-facing detail for a bare sentinel error.
// Validation and constraint messages are safe to echo; internal errors are not.
func genericDetail(err error, statusCode int) model.ErrorDetail {
	switch statusCode {
	case http.StatusBadRequest:
		return model.ErrorDetail{Code: "INVALID_INPUT", Message: err.Error()}
	case http.StatusNotFound:
		return model.ErrorDetail{Code: "NOT_FOUND", Message: "The requested resource was not found."}
	case http.StatusConflict:
		return model.ErrorDetail{Code: "CONSTRAINT_VIOLATION", Message: err.Error()}
	case http.StatusUnauthorized:
		return model.ErrorDetail{Code: "UNAUTHORIZED", Message: "Authentication is required."}
	case http.StatusForbidden:
		return model.ErrorDetail{Code: "FORBIDDEN", Message: "You are not allowed to perform this action."}
	case http.StatusServiceUnavailable:
		return model.ErrorDetail{Code: "TRANSACTION_FAILURE", Message: "The change could not be saved. Please retry."}
	default:
		return model.ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Message: "An internal server error occurred."}
	}
}

// MapErrorToStatusCode maps the sentinel wrapped by err to an HTTP status.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrTransactionFailure):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON writes payload as JSON with the given status code.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"failed to build response"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationErrorResponse converts validator errors into a single AppError
// carrying the translated messages.
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	fields := make([]string, 0, len(errs))
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field())
		messages = append(messages, fe.Translate(Trans))
	}

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, "; "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
