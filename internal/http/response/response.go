// Package response writes the JSON envelope every endpoint answers with.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrJamesThe3rd/caja/internal/apperr"
)

const internalErrorMessage = "internal error"

type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func JSON(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(envelope{
		Status:  status,
		Message: message,
		Data:    data,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, message, nil)
}

// Error maps err's kind to a status code. Storage failures and errors of
// unknown kind are logged and answered with a generic message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(apperr.KindOf(err))

	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
	}

	JSON(w, status, apperr.Message(err, internalErrorMessage), nil)
}

func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindAuth:
		return http.StatusUnauthorized
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
