package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/pkg/ctxutil"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 10 << 20

type successResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
}

type errorResponse struct {
	Success bool          `json:"success"`
	Error   string        `json:"error"`
	Message string        `json:"message"`
	Details []fieldDetail `json:"details,omitempty"`
}

type fieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error kinds reported in the "error" member of an error envelope.
const (
	kindValidation  = "Validation Error"
	kindBadRequest  = "Bad Request"
	kindNotFound    = "Not Found"
	kindConflict    = "Conflict"
	kindInternal    = "Internal Server Error"
	kindUnavailable = "Service Unavailable"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeData(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, successResponse{Success: true, Data: data, Message: message})
}

func writeList[T any](w http.ResponseWriter, status int, items []T, message string) {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	writeJSON(w, status, successResponse{Success: true, Data: items, Count: &n, Message: message})
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorResponse{Error: kind, Message: message})
}

// handleError maps an error returned by a service to a response. resource
// names the thing a not-found error refers to.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error, resource string) {
	var ve *domain.ValidationError
	var missing *domain.MissingHabitsError

	switch {
	case errors.As(err, &ve):
		details := make([]fieldDetail, len(ve.Errors))
		for i, fe := range ve.Errors {
			details[i] = fieldDetail{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   kindValidation,
			Message: ve.Error(),
			Details: details,
		})
	case errors.As(err, &missing):
		writeError(w, http.StatusNotFound, kindNotFound, missing.Error())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, kindValidation, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, kindNotFound, resource+" not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, kindConflict, "resource already exists")
	case errors.Is(err, domain.ErrUnavailable):
		log.WarnContext(r.Context(), "backend unavailable",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusServiceUnavailable, kindUnavailable, "storage is temporarily unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, kindInternal, "internal server error")
	}
}

// decodeBody reads a JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, kindBadRequest, "invalid request body")
		return false
	}
	return true
}
