package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"citizenshipbridge/internal/domain"

	"github.com/goccy/go-json"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeNotFound      = "not_found"
	ErrCodeUnprocessable = "unprocessable"
	ErrCodeBadGateway    = "bad_gateway"
	ErrCodeInternalError = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// domainErrors maps sentinel errors to status and code, first match wins.
var domainErrors = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrInvalidDate, http.StatusUnprocessableEntity, ErrCodeUnprocessable},
	{domain.ErrReminderIncomplete, http.StatusBadRequest, ErrCodeBadRequest},
	{domain.ErrInvalidEmail, http.StatusBadRequest, ErrCodeBadRequest},
	{domain.ErrEmptyQuestion, http.StatusBadRequest, ErrCodeBadRequest},
	{domain.ErrQuestionTooLong, http.StatusBadRequest, ErrCodeBadRequest},
	{domain.ErrInvalidDocument, http.StatusBadRequest, ErrCodeBadRequest},
	{domain.ErrInvalidToken, http.StatusUnauthorized, ErrCodeUnauthorized},
	{domain.ErrPageNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrAssistantUnavailable, http.StatusBadGateway, ErrCodeBadGateway},
}

// StatusForError returns the HTTP status and error code for err.
// Unknown errors are internal errors.
func StatusForError(err error) (int, string) {
	for _, e := range domainErrors {
		if errors.Is(err, e.target) {
			return e.status, e.code
		}
	}
	return http.StatusInternalServerError, ErrCodeInternalError
}

// WriteDomainError writes err using StatusForError. Client errors carry the
// error text; internal errors are logged and answered with a generic message.
func WriteDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, code := StatusForError(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		if status == http.StatusInternalServerError {
			WriteJSONError(w, status, code, "internal server error")
			return
		}
	}
	WriteJSONError(w, status, code, err.Error())
}

// WriteJSONSuccess encodes an APIResponse with the given data and a nil error.
// API responses are never cached.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Data: data})
}

// WriteJSONError encodes an APIResponse with nil data and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, APIResponse{Error: &APIError{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, statusCode int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
