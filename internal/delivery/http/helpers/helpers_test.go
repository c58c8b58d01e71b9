package helpers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"citizenshipbridge/internal/domain"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name string `json:"name"`
}

func (s sampleRequest) Validate() []string {
	if s.Name == "" {
		return []string{"name is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
		wantMsg    string
	}{
		{"valid", `{"name":"Ana"}`, true, http.StatusOK, ""},
		{"malformed", `{"name":`, false, http.StatusBadRequest, ""},
		{"unknown field", `{"name":"Ana","role":"admin"}`, false, http.StatusBadRequest, ""},
		{"validation failure", `{"name":""}`, false, http.StatusBadRequest, "name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var dest sampleRequest

			ok := DecodeAndValidate(rr, req, &dest)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, "Ana", dest.Name)
				return
			}
			assert.Equal(t, tt.wantStatus, rr.Code)
			var envelope APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Equal(t, ErrCodeBadRequest, envelope.Error.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, envelope.Error.Message)
			}
		})
	}
}

func TestWriteJSONSuccess(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONSuccess(rr, http.StatusCreated, map[string]int{"days_remaining": 16})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"days_remaining":16},"error":null}`, rr.Body.String())
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid date", fmt.Errorf("%w: \"x\"", domain.ErrInvalidDate), http.StatusUnprocessableEntity, ErrCodeUnprocessable},
		{"invalid email", domain.ErrInvalidEmail, http.StatusBadRequest, ErrCodeBadRequest},
		{"bad document", fmt.Errorf("%w: empty document", domain.ErrInvalidDocument), http.StatusBadRequest, ErrCodeBadRequest},
		{"token", domain.ErrInvalidToken, http.StatusUnauthorized, ErrCodeUnauthorized},
		{"page", domain.ErrPageNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"assistant", fmt.Errorf("%w: quota", domain.ErrAssistantUnavailable), http.StatusBadGateway, ErrCodeBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := StatusForError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestWriteDomainError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	req := httptest.NewRequest(http.MethodPost, "/api/eligibility", nil)

	t.Run("client error keeps message", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteDomainError(rr, req, logger, domain.ErrQuestionTooLong)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"data":null,"error":{"code":"bad_request","message":"question is too long"}}`, rr.Body.String())
	})

	t.Run("internal error hides details", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteDomainError(rr, req, logger, errors.New("dial tcp: secret host"))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "secret host")
		assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	})
}
