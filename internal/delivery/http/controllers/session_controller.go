package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"citizenshipbridge/internal/delivery/http/helpers"
	"citizenshipbridge/internal/domain"

	"github.com/google/uuid"
)

// SessionResponse is returned by POST /api/session.
// swagger:model SessionResponse
type SessionResponse struct {
	Token     string    `json:"token"`
	VisitorID string    `json:"visitor_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionSuccessResponse is the success response envelope for POST /api/session (201).
type SessionSuccessResponse struct {
	Data  *SessionResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type SessionController struct {
	Logger *slog.Logger
	Issuer domain.TokenIssuer
	TTL    time.Duration
	Now    func() time.Time
}

func NewSessionController(logger *slog.Logger, issuer domain.TokenIssuer, ttl time.Duration) *SessionController {
	return &SessionController{
		Logger: logger,
		Issuer: issuer,
		TTL:    ttl,
		Now:    time.Now,
	}
}

// CreateSession godoc
// @Summary Start an anonymous visitor session
// @Description Issues a short-lived visitor token for the assistant, summary and reminder endpoints. No account or personal data is involved.
// @Tags session
// @Produce json
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the bearer token"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/session [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	visitorID := uuid.NewString()
	token, err := c.Issuer.Issue(visitorID, c.TTL)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	resp := SessionResponse{
		Token:     token,
		VisitorID: visitorID,
		ExpiresAt: c.Now().Add(c.TTL).UTC().Truncate(time.Second),
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, &resp)
}
