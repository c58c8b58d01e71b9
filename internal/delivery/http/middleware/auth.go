package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "citizenshipbridge/internal/delivery/http/helpers"
	"citizenshipbridge/internal/domain"
)

type contextKey string

const (
	visitorIDKey contextKey = "visitorID"
	requestIDKey contextKey = "requestID"
)

// SetVisitorID returns a context with the visitor ID set. Used by RequireVisitor.
func SetVisitorID(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, visitorIDKey, visitorID)
}

// VisitorIDFromContext returns the visitor ID from the context, if present.
func VisitorIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(visitorIDKey).(string)
	return id, ok
}

// bearerToken extracts the token from an "Authorization: Bearer" header. On
// failure it returns the message sent back to the client.
func bearerToken(header string) (token, problem string) {
	if header == "" {
		return "", "missing authorization header"
	}
	scheme, rest, ok := strings.Cut(header, " ")
	if !ok || scheme != "Bearer" {
		return "", "invalid authorization format"
	}
	if token = strings.TrimSpace(rest); token == "" {
		return "", "missing token"
	}
	return token, ""
}

// RequireVisitor rejects requests without a valid visitor token with 401 and
// stores the visitor ID in the context of the ones it lets through.
func RequireVisitor(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, problem := bearerToken(r.Header.Get("Authorization"))
			if problem != "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, problem)
				return
			}
			visitorID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "visitor token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetVisitorID(r.Context(), visitorID)))
		}
	}
}
