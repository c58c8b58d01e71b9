package domain

import (
	"context"
	"time"
)

// EligibilityService computes eligibility estimates against the service clock.
type EligibilityService interface {
	Today() time.Time
	Calculate(ctx context.Context, in EligibilityInput) EligibilityResult
	ParseGreenCardDate(text string) (EligibilityInput, error)
	Calendar(ctx context.Context, in EligibilityInput) ([]byte, error)
}

// CalendarEncoder renders an eligibility estimate as an iCalendar document.
type CalendarEncoder interface {
	Encode(greenCardDate time.Time, result EligibilityResult, now time.Time) ([]byte, error)
}

// TokenIssuer issues anonymous visitor session tokens.
type TokenIssuer interface {
	Issue(visitorID string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a visitor token and returns the visitor ID.
type TokenVerifier interface {
	Verify(token string) (visitorID string, err error)
}

// Redactor hides personal data, such as email addresses, in log output.
type Redactor interface {
	Redact(value string) string
}
