package domain

import (
	"context"
	"regexp"
	"strings"
	"time"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether email has valid address syntax.
func ValidEmail(email string) bool {
	return emailRegexp.MatchString(strings.TrimSpace(email))
}

// ReminderRequest asks for an email reminder close to the eligibility date.
// It is handed once to a ReminderDispatcher and not retained.
type ReminderRequest struct {
	Name            string
	Email           string
	EligibilityDate time.Time
}

// NewReminderRequest trims and validates name and email. Both are required
// together; the caller decides whether a reminder was asked for at all.
func NewReminderRequest(name, email string, eligibilityDate time.Time) (ReminderRequest, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return ReminderRequest{}, ErrReminderIncomplete
	}
	if !emailRegexp.MatchString(email) {
		return ReminderRequest{}, ErrInvalidEmail
	}
	return ReminderRequest{Name: name, Email: email, EligibilityDate: eligibilityDate}, nil
}

// WantsReminder reports whether either reminder field was filled in.
func WantsReminder(name, email string) bool {
	return strings.TrimSpace(name) != "" || strings.TrimSpace(email) != ""
}

// ReminderResult is the outcome of one dispatch attempt. Err is set on failure.
type ReminderResult struct {
	Sent      bool
	MessageID string
	Err       error
}

// ReminderDispatcher sends eligibility reminders. Dispatch is attempted at most
// once per call and never retried.
type ReminderDispatcher interface {
	Dispatch(ctx context.Context, req ReminderRequest) ReminderResult
}
