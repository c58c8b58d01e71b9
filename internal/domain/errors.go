package domain

import "errors"

// Sentinel errors shared by services and controllers.
var (
	ErrInvalidDate          = errors.New("invalid green card date")
	ErrReminderIncomplete   = errors.New("both name and email are required for reminders")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrEmptyQuestion        = errors.New("question is required")
	ErrQuestionTooLong      = errors.New("question is too long")
	ErrInvalidDocument      = errors.New("invalid document")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrPageNotFound         = errors.New("page not found")
)
