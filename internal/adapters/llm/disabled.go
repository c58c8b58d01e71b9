package llm

import (
	"context"
	"errors"

	"citizenshipbridge/internal/domain"
)

// ErrNotConfigured is returned by Disabled for every request.
var ErrNotConfigured = errors.New("language model is not configured")

// Disabled is the LanguageModel used when no API key is set.
type Disabled struct{}

func (Disabled) Generate(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) GenerateWithDocument(context.Context, string, domain.Document) (string, error) {
	return "", ErrNotConfigured
}
