package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"citizenshipbridge/internal/domain"
)

// Assistant limits.
const (
	MaxQuestionLength = 2000
	MaxDocumentBytes  = 10 << 20
)

const answerSystemPrompt = `You are an expert on the U.S. naturalization process. Answer the question clearly, accurately, and comprehensively.
Format your response using Markdown:
- Use **bold text** for headings or very important terms (e.g., "**Step 1: Determine Eligibility**").
- Use numbered lists for sequential steps or lists of items (e.g., "1. First item\n2. Second item").
- Use an empty line to separate paragraphs and list items.
- Separate list items with an empty line when they contain more than a short phrase.`

const summaryPrompt = `You are an expert in naturalization processes. Summarize the attached document related to a naturalization case, extracting the key information.`

var allowedDocumentTypes = []string{"application/pdf", "text/plain", "image/"}

type assistantService struct {
	model          domain.LanguageModel
	markdown       domain.MarkdownRenderer
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewAssistantService returns an AssistantService backed by the given language model.
func NewAssistantService(model domain.LanguageModel, markdown domain.MarkdownRenderer, logger *slog.Logger, timeout time.Duration) domain.AssistantService {
	return &assistantService{
		model:          model,
		markdown:       markdown,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *assistantService) Answer(ctx context.Context, question string) (*domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.ErrEmptyQuestion
	}
	if utf8.RuneCountInString(question) > MaxQuestionLength {
		return nil, domain.ErrQuestionTooLong
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	start := time.Now()
	text, err := s.model.Generate(ctx, answerSystemPrompt, "Question: "+question)
	if err != nil {
		s.logger.ErrorContext(ctx, "assistant request failed", "err", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}
	text = strings.TrimSpace(text)
	html, err := s.markdown.Render(text)
	if err != nil {
		return nil, fmt.Errorf("render answer: %w", err)
	}
	s.logger.InfoContext(ctx, "assistant answered",
		"question_len", len(question),
		"answer_len", len(text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &domain.Answer{Text: text, HTML: html}, nil
}

func (s *assistantService) Summarize(ctx context.Context, dataURI string) (string, error) {
	doc, err := ParseDataURI(dataURI)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	summary, err := s.model.GenerateWithDocument(ctx, summaryPrompt, doc)
	if err != nil {
		s.logger.ErrorContext(ctx, "document summary failed", "mime_type", doc.MIMEType, "err", err)
		return "", fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}
	return strings.TrimSpace(summary), nil
}

// ParseDataURI decodes a base64 data URI of the form
// data:<mimetype>;base64,<payload> into a Document.
func ParseDataURI(uri string) (domain.Document, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return domain.Document{}, fmt.Errorf("%w: expected a data URI", domain.ErrInvalidDocument)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return domain.Document{}, fmt.Errorf("%w: missing payload", domain.ErrInvalidDocument)
	}
	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return domain.Document{}, fmt.Errorf("%w: payload must be base64 encoded", domain.ErrInvalidDocument)
	}
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if !documentTypeAllowed(mimeType) {
		return domain.Document{}, fmt.Errorf("%w: unsupported type %q", domain.ErrInvalidDocument, mimeType)
	}
	// DecodedLen counts padding, so allow one block of slack before decoding.
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxDocumentBytes+3 {
		return domain.Document{}, fmt.Errorf("%w: document exceeds %d bytes", domain.ErrInvalidDocument, MaxDocumentBytes)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	if len(data) > MaxDocumentBytes {
		return domain.Document{}, fmt.Errorf("%w: document exceeds %d bytes", domain.ErrInvalidDocument, MaxDocumentBytes)
	}
	if len(data) == 0 {
		return domain.Document{}, fmt.Errorf("%w: empty document", domain.ErrInvalidDocument)
	}
	return domain.Document{MIMEType: mimeType, Data: data}, nil
}

func documentTypeAllowed(mimeType string) bool {
	for _, t := range allowedDocumentTypes {
		if strings.HasSuffix(t, "/") {
			// Prefix entries need a subtype.
			if strings.HasPrefix(mimeType, t) && len(mimeType) > len(t) {
				return true
			}
			continue
		}
		if mimeType == t {
			return true
		}
	}
	return false
}
