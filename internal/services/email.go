package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"citizenshipbridge/internal/domain"
)

const eligibilityReminderTemplate = "eligibility_reminder"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	redactor domain.Redactor
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that renders messages with renderer
// and hands them to mailer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, redactor domain.Redactor, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, redactor: redactor, logger: logger}
}

func (s *emailService) SendEligibilityReminder(ctx context.Context, data *domain.EligibilityReminderEmailData) (string, error) {
	if data == nil {
		return "", errors.New("eligibility reminder data is nil")
	}
	return s.send(ctx, data.Email, eligibilityReminderTemplate, data)
}

// send renders the named template and mails it to a single recipient.
func (s *emailService) send(ctx context.Context, to, template string, data any) (string, error) {
	if !domain.ValidEmail(to) {
		return "", fmt.Errorf("%s: %w", template, domain.ErrInvalidEmail)
	}
	subject, html, text, err := s.renderer.Render(template, data)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", template, err)
	}
	id, err := s.mailer.Send(ctx, to, subject, html, text)
	if err != nil {
		return "", fmt.Errorf("send %s: %w", template, err)
	}
	s.logger.InfoContext(ctx, "email sent", "template", template, "to", s.redactor.Redact(to), "message_id", id)
	return id, nil
}
