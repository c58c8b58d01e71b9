package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"citizenshipbridge/internal/domain"
)

type reminderDispatcher struct {
	emailService   domain.EmailService
	siteURL        string
	redactor       domain.Redactor
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewReminderDispatcher returns a ReminderDispatcher that emails the reminder
// right away. Delivery closer to the eligibility date is left to the mail
// provider; nothing is stored locally.
func NewReminderDispatcher(emailService domain.EmailService, siteURL string, redactor domain.Redactor, logger *slog.Logger, timeout time.Duration) domain.ReminderDispatcher {
	return &reminderDispatcher{
		emailService:   emailService,
		siteURL:        strings.TrimSuffix(siteURL, "/"),
		redactor:       redactor,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (d *reminderDispatcher) Dispatch(ctx context.Context, req domain.ReminderRequest) domain.ReminderResult {
	ctx, cancel := context.WithTimeout(ctx, d.contextTimeout)
	defer cancel()

	data := &domain.EligibilityReminderEmailData{
		Name:            req.Name,
		Email:           req.Email,
		EligibilityDate: req.EligibilityDate.Format(domain.LongDateLayout),
	}
	if d.siteURL != "" {
		data.SiteURL = d.siteURL + "/citizenship-timer"
	}
	id, err := d.emailService.SendEligibilityReminder(ctx, data)
	if err != nil {
		d.logger.WarnContext(ctx, "reminder dispatch failed", "to", d.redactor.Redact(req.Email), "err", err)
		return domain.ReminderResult{Err: err}
	}
	return domain.ReminderResult{Sent: true, MessageID: id}
}
