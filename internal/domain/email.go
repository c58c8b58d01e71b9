package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
// It returns the provider's message ID when one is available.
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) (messageID string, err error)
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EligibilityReminderEmailData holds data for the eligibility reminder email.
type EligibilityReminderEmailData struct {
	Name            string
	Email           string
	EligibilityDate string // long form, e.g. "October 17, 2024"
	SiteURL         string // optional link back to the timer page
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendEligibilityReminder(ctx context.Context, data *EligibilityReminderEmailData) (messageID string, err error)
}
