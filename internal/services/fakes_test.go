package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"citizenshipbridge/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fixedClock implements domain.Clock for tests.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// fakeCalendar implements domain.CalendarEncoder for tests.
type fakeCalendar struct {
	gotGreenCard time.Time
	gotResult    domain.EligibilityResult
	err          error
}

func (f *fakeCalendar) Encode(greenCardDate time.Time, result domain.EligibilityResult, now time.Time) ([]byte, error) {
	f.gotGreenCard = greenCardDate
	f.gotResult = result
	if f.err != nil {
		return nil, f.err
	}
	return []byte("BEGIN:VCALENDAR"), nil
}

// fakeMailer implements domain.Mailer for tests.
type fakeMailer struct {
	to, subject, html, text string
	calls                   int
	err                     error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) (string, error) {
	f.calls++
	f.to, f.subject, f.html, f.text = to, subject, html, text
	if f.err != nil {
		return "", f.err
	}
	return "msg-1", nil
}

// fakeRenderer implements domain.EmailTemplateRenderer for tests.
type fakeRenderer struct {
	gotName string
	gotData any
	err     error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	f.gotName, f.gotData = name, data
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	got   *domain.EligibilityReminderEmailData
	calls int
	err   error
}

func (f *fakeEmailService) SendEligibilityReminder(ctx context.Context, data *domain.EligibilityReminderEmailData) (string, error) {
	f.calls++
	f.got = data
	if f.err != nil {
		return "", f.err
	}
	return "msg-42", nil
}

type plainRedactor struct{}

func (plainRedactor) Redact(v string) string { return "redacted" }

// fakeModel implements domain.LanguageModel for tests.
type fakeModel struct {
	reply       string
	err         error
	gotSystem   string
	gotPrompt   string
	gotDocument domain.Document
}

func (f *fakeModel) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	f.gotSystem, f.gotPrompt = systemPrompt, prompt
	return f.reply, f.err
}

func (f *fakeModel) GenerateWithDocument(ctx context.Context, prompt string, doc domain.Document) (string, error) {
	f.gotPrompt, f.gotDocument = prompt, doc
	return f.reply, f.err
}

// upperRenderer implements domain.MarkdownRenderer for tests.
type upperRenderer struct{}

func (upperRenderer) Render(md string) (string, error) { return "<p>" + md + "</p>", nil }
