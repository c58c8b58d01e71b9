package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"citizenshipbridge/internal/delivery/http/helpers"
	"citizenshipbridge/internal/domain"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// testToday is the fixed "today" of every controller test.
var testToday = time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)

// fakeEligibilityService implements domain.EligibilityService on the real
// calculator with a fixed today.
type fakeEligibilityService struct {
	calendarErr  error
	calendarBody []byte
	lastCalendar domain.EligibilityInput
}

func (f *fakeEligibilityService) Today() time.Time { return testToday }

func (f *fakeEligibilityService) Calculate(_ context.Context, in domain.EligibilityInput) domain.EligibilityResult {
	return domain.CalculateEligibility(in.GreenCardDate, testToday)
}

func (f *fakeEligibilityService) ParseGreenCardDate(text string) (domain.EligibilityInput, error) {
	d, ok := domain.TryParseDisplayDate(strings.TrimSpace(text), testToday)
	if !ok {
		return domain.EligibilityInput{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, text)
	}
	return domain.EligibilityInput{GreenCardDate: d}, nil
}

func (f *fakeEligibilityService) Calendar(_ context.Context, in domain.EligibilityInput) ([]byte, error) {
	f.lastCalendar = in
	if f.calendarErr != nil {
		return nil, f.calendarErr
	}
	return f.calendarBody, nil
}

// fakeDispatcher implements domain.ReminderDispatcher.
type fakeDispatcher struct {
	err   error
	calls int
	last  domain.ReminderRequest
}

func (f *fakeDispatcher) Dispatch(_ context.Context, req domain.ReminderRequest) domain.ReminderResult {
	f.calls++
	f.last = req
	if f.err != nil {
		return domain.ReminderResult{Err: f.err}
	}
	return domain.ReminderResult{Sent: true, MessageID: "msg-1"}
}

// fakeAssistantService implements domain.AssistantService.
type fakeAssistantService struct {
	answer       *domain.Answer
	summary      string
	err          error
	lastQuestion string
	lastDocument string
}

func (f *fakeAssistantService) Answer(_ context.Context, question string) (*domain.Answer, error) {
	f.lastQuestion = question
	if f.err != nil {
		return nil, f.err
	}
	return f.answer, nil
}

func (f *fakeAssistantService) Summarize(_ context.Context, dataURI string) (string, error) {
	f.lastDocument = dataURI
	if f.err != nil {
		return "", f.err
	}
	return f.summary, nil
}

// fakeIssuer implements domain.TokenIssuer.
type fakeIssuer struct {
	err           error
	lastVisitorID string
	lastExpiry    time.Duration
}

func (f *fakeIssuer) Issue(visitorID string, expiry time.Duration) (string, error) {
	f.lastVisitorID = visitorID
	f.lastExpiry = expiry
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + visitorID, nil
}

// fakeLabels implements domain.Labels by echoing IDs and data.
type fakeLabels struct{}

func (fakeLabels) Label(id string) string { return id }

func (fakeLabels) Format(id string, data map[string]any) string {
	var b strings.Builder
	b.WriteString(id)
	for _, k := range []string{"Days", "Email", "Year"} {
		if v, ok := data[k]; ok {
			fmt.Fprintf(&b, " %s=%v", k, v)
		}
	}
	return b.String()
}

// fakeContent implements domain.ContentRepository.
type fakeContent struct {
	pages map[string]*domain.Page
	err   error
}

func (f *fakeContent) Organization() domain.Organization {
	return domain.Organization{Name: "Citizenship Bridge Inc.", Email: "info@example.org", Phone: "+1-555-0100"}
}

func (f *fakeContent) Navigation() []domain.Link {
	return []domain.Link{{Label: "Home", Href: "/"}, {Label: "About Us", Href: "/about"}}
}

func (f *fakeContent) Page(slug string) (*domain.Page, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.pages[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPageNotFound, slug)
	}
	return p, nil
}

var errBoom = errors.New("boom")

// decodeEnvelope decodes the API envelope and returns the raw data for further decoding.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) (json.RawMessage, *helpers.APIError) {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope.Data, envelope.Error
}
