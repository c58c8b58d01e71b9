package email

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeSES implements sesAPI for tests.
type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("ses-123")}, nil
}

func TestSESMailer_Send(t *testing.T) {
	t.Run("html and text bodies", func(t *testing.T) {
		client := &fakeSES{}
		m := &sesMailer{client: client, source: `"Citizenship Bridge" <info@citizenshipbridge.org>`, logger: testLogger}

		id, err := m.Send(context.Background(), "ana@example.com", "Subject", "<p>hi</p>", "hi")
		require.NoError(t, err)
		assert.Equal(t, "ses-123", id)
		require.NotNil(t, client.input)
		assert.Equal(t, `"Citizenship Bridge" <info@citizenshipbridge.org>`, aws.ToString(client.input.Source))
		assert.Equal(t, []string{"ana@example.com"}, client.input.Destination.ToAddresses)
		assert.Equal(t, "Subject", aws.ToString(client.input.Message.Subject.Data))
		assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
		assert.Equal(t, "hi", aws.ToString(client.input.Message.Body.Text.Data))
	})
	t.Run("text only", func(t *testing.T) {
		client := &fakeSES{}
		m := &sesMailer{client: client, source: "<info@citizenshipbridge.org>", logger: testLogger}

		_, err := m.Send(context.Background(), "ana@example.com", "Subject", "", "hi")
		require.NoError(t, err)
		assert.Nil(t, client.input.Message.Body.Html)
		assert.Equal(t, "UTF-8", aws.ToString(client.input.Message.Body.Text.Charset))
	})
	t.Run("missing recipient", func(t *testing.T) {
		client := &fakeSES{}
		m := &sesMailer{client: client, source: "<a@b.org>", logger: testLogger}
		_, err := m.Send(context.Background(), "", "s", "", "t")
		require.Error(t, err)
		assert.Nil(t, client.input)
	})
	t.Run("provider error", func(t *testing.T) {
		m := &sesMailer{client: &fakeSES{err: assert.AnError}, source: "<a@b.org>", logger: testLogger}
		_, err := m.Send(context.Background(), "ana@example.com", "s", "", "t")
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name     string
		config   MailerConfig
		wantNoop bool
		wantErr  bool
	}{
		{"noop", MailerConfig{Provider: "noop"}, true, false},
		{"empty provider", MailerConfig{}, true, false},
		{"unknown provider", MailerConfig{Provider: "smtp"}, true, false},
		{"ses", MailerConfig{Provider: "ses", FromAddress: "info@citizenshipbridge.org", SES: SESConfig{Region: "us-east-1"}}, false, false},
		{"ses without region", MailerConfig{Provider: "ses", FromAddress: "info@citizenshipbridge.org"}, false, true},
		{"ses without from", MailerConfig{Provider: "ses", SES: SESConfig{Region: "us-east-1"}}, false, true},
		{"ses with malformed from", MailerConfig{Provider: "ses", FromAddress: "not an address", SES: SESConfig{Region: "us-east-1"}}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.config, testLogger)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, isNoop := m.(*noopMailer)
			assert.Equal(t, tt.wantNoop, isNoop)
		})
	}
}

func TestNewSESMailer_Source(t *testing.T) {
	tests := []struct {
		name       string
		fromName   string
		wantSource string
	}{
		{"plain name is quoted", "Citizenship Bridge", `"Citizenship Bridge" <info@citizenshipbridge.org>`},
		{"no name", "", "<info@citizenshipbridge.org>"},
		{"non-ASCII name is encoded", "Ponte Cidadania – São Paulo", "=?utf-8?q?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := newSESMailer(MailerConfig{
				Provider:    "ses",
				FromAddress: "info@citizenshipbridge.org",
				FromName:    tt.fromName,
				SES:         SESConfig{Region: "us-east-1", AccessKeyID: "AKID", SecretAccessKey: "secret"},
			}, testLogger)
			require.NoError(t, err)
			assert.Contains(t, m.source, tt.wantSource)
		})
	}
}

func TestNoopMailer_Send(t *testing.T) {
	m := &noopMailer{logger: testLogger}
	id, err := m.Send(context.Background(), "ana@example.com", "s", "h", "t")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "noop-"))
}
