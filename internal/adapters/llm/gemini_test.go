package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"citizenshipbridge/internal/domain"
)

// fakeModels implements contentGenerator for tests.
type fakeModels struct {
	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig
	reply       string
	err         error
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel, f.gotContents, f.gotConfig = model, contents, config
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: f.reply}}},
		}},
	}, nil
}

func TestGeminiModel_Generate(t *testing.T) {
	fake := &fakeModels{reply: "**Yes.**\n"}
	m := &GeminiModel{models: fake, model: "test-model"}

	got, err := m.Generate(context.Background(), "system", "Question: hi")
	require.NoError(t, err)
	assert.Equal(t, "**Yes.**", got)
	assert.Equal(t, "test-model", fake.gotModel)
	assert.Equal(t, "genai:test-model", m.Name())
	require.Len(t, fake.gotContents, 1)
	assert.Equal(t, "Question: hi", fake.gotContents[0].Parts[0].Text)
	require.NotNil(t, fake.gotConfig.SystemInstruction)
	assert.Equal(t, "system", fake.gotConfig.SystemInstruction.Parts[0].Text)
	assert.Equal(t, defaultTemperature, *fake.gotConfig.Temperature)
}

func TestGeminiModel_GenerateWithDocument(t *testing.T) {
	fake := &fakeModels{reply: "summary"}
	m := &GeminiModel{models: fake, model: "test-model"}

	got, err := m.GenerateWithDocument(context.Background(), "summarize", domain.Document{MIMEType: "application/pdf", Data: []byte("%PDF")})
	require.NoError(t, err)
	assert.Equal(t, "summary", got)
	require.Len(t, fake.gotContents, 1)
	parts := fake.gotContents[0].Parts
	require.Len(t, parts, 2)
	assert.Equal(t, "summarize", parts[0].Text)
	require.NotNil(t, parts[1].InlineData)
	assert.Equal(t, "application/pdf", parts[1].InlineData.MIMEType)
	assert.Equal(t, []byte("%PDF"), parts[1].InlineData.Data)
}

func TestGeminiModel_Errors(t *testing.T) {
	_, err := (&GeminiModel{models: &fakeModels{err: assert.AnError}, model: "m"}).Generate(context.Background(), "", "q")
	require.ErrorIs(t, err, assert.AnError)

	_, err = (&GeminiModel{models: &fakeModels{reply: "  "}, model: "m"}).Generate(context.Background(), "", "q")
	require.ErrorIs(t, err, errEmptyResponse)
}

func TestNewGeminiModel_RequiresKey(t *testing.T) {
	_, err := NewGeminiModel(context.Background(), "", "")
	require.Error(t, err)
}

func TestDisabled(t *testing.T) {
	var m domain.LanguageModel = Disabled{}

	_, err := m.Generate(context.Background(), "system", "hi")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = m.GenerateWithDocument(context.Background(), "summarize", domain.Document{MIMEType: "text/plain", Data: []byte("x")})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
