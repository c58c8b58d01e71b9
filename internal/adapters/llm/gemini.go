package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"citizenshipbridge/internal/domain"
)

const (
	DefaultModel       = "gemini-2.0-flash"
	defaultTemperature = float32(0.2)
)

var errEmptyResponse = errors.New("model returned no text")

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiModel implements domain.LanguageModel with the Gemini API.
type GeminiModel struct {
	models contentGenerator
	model  string
}

// NewGeminiModel creates a Gemini-backed LanguageModel.
func NewGeminiModel(ctx context.Context, apiKey, model string) (*GeminiModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiModel{models: client.Models, model: model}, nil
}

// Generate answers prompt under the given system instruction.
func (m *GeminiModel) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{Temperature: genai.Ptr(defaultTemperature)}
	if systemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}
	return m.generate(ctx, genai.Text(prompt), config)
}

// GenerateWithDocument sends prompt together with an inline document.
func (m *GeminiModel) GenerateWithDocument(ctx context.Context, prompt string, doc domain.Document) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(doc.Data, doc.MIMEType),
		}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{Temperature: genai.Ptr(defaultTemperature)}
	return m.generate(ctx, contents, config)
}

func (m *GeminiModel) generate(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	resp, err := m.models.GenerateContent(ctx, m.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errEmptyResponse
	}
	return text, nil
}

// Name returns the model name.
func (m *GeminiModel) Name() string {
	return fmt.Sprintf("genai:%s", m.model)
}
