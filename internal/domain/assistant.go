package domain

import "context"

// Answer is the assistant's reply: the raw Markdown text and its HTML rendering.
// swagger:model Answer
type Answer struct {
	Text string `json:"answer"`
	HTML string `json:"answer_html"`
}

// Document is a file attached for summarization.
type Document struct {
	MIMEType string
	Data     []byte
}

// LanguageModel is the hosted completion endpoint.
type LanguageModel interface {
	Generate(ctx context.Context, systemPrompt, prompt string) (string, error)
	GenerateWithDocument(ctx context.Context, prompt string, doc Document) (string, error)
}

// MarkdownRenderer turns assistant Markdown into safe HTML.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// AssistantService answers naturalization questions and summarizes documents.
type AssistantService interface {
	Answer(ctx context.Context, question string) (*Answer, error)
	Summarize(ctx context.Context, dataURI string) (string, error)
}
