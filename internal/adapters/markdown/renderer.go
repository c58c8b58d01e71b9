package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"citizenshipbridge/internal/domain"
)

type goldmarkRenderer struct {
	md goldmark.Markdown
}

// NewRenderer returns a MarkdownRenderer for assistant answers. Raw HTML in
// the model output is dropped, never passed through.
func NewRenderer() domain.MarkdownRenderer {
	return &goldmarkRenderer{
		md: goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps())),
	}
}

func (r *goldmarkRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
