package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		contains []string
		excludes []string
	}{
		{
			name:     "bold",
			in:       "**Step 1: Determine Eligibility**",
			contains: []string{"<strong>Step 1: Determine Eligibility</strong>"},
		},
		{
			name:     "numbered list",
			in:       "1. File Form N-400\n\n2. Attend biometrics",
			contains: []string{"<ol>", "<li>", "File Form N-400", "Attend biometrics"},
		},
		{
			name:     "paragraphs",
			in:       "First paragraph.\n\nSecond paragraph.",
			contains: []string{"<p>First paragraph.</p>", "<p>Second paragraph.</p>"},
		},
		{
			name:     "raw html is dropped",
			in:       "Hello <script>alert(1)</script>",
			excludes: []string{"<script>"},
		},
	}
	r := NewRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.in)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, got, s)
			}
		})
	}
}
