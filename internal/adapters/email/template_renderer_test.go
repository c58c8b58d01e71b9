package email

import (
	"testing"
	"testing/fstest"

	"citizenshipbridge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_EligibilityReminder(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)
	data := &domain.EligibilityReminderEmailData{
		Name:            "Ana <script>",
		Email:           "ana@example.com",
		EligibilityDate: "October 17, 2024",
		SiteURL:         "https://citizenshipbridge.org/citizenship-timer",
	}

	subject, html, text, err := r.Render("eligibility_reminder", data)
	require.NoError(t, err)
	assert.Equal(t, "Your U.S. citizenship eligibility date: October 17, 2024", subject)
	assert.Contains(t, html, "October 17, 2024")
	assert.Contains(t, html, "Ana &lt;script&gt;")
	assert.Contains(t, html, `href="https://citizenshipbridge.org/citizenship-timer"`)
	assert.Contains(t, text, "Hello Ana <script>,")
	assert.Contains(t, text, "Recalculate your estimate at any time: https://citizenshipbridge.org/citizenship-timer")
}

func TestTemplateRenderer_WithoutSiteURL(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	_, html, text, err := r.Render("eligibility_reminder", &domain.EligibilityReminderEmailData{Name: "Li", EligibilityDate: "March 3, 2020"})
	require.NoError(t, err)
	assert.NotContains(t, html, "href=")
	assert.NotContains(t, text, "Recalculate")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	_, _, _, err = r.Render("missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestTemplateRenderer_SubjectIsOneLine(t *testing.T) {
	fsys := fstest.MapFS{
		"t/note_subject.txt": {Data: []byte("Hello\r\n  {{.Name}}\n")},
		"t/note.html":        {Data: []byte("<p>{{.Name}}</p>")},
		"t/note.txt":         {Data: []byte("{{.Name}}")},
	}
	r, err := newTemplateRenderer(fsys, "t")
	require.NoError(t, err)

	subject, _, _, err := r.Render("note", map[string]string{"Name": "Ana\nBcc: x@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ana Bcc: x@example.com", subject)
}

func TestTemplateRenderer_MissingPart(t *testing.T) {
	fsys := fstest.MapFS{
		"t/note_subject.txt": {Data: []byte("Hello")},
		"t/note.txt":         {Data: []byte("body")},
	}
	_, err := newTemplateRenderer(fsys, "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "note")
}

func TestTemplateRenderer_MissingKey(t *testing.T) {
	fsys := fstest.MapFS{
		"t/note_subject.txt": {Data: []byte("{{.Subject}}")},
		"t/note.html":        {Data: []byte("<p>x</p>")},
		"t/note.txt":         {Data: []byte("x")},
	}
	r, err := newTemplateRenderer(fsys, "t")
	require.NoError(t, err)

	_, _, _, err = r.Render("note", map[string]string{})
	require.Error(t, err)
}
