package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	texttemplate "text/template"

	"citizenshipbridge/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

const (
	subjectSuffix = "_subject.txt"
	htmlSuffix    = ".html"
	textSuffix    = ".txt"
)

// message is one email template compiled in its three parts.
type message struct {
	subject *texttemplate.Template
	html    *template.Template
	text    *texttemplate.Template
}

// templateRenderer implements domain.EmailTemplateRenderer over the embedded templates.
// Every message is parsed once at construction.
type templateRenderer struct {
	messages map[string]*message
}

// NewTemplateRenderer compiles every message under templates/. A message named
// "x" consists of x_subject.txt, x.html and x.txt; a missing part is an error.
func NewTemplateRenderer() (domain.EmailTemplateRenderer, error) {
	return newTemplateRenderer(templateFS, "templates")
}

func newTemplateRenderer(fsys fs.FS, dir string) (*templateRenderer, error) {
	subjects, err := fs.Glob(fsys, dir+"/*"+subjectSuffix)
	if err != nil {
		return nil, err
	}
	r := &templateRenderer{messages: make(map[string]*message, len(subjects))}
	for _, path := range subjects {
		name := strings.TrimSuffix(path[len(dir)+1:], subjectSuffix)
		m := &message{}
		if m.subject, err = texttemplate.New(name+subjectSuffix).Option("missingkey=error").ParseFS(fsys, path); err != nil {
			return nil, fmt.Errorf("email template %s: %w", name, err)
		}
		if m.html, err = template.New(name+htmlSuffix).Option("missingkey=error").ParseFS(fsys, dir+"/"+name+htmlSuffix); err != nil {
			return nil, fmt.Errorf("email template %s: %w", name, err)
		}
		if m.text, err = texttemplate.New(name+textSuffix).Option("missingkey=error").ParseFS(fsys, dir+"/"+name+textSuffix); err != nil {
			return nil, fmt.Errorf("email template %s: %w", name, err)
		}
		r.messages[name] = m
	}
	return r, nil
}

// Render executes the named message (e.g. "eligibility_reminder") with data.
// The subject is collapsed to a single line.
func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	m, ok := r.messages[templateName]
	if !ok {
		return "", "", "", fmt.Errorf("unknown email template %q", templateName)
	}
	var buf bytes.Buffer
	if err := m.subject.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	subject = strings.Join(strings.Fields(buf.String()), " ")

	buf.Reset()
	if err := m.html.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	htmlBody = buf.String()

	buf.Reset()
	if err := m.text.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return subject, htmlBody, buf.String(), nil
}
