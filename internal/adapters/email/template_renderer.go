package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	texttemplate "text/template"

	"roomscheduler/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

type executor interface {
	Execute(w io.Writer, data any) error
}

// templateRenderer implements domain.EmailTemplateRenderer using embedded template files.
type templateRenderer struct{}

// NewTemplateRenderer returns an EmailTemplateRenderer backed by the embedded templates folder.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{}
}

// Render executes <name>_subject.txt, <name>.html and <name>.txt with data.
func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	if subject, err = renderFile(templateName+"_subject.txt", data, false); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	if htmlBody, err = renderFile(templateName+".html", data, true); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	if textBody, err = renderFile(templateName+".txt", data, false); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return strings.TrimSpace(subject), htmlBody, textBody, nil
}

func renderFile(name string, data any, html bool) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", err
	}
	var t executor
	if html {
		t, err = htmltemplate.New(name).Parse(string(raw))
	} else {
		t, err = texttemplate.New(name).Parse(string(raw))
	}
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
