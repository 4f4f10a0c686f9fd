package i18n

import (
	"embed"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"roomscheduler/internal/domain"
)

//go:embed active.*.toml
var localeFS embed.FS

var localeFiles = []string{"active.en.toml", "active.ko.toml"}

var _ domain.Translator = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *slog.Logger
}

// NewTranslator builds a Translator from the embedded active.*.toml files,
// falling back to defaultLocale (English if it does not parse).
func NewTranslator(defaultLocale string, logger *slog.Logger) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Warn("i18n: failed to load message file", "file", file, "err", err)
		}
	}

	return &Translator{bundle: bundle, defaultLanguage: tag, logger: logger}
}

// Translate renders v for the languages in acceptLanguage, then the default
// language, and finally returns v.Message untouched.
func (t *Translator) Translate(acceptLanguage string, v domain.Violation) string {
	if v.Code == "" {
		return v.Message
	}
	localizer := i18n.NewLocalizer(t.bundle, acceptLanguage, t.defaultLanguage.String())
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    v.Code,
		TemplateData: v.Data,
	})
	if err != nil {
		t.logger.Debug("i18n: localize failed", "code", v.Code, "accept_language", acceptLanguage, "err", err)
		return v.Message
	}
	return msg
}

// Messages translates every violation of e, keeping their order.
func (t *Translator) Messages(acceptLanguage string, e *domain.ValidationError) []string {
	out := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		out[i] = t.Translate(acceptLanguage, v)
	}
	return out
}
