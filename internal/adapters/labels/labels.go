package labels

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"citizenshipbridge/internal/domain"
)

//go:embed locales/*.json
var localeFS embed.FS

const defaultLocaleFile = "locales/active.en.json"

type bundleLabels struct {
	localizer *i18n.Localizer
	logger    *slog.Logger
}

// New loads the embedded English label bundle.
func New(logger *slog.Logger) (domain.Labels, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	if _, err := bundle.LoadMessageFileFS(localeFS, defaultLocaleFile); err != nil {
		return nil, fmt.Errorf("load labels: %w", err)
	}
	return &bundleLabels{
		localizer: i18n.NewLocalizer(bundle, language.English.String()),
		logger:    logger,
	}, nil
}

func (l *bundleLabels) Label(id string) string {
	return l.Format(id, nil)
}

func (l *bundleLabels) Format(id string, data map[string]any) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		l.logger.Debug("label missing", "id", id, "err", err)
		return id
	}
	return msg
}
