package i18n

import (
	"github.com/goccy/go-json"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Service resolves a message key into localized response text. A key absent
// from every catalog resolves to itself, so a catalog gap never breaks the
// response envelope.
type Service interface {
	T(lang string, key string, params map[string]any) string
}

type I18nService struct {
	bundle *i18n.Bundle
}

// Catalog files, relative to the process working directory. English is the
// fallback language for anything the requested locale lacks.
var messageFiles = []string{
	"./internal/i18n/en.json",
	"./internal/i18n/de.json",
}

func NewInitI18nService() *I18nService {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, file := range messageFiles {
		bundle.MustLoadMessageFile(file)
	}

	return &I18nService{bundle: bundle}
}

func (s *I18nService) T(lang string, key string, params map[string]any) string {
	localizer := i18n.NewLocalizer(s.bundle, lang)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: params,
	})
	if err != nil {
		return key
	}

	return msg
}
