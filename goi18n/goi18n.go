// Package goi18n exports catalog and override state to
// github.com/nicksnyder/go-i18n, the library the surrounding ecosystem uses
// for placeholder substitution. The resolution engine itself only hands out
// template strings; applications that want go-i18n's Localizer to render
// them build a bundle here and localize with template data as usual.
//
// Example:
//
//	bundle, err := goi18n.NewBundle(langman.New())
//	localizer := goi18n.NewLocalizer(bundle, locale.MustParse("fr-FR"))
//	msg, err := localizer.Localize(&i18n.LocalizeConfig{
//		MessageID:    "NotNullValidator",
//		TemplateData: map[string]string{"PropertyName": "Nom"},
//	})
//	// "'Nom' ne doit pas avoir la valeur null."
package goi18n

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/c3p0-box/localize/langman"
	"github.com/c3p0-box/localize/locale"
)

// placeholderPattern matches single-brace tokens like {PropertyName}.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z][A-Za-z0-9_]*)\}`)

// Template converts a single-brace message template into go-i18n's
// text/template form: "'{PropertyName}' must not be empty." becomes
// "'{{.PropertyName}}' must not be empty.". Text without placeholders passes
// through unchanged.
func Template(s string) string {
	return placeholderPattern.ReplaceAllString(s, "{{.$1}}")
}

// NewBundle exports the manager's catalogs and overrides as a go-i18n
// bundle. Message IDs are the translation keys; templates are converted with
// Template. Overrides win over catalog entries for the same (locale, key),
// and override-only locales get their own message set. The bundle's default
// language is the manager's default locale.
func NewBundle(m *langman.Manager) (*i18n.Bundle, error) {
	if m == nil {
		return nil, fmt.Errorf("manager cannot be nil")
	}

	registry := m.Registry()
	defaultTag, err := language.Parse(registry.DefaultLocale().String())
	if err != nil {
		return nil, fmt.Errorf("default locale: %w", err)
	}
	bundle := i18n.NewBundle(defaultTag)

	merged := make(map[locale.Code]map[string]string)
	for _, code := range registry.Locales() {
		if catalog, ok := registry.Lookup(code); ok {
			merged[code] = catalog.Messages()
		}
	}
	for code, entries := range m.Overrides().Snapshot() {
		if merged[code] == nil {
			merged[code] = make(map[string]string, len(entries))
		}
		for key, template := range entries {
			merged[code][key] = template
		}
	}

	// Deterministic registration order
	codes := make([]locale.Code, 0, len(merged))
	for code := range merged {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	for _, code := range codes {
		tag, err := language.Parse(code.String())
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", code, err)
		}

		entries := merged[code]
		keys := make([]string, 0, len(entries))
		for key := range entries {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		messages := make([]*i18n.Message, 0, len(keys))
		for _, key := range keys {
			messages = append(messages, &i18n.Message{
				ID:    key,
				Other: Template(entries[key]),
			})
		}
		if err := bundle.AddMessages(tag, messages...); err != nil {
			return nil, fmt.Errorf("locale %q: %w", code, err)
		}
	}
	return bundle, nil
}

// NewLocalizer builds a localizer preferring the given locales in order.
// Zero codes are skipped; with no preferences left the localizer serves the
// bundle's default language.
func NewLocalizer(bundle *i18n.Bundle, codes ...locale.Code) *i18n.Localizer {
	langs := make([]string, 0, len(codes))
	for _, code := range codes {
		if code != "" {
			langs = append(langs, code.String())
		}
	}
	return i18n.NewLocalizer(bundle, langs...)
}
