// Package languages ships the built-in validation message tables, one locale
// per file. The tables are plain data: locale codes mapped to translation
// keys mapped to message templates with single-brace placeholders such as
// {PropertyName}. Keys are validator identities ("NotNullValidator",
// "LengthValidator", ...) plus the _Simple variants used when a rule opts
// out of the entered-length detail.
//
// English is the default table and carries every key; the other tables may
// be sparse, resolution falls back to English for anything they omit.
package languages

import "sort"

// DefaultLocale is the locale every resolution chain terminates at. Its
// table must contain an entry for every key used anywhere in the library.
const DefaultLocale = "en"

// packs maps locale codes to their message tables.
var packs = map[string]map[string]string{
	"en":    englishMessages,
	"cs":    czechMessages,
	"da":    danishMessages,
	"de":    germanMessages,
	"es":    spanishMessages,
	"fr":    frenchMessages,
	"it":    italianMessages,
	"ja":    japaneseMessages,
	"ko":    koreanMessages,
	"nl":    dutchMessages,
	"pl":    polishMessages,
	"pt":    portugueseMessages,
	"pt-BR": brazilianPortugueseMessages,
	"ro":    romanianMessages,
	"ru":    russianMessages,
	"sv":    swedishMessages,
	"tr":    turkishMessages,
	"uk":    ukrainianMessages,
	"zh-CN": simplifiedChineseMessages,
}

// Locales returns the built-in locale codes in sorted order.
func Locales() []string {
	codes := make([]string, 0, len(packs))
	for code := range packs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Messages returns a copy of the message table for code, or nil when no
// built-in table exists for it.
func Messages(code string) map[string]string {
	table, exists := packs[code]
	if !exists {
		return nil
	}
	copied := make(map[string]string, len(table))
	for key, template := range table {
		copied[key] = template
	}
	return copied
}

// All returns a copy of every built-in table keyed by locale code.
func All() map[string]map[string]string {
	copied := make(map[string]map[string]string, len(packs))
	for code := range packs {
		copied[code] = Messages(code)
	}
	return copied
}
