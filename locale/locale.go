// Package locale provides the locale code value type used throughout the
// library, plus the collaborator contracts built around it.
//
// A Code is a normalized BCP 47 identifier such as "en" or "fr-FR". Codes are
// produced by Parse, which canonicalizes case and separators, so two codes for
// the same locale always share one string form. A code knows its parent
// ("fr-FR" -> "fr"), which is what the resolution chain walks when a specific
// locale has no entry for a key.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrInvalidCode reports input that cannot be parsed into a locale code.
var ErrInvalidCode = errors.New("locale: invalid locale code")

// Code is a normalized locale identifier (e.g. "en", "fr-FR", "zh-Hans").
// The zero value means "no locale". Construct codes through Parse or
// MustParse; a hand-converted Code bypasses normalization and may not match
// codes stored elsewhere.
type Code string

// Parse normalizes raw into a canonical locale code. Case and separators are
// canonicalized ("fr_fr" -> "fr-FR", "PT-br" -> "pt-BR"). It returns
// ErrInvalidCode for empty or structurally invalid input.
func Parse(raw string) (Code, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidCode)
	}

	// Accept underscore separators the way lenient callers write them
	trimmed = strings.ReplaceAll(trimmed, "_", "-")

	tag, err := language.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, raw)
	}
	return Code(tag.String()), nil
}

// MustParse is like Parse but panics on invalid input. It is intended for
// compiled-in locale data and tests.
func MustParse(raw string) Code {
	code, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return code
}

// Parent returns the next less specific code, derived by dropping the last
// subtag: "fr-FR" -> "fr", "zh-Hans-CN" -> "zh-Hans" -> "zh". It returns the
// zero Code when the receiver is already root-form (or zero). The derivation
// is structural truncation, so fallback order stays predictable regardless of
// CLDR inheritance data.
func (c Code) Parent() Code {
	s := string(c)
	if i := strings.LastIndex(s, "-"); i > 0 {
		return Code(s[:i])
	}
	return ""
}

// Equal reports whether two codes identify the same locale. Comparison is
// case-insensitive so codes that skipped Parse still compare correctly.
func (c Code) Equal(other Code) bool {
	return strings.EqualFold(string(c), string(other))
}

// String returns the canonical string form.
func (c Code) String() string {
	return string(c)
}

// Provider supplies the ambient locale for the current caller, for example
// from a request, session, or goroutine-scoped context. A zero Code result
// means "no preference"; consumers fall back to their default locale.
type Provider interface {
	Locale() Code
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func() Code

// Locale implements the Provider interface.
func (f ProviderFunc) Locale() Code {
	return f()
}

// Fixed returns a provider that always reports the given code.
func Fixed(code Code) Provider {
	return ProviderFunc(func() Code { return code })
}
