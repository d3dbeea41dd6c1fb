package languages

import (
	"testing"

	"github.com/c3p0-box/localize/locale"
)

func TestDefaultTableIsSuperset(t *testing.T) {
	// Every key in every table must exist in the default table, it is the
	// terminal fallback for all of them
	defaults := packs[DefaultLocale]
	if len(defaults) == 0 {
		t.Fatal("Default table should not be empty")
	}

	for code, table := range packs {
		if len(table) == 0 {
			t.Errorf("Table %q should not be empty", code)
		}
		for key, template := range table {
			if _, exists := defaults[key]; !exists {
				t.Errorf("Table %q has key %q that is missing from the default table", code, key)
			}
			if template == "" {
				t.Errorf("Table %q has an empty template for key %q", code, key)
			}
		}
	}
}

func TestLocaleCodesAreValid(t *testing.T) {
	for _, code := range Locales() {
		parsed, err := locale.Parse(code)
		if err != nil {
			t.Errorf("Locale %q should parse: %v", code, err)
			continue
		}
		// Table codes must already be canonical so registry lookups match
		if string(parsed) != code {
			t.Errorf("Locale %q is not canonical, expected %q", code, parsed)
		}
	}
}

func TestLocales(t *testing.T) {
	codes := Locales()
	if len(codes) != len(packs) {
		t.Errorf("Expected %d locales, got %d", len(packs), len(codes))
	}

	// Sorted order
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("Locales should be sorted, got %q before %q", codes[i-1], codes[i])
		}
	}

	found := false
	for _, code := range codes {
		if code == DefaultLocale {
			found = true
		}
	}
	if !found {
		t.Errorf("Locales should include the default locale %q", DefaultLocale)
	}
}

func TestMessages(t *testing.T) {
	t.Run("returns a detached copy", func(t *testing.T) {
		first := Messages("fr")
		if first == nil {
			t.Fatal("Messages(\"fr\") should not be nil")
		}
		first["NotNullValidator"] = "mutated"

		second := Messages("fr")
		if second["NotNullValidator"] == "mutated" {
			t.Error("Mutating a returned table should not affect later calls")
		}
	})

	t.Run("unknown locale yields nil", func(t *testing.T) {
		if got := Messages("gu-IN"); got != nil {
			t.Errorf("Expected nil for unknown locale, got %v", got)
		}
	})
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != len(packs) {
		t.Errorf("Expected %d tables, got %d", len(packs), len(all))
	}

	all[DefaultLocale]["NotNullValidator"] = "mutated"
	if packs[DefaultLocale]["NotNullValidator"] == "mutated" {
		t.Error("Mutating the result of All should not affect the built-in tables")
	}
}

func TestWellKnownTemplates(t *testing.T) {
	// These exact strings are relied on by downstream fallback tests
	if got := packs["en"]["NotNullValidator"]; got != "'{PropertyName}' must not be empty." {
		t.Errorf("Unexpected default NotNullValidator template: %q", got)
	}
	if got := packs["fr"]["NotNullValidator"]; got != "'{PropertyName}' ne doit pas avoir la valeur null." {
		t.Errorf("Unexpected French NotNullValidator template: %q", got)
	}

	// Regional fallback relies on fr-FR having no table of its own
	if _, exists := packs["fr-FR"]; exists {
		t.Error("No fr-FR table should exist, fr-FR resolves through its parent")
	}
}
