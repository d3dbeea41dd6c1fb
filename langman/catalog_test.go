package langman

import (
	"errors"
	"fmt"
	"testing"

	"github.com/c3p0-box/localize/locale"
)

func TestNewCatalog(t *testing.T) {
	source := map[string]string{
		"NotNullValidator": "'{PropertyName}' must not be empty.",
		"EmailValidator":   "'{PropertyName}' is not a valid email address.",
	}
	catalog := NewCatalog("en", source)

	if catalog.Locale() != "en" {
		t.Errorf("Expected locale %q, got %q", "en", catalog.Locale())
	}
	if catalog.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", catalog.Len())
	}

	// Mutating the source map after construction must not affect the catalog
	source["NotNullValidator"] = "mutated"
	if got, _ := catalog.Message("NotNullValidator"); got != "'{PropertyName}' must not be empty." {
		t.Errorf("Catalog should be detached from its source map, got %q", got)
	}
}

func TestCatalogMessage(t *testing.T) {
	catalog := NewCatalog("en", map[string]string{"NotNullValidator": "required"})

	template, ok := catalog.Message("NotNullValidator")
	if !ok || template != "required" {
		t.Errorf("Expected (%q, true), got (%q, %v)", "required", template, ok)
	}

	if _, ok := catalog.Message("missing"); ok {
		t.Error("Should not find a template for an unknown key")
	}

	if !catalog.Has("NotNullValidator") {
		t.Error("Has should report existing keys")
	}
	if catalog.Has("missing") {
		t.Error("Has should not report unknown keys")
	}
}

func TestCatalogMessages(t *testing.T) {
	catalog := NewCatalog("en", map[string]string{"NotNullValidator": "required"})

	copied := catalog.Messages()
	copied["NotNullValidator"] = "mutated"

	if got, _ := catalog.Message("NotNullValidator"); got != "required" {
		t.Error("Mutating the copy returned by Messages should not affect the catalog")
	}
}

func TestNewRegistry(t *testing.T) {
	defaultCatalog := NewCatalog("en", map[string]string{"NotNullValidator": "required"})
	registry := NewRegistry(defaultCatalog)

	if registry.Default() != defaultCatalog {
		t.Error("Default should return the catalog the registry was built around")
	}
	if registry.DefaultLocale() != "en" {
		t.Errorf("Expected default locale %q, got %q", "en", registry.DefaultLocale())
	}

	// The default catalog is registered and reachable through Lookup
	if got, ok := registry.Lookup("en"); !ok || got != defaultCatalog {
		t.Error("Lookup should find the default catalog under its locale")
	}
}

func TestNewRegistryPanics(t *testing.T) {
	t.Run("nil default catalog", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("NewRegistry(nil) should panic")
			}
		}()
		NewRegistry(nil)
	})

	t.Run("default catalog without locale", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("NewRegistry should panic on a default catalog with no locale")
			}
		}()
		NewRegistry(NewCatalog("", map[string]string{"key": "value"}))
	})
}

func TestRegistryRegister(t *testing.T) {
	registry := NewRegistry(NewCatalog("en", map[string]string{"NotNullValidator": "required"}))

	french := NewCatalog("fr", map[string]string{"NotNullValidator": "requis"})
	if err := registry.Register(french); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("duplicate locale is rejected", func(t *testing.T) {
		err := registry.Register(NewCatalog("fr", map[string]string{"NotNullValidator": "autre"}))
		if err == nil {
			t.Fatal("Registering a second catalog for fr should fail")
		}
		if !errors.Is(err, ErrDuplicateLocale) {
			t.Errorf("Error should wrap ErrDuplicateLocale, got %v", err)
		}

		// The original catalog stays in place
		got, _ := registry.Lookup("fr")
		if got != french {
			t.Error("A rejected registration should not replace the existing catalog")
		}
	})

	t.Run("default locale cannot be re-registered", func(t *testing.T) {
		err := registry.Register(NewCatalog("en", map[string]string{"NotNullValidator": "other"}))
		if !errors.Is(err, ErrDuplicateLocale) {
			t.Errorf("Error should wrap ErrDuplicateLocale, got %v", err)
		}
	})

	t.Run("nil catalog is rejected", func(t *testing.T) {
		if err := registry.Register(nil); err == nil {
			t.Error("Registering a nil catalog should fail")
		}
	})

	t.Run("catalog without locale is rejected", func(t *testing.T) {
		if err := registry.Register(NewCatalog("", map[string]string{"key": "value"})); err == nil {
			t.Error("Registering a catalog with no locale should fail")
		}
	})
}

func TestRegistryLookupIsExact(t *testing.T) {
	registry := NewRegistry(NewCatalog("en", map[string]string{"NotNullValidator": "required"}))
	registry.Register(NewCatalog("fr", map[string]string{"NotNullValidator": "requis"}))

	// No fallback at the registry level, fr-FR is not fr
	if _, ok := registry.Lookup("fr-FR"); ok {
		t.Error("Lookup should be exact, fr-FR should not match fr")
	}
	if _, ok := registry.Lookup("fr"); !ok {
		t.Error("Lookup should find the registered fr catalog")
	}
}

func TestRegistryLocales(t *testing.T) {
	registry := NewRegistry(NewCatalog("en", map[string]string{"NotNullValidator": "required"}))
	registry.Register(NewCatalog("fr", map[string]string{"NotNullValidator": "requis"}))
	registry.Register(NewCatalog("de", map[string]string{"NotNullValidator": "erforderlich"}))

	codes := registry.Locales()
	if len(codes) != 3 {
		t.Fatalf("Expected 3 locales, got %d: %v", len(codes), codes)
	}
	want := []string{"de", "en", "fr"}
	for i, code := range codes {
		if string(code) != want[i] {
			t.Errorf("Expected %q at position %d, got %q", want[i], i, code)
		}
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	registry := NewRegistry(NewCatalog("en", map[string]string{"NotNullValidator": "required"}))

	done := make(chan bool, 40)

	// Concurrent registrations of distinct locales
	for i := 0; i < 20; i++ {
		go func(i int) {
			code := locale.Code(fmt.Sprintf("x-l%d", i))
			registry.Register(NewCatalog(code, map[string]string{"NotNullValidator": "value"}))
			done <- true
		}(i)
	}

	// Concurrent reads
	for i := 0; i < 20; i++ {
		go func() {
			registry.Lookup("en")
			registry.Locales()
			done <- true
		}()
	}

	for i := 0; i < 40; i++ {
		<-done
	}
}
