package goi18n

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/c3p0-box/localize/langman"
)

func TestTemplate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			"'{PropertyName}' must not be empty.",
			"'{{.PropertyName}}' must not be empty.",
		},
		{
			"'{PropertyName}' must be between {From} and {To}.",
			"'{{.PropertyName}}' must be between {{.From}} and {{.To}}.",
		},
		{
			"'{PropertyName}' must be {MaxLength} characters or fewer. You entered {TotalLength} characters.",
			"'{{.PropertyName}}' must be {{.MaxLength}} characters or fewer. You entered {{.TotalLength}} characters.",
		},
		{"No placeholders here.", "No placeholders here."},
		{"", ""},
		// Already-converted text stays untouched
		{"'{{.PropertyName}}' must not be empty.", "'{{.PropertyName}}' must not be empty."},
		// Tokens that are not identifiers pass through
		{"value {0} and {-} stay literal", "value {0} and {-} stay literal"},
	}

	for _, tt := range tests {
		if got := Template(tt.input); got != tt.want {
			t.Errorf("Template(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewBundle(t *testing.T) {
	t.Run("nil manager is rejected", func(t *testing.T) {
		if _, err := NewBundle(nil); err == nil {
			t.Error("NewBundle(nil) should fail")
		}
	})

	t.Run("default locale renders with template data", func(t *testing.T) {
		bundle, err := NewBundle(langman.New())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		localizer := NewLocalizer(bundle)
		msg, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    "NotNullValidator",
			TemplateData: map[string]string{"PropertyName": "Name"},
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if msg != "'Name' must not be empty." {
			t.Errorf("Expected %q, got %q", "'Name' must not be empty.", msg)
		}
	})

	t.Run("translated locale renders with template data", func(t *testing.T) {
		bundle, err := NewBundle(langman.New())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		localizer := NewLocalizer(bundle, "fr")
		msg, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    "NotNullValidator",
			TemplateData: map[string]string{"PropertyName": "Nom"},
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if msg != "'Nom' ne doit pas avoir la valeur null." {
			t.Errorf("Expected %q, got %q", "'Nom' ne doit pas avoir la valeur null.", msg)
		}
	})

	t.Run("regional preference matches the base language", func(t *testing.T) {
		bundle, err := NewBundle(langman.New())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		localizer := NewLocalizer(bundle, "fr-FR")
		msg, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    "NotNullValidator",
			TemplateData: map[string]string{"PropertyName": "Nom"},
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if msg != "'Nom' ne doit pas avoir la valeur null." {
			t.Errorf("Expected %q, got %q", "'Nom' ne doit pas avoir la valeur null.", msg)
		}
	})

	t.Run("overrides win over catalog entries", func(t *testing.T) {
		manager := langman.New()
		if err := manager.AddTranslation("en", "NotNullValidator", "{PropertyName} is required!"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		bundle, err := NewBundle(manager)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		localizer := NewLocalizer(bundle)
		msg, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    "NotNullValidator",
			TemplateData: map[string]string{"PropertyName": "Name"},
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if msg != "Name is required!" {
			t.Errorf("Expected %q, got %q", "Name is required!", msg)
		}
	})

	t.Run("override-only locales are exported", func(t *testing.T) {
		registry := langman.NewRegistry(langman.NewCatalog("en", map[string]string{
			"NotNullValidator": "'{PropertyName}' must not be empty.",
		}))
		manager := langman.NewWithRegistry(registry)
		if err := manager.AddTranslation("it", "NotNullValidator", "'{PropertyName}' è obbligatorio."); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		bundle, err := NewBundle(manager)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		localizer := NewLocalizer(bundle, "it")
		msg, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    "NotNullValidator",
			TemplateData: map[string]string{"PropertyName": "Nome"},
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if msg != "'Nome' è obbligatorio." {
			t.Errorf("Expected %q, got %q", "'Nome' è obbligatorio.", msg)
		}
	})
}

func TestNewLocalizer(t *testing.T) {
	bundle, err := NewBundle(langman.New())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("zero codes are skipped", func(t *testing.T) {
		localizer := NewLocalizer(bundle, "", "de")
		msg, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    "NotNullValidator",
			TemplateData: map[string]string{"PropertyName": "Name"},
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if msg != "'Name' darf nicht leer sein." {
			t.Errorf("Expected %q, got %q", "'Name' darf nicht leer sein.", msg)
		}
	})

	t.Run("no preferences means the default language", func(t *testing.T) {
		localizer := NewLocalizer(bundle)
		msg, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    "NotNullValidator",
			TemplateData: map[string]string{"PropertyName": "Name"},
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if msg != "'Name' must not be empty." {
			t.Errorf("Expected %q, got %q", "'Name' must not be empty.", msg)
		}
	})
}
