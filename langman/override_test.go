package langman

import (
	"fmt"
	"testing"
)

func TestOverridesSetAndGet(t *testing.T) {
	overrides := NewOverrides()

	overrides.Set("fr", "NotNullValidator", "valeur requise")

	value, ok := overrides.Get("fr", "NotNullValidator")
	if !ok || value != "valeur requise" {
		t.Errorf("Expected (%q, true), got (%q, %v)", "valeur requise", value, ok)
	}

	if _, ok := overrides.Get("fr", "EmailValidator"); ok {
		t.Error("Should not find an override that was never set")
	}
	if _, ok := overrides.Get("de", "NotNullValidator"); ok {
		t.Error("Should not find an override under a different locale")
	}
}

func TestOverridesGetIsExact(t *testing.T) {
	overrides := NewOverrides()
	overrides.Set("fr", "NotNullValidator", "valeur requise")

	// Overrides carry no fallback of their own, fr-FR does not inherit fr here
	if _, ok := overrides.Get("fr-FR", "NotNullValidator"); ok {
		t.Error("Get should be exact, fr-FR should not match fr")
	}
}

func TestOverridesLastWriteWins(t *testing.T) {
	overrides := NewOverrides()

	overrides.Set("en", "NotNullValidator", "first")
	overrides.Set("en", "NotNullValidator", "second")

	value, _ := overrides.Get("en", "NotNullValidator")
	if value != "second" {
		t.Errorf("Expected %q, got %q", "second", value)
	}
	if overrides.Len() != 1 {
		t.Errorf("Expected 1 override after overwriting, got %d", overrides.Len())
	}
}

func TestOverridesRemove(t *testing.T) {
	overrides := NewOverrides()
	overrides.Set("en", "NotNullValidator", "custom")
	overrides.Set("en", "EmailValidator", "custom email")

	overrides.Remove("en", "NotNullValidator")

	if _, ok := overrides.Get("en", "NotNullValidator"); ok {
		t.Error("Removed override should no longer be found")
	}
	if _, ok := overrides.Get("en", "EmailValidator"); !ok {
		t.Error("Removing one key should not affect other keys")
	}

	// Removing entries that were never set is a no-op
	overrides.Remove("en", "NotNullValidator")
	overrides.Remove("de", "NotNullValidator")

	if overrides.Len() != 1 {
		t.Errorf("Expected 1 override, got %d", overrides.Len())
	}
}

func TestOverridesLen(t *testing.T) {
	overrides := NewOverrides()
	if overrides.Len() != 0 {
		t.Errorf("Expected empty store, got %d entries", overrides.Len())
	}

	overrides.Set("en", "NotNullValidator", "one")
	overrides.Set("en", "EmailValidator", "two")
	overrides.Set("fr", "NotNullValidator", "trois")

	if overrides.Len() != 3 {
		t.Errorf("Expected 3 overrides across locales, got %d", overrides.Len())
	}
}

func TestOverridesSnapshot(t *testing.T) {
	overrides := NewOverrides()
	overrides.Set("fr", "NotNullValidator", "valeur requise")

	snapshot := overrides.Snapshot()
	if snapshot["fr"]["NotNullValidator"] != "valeur requise" {
		t.Errorf("Snapshot should contain the stored override, got %v", snapshot)
	}

	// The snapshot is detached in both directions
	snapshot["fr"]["NotNullValidator"] = "mutated"
	snapshot["de"] = map[string]string{"NotNullValidator": "injected"}

	if value, _ := overrides.Get("fr", "NotNullValidator"); value != "valeur requise" {
		t.Error("Mutating the snapshot should not affect the store")
	}
	if _, ok := overrides.Get("de", "NotNullValidator"); ok {
		t.Error("Adding locales to the snapshot should not affect the store")
	}

	overrides.Set("fr", "NotNullValidator", "changed after snapshot")
	if snapshot["fr"]["NotNullValidator"] == "changed after snapshot" {
		t.Error("Mutating the store should not affect an earlier snapshot")
	}
}

func TestOverridesConcurrentAccess(t *testing.T) {
	overrides := NewOverrides()

	done := make(chan bool, 60)

	for i := 0; i < 20; i++ {
		go func(i int) {
			overrides.Set("en", fmt.Sprintf("Key%d", i), "value")
			done <- true
		}(i)
	}
	for i := 0; i < 20; i++ {
		go func(i int) {
			overrides.Get("en", fmt.Sprintf("Key%d", i))
			done <- true
		}(i)
	}
	for i := 0; i < 20; i++ {
		go func() {
			overrides.Snapshot()
			overrides.Len()
			done <- true
		}()
	}

	for i := 0; i < 60; i++ {
		<-done
	}
}
