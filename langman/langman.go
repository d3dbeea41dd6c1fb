// Package langman resolves localized validation message templates.
//
// A validation engine hands over a validator identity (a stable name such as
// "NotNullValidator") and optionally an explicit error code, and gets back
// the message template for the caller's locale. Placeholder substitution
// ("{PropertyName}" expansion) is a downstream concern; this package only
// returns template strings.
//
// Resolution layers three sources, in priority order: caller-supplied
// overrides, per-locale catalogs, and the default-locale catalog as the
// terminal fallback. Missing locales walk up their parent chain ("fr-FR"
// falls back to "fr") before giving up, so sparse locales stay usable
// without copying every message. See Resolver for the exact chain.
//
// Example:
//
//	m := langman.New()
//	m.SetCulture(locale.MustParse("fr-FR"))
//	m.Message("NotNullValidator")
//	// "'{PropertyName}' ne doit pas avoir la valeur null."
//
//	m.AddTranslation("fr", "NotNullValidator", "'{PropertyName}' est obligatoire.")
//	m.Message("NotNullValidator")
//	// "'{PropertyName}' est obligatoire."
//
// Managers are safe for concurrent use. Each manager owns its registry and
// override store, so independently configured managers never interfere; the
// package-level functions operate on a shared default manager for callers
// that want the batteries-included setup.
package langman

import (
	"fmt"
	"sync"

	"github.com/c3p0-box/localize/languages"
	"github.com/c3p0-box/localize/locale"
)

// Manager is the entry point used by the validation engine. It owns the
// culture-selection policy: resolution uses the pinned culture when one is
// set, otherwise the ambient locale from the provider, otherwise the default
// locale. Disabling localization forces the default locale for every
// resolution until re-enabled.
type Manager struct {
	mu       sync.RWMutex
	enabled  bool
	culture  locale.Code
	provider locale.Provider

	registry  *Registry
	overrides *Overrides
	resolver  *Resolver
}

// New returns a manager preloaded with the built-in language packs from the
// languages package, localization enabled and no culture pinned.
func New() *Manager {
	return NewWithRegistry(builtinRegistry())
}

// NewWithRegistry returns a manager over the given registry with a fresh,
// empty override store. This is the path for applications that ship their
// own catalogs instead of the built-in packs. Panics when registry is nil.
func NewWithRegistry(registry *Registry) *Manager {
	if registry == nil {
		panic("langman: manager requires a registry")
	}
	overrides := NewOverrides()
	return &Manager{
		enabled:   true,
		registry:  registry,
		overrides: overrides,
		resolver:  NewResolver(registry, overrides),
	}
}

// builtinRegistry assembles a registry from the compiled-in language packs.
func builtinRegistry() *Registry {
	packs := languages.All()
	defaultCode := locale.MustParse(languages.DefaultLocale)
	registry := NewRegistry(NewCatalog(defaultCode, packs[languages.DefaultLocale]))
	for rawCode, messages := range packs {
		if rawCode == languages.DefaultLocale {
			continue
		}
		if err := registry.Register(NewCatalog(locale.MustParse(rawCode), messages)); err != nil {
			// This should never happen with valid pack data
			panic("langman: failed to register built-in language pack: " + err.Error())
		}
	}
	return registry
}

// Enabled reports whether localization is active.
func (m *Manager) Enabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.enabled
}

// SetEnabled toggles localization. While disabled, every resolution uses the
// default locale regardless of the pinned culture or the provider.
func (m *Manager) SetEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = enabled
}

// Culture returns the pinned locale and whether one is set.
func (m *Manager) Culture() (locale.Code, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.culture, m.culture != ""
}

// SetCulture pins every resolution to the given locale, taking priority over
// the provider. Pinning the zero code is the same as ClearCulture.
func (m *Manager) SetCulture(code locale.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.culture = code
}

// ClearCulture removes the pinned locale so the provider (or the default
// locale) decides again.
func (m *Manager) ClearCulture() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.culture = ""
}

// SetProvider installs the ambient locale source consulted when no culture
// is pinned. A nil provider or a zero result means the default locale.
func (m *Manager) SetProvider(provider locale.Provider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.provider = provider
}

// Registry returns the catalog registry backing this manager.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Overrides returns the override store backing this manager.
func (m *Manager) Overrides() *Overrides {
	return m.overrides
}

// Resolver returns the resolver backing this manager, for callers that need
// explicit-locale resolution alongside the manager's culture policy.
func (m *Manager) Resolver() *Resolver {
	return m.resolver
}

// effectiveLocale applies the culture-selection policy: the default locale
// while disabled, else the pinned culture, else the provider's ambient
// locale, else the default locale.
func (m *Manager) effectiveLocale() locale.Code {
	m.mu.RLock()
	enabled, culture, provider := m.enabled, m.culture, m.provider
	m.mu.RUnlock()

	if !enabled {
		return m.registry.DefaultLocale()
	}
	if culture != "" {
		return culture
	}
	// Provider is caller code, keep it outside the lock
	if provider != nil {
		if ambient := provider.Locale(); ambient != "" {
			return ambient
		}
	}
	return m.registry.DefaultLocale()
}

// Message resolves the template for a validator identity at the effective
// locale.
func (m *Manager) Message(identity string) string {
	return m.resolver.Resolve(identity, m.effectiveLocale())
}

// MessageForErrorCode resolves by an explicit error code first, falling back
// to the validator identity. The error code wins when any entry for it
// exists anywhere in the fallback chain, override or catalog at any level;
// a code with no entry at all defers to the identity. An empty errorCode
// skips straight to the identity.
func (m *Manager) MessageForErrorCode(errorCode, identity string) string {
	loc := m.effectiveLocale()
	if errorCode != "" {
		if template, ok := m.resolver.Lookup(errorCode, loc); ok {
			return template
		}
	}
	return m.resolver.Resolve(identity, loc)
}

// AddTranslation stores a caller-supplied template for (code, key) in the
// override store. Catalogs are never mutated; the override simply wins
// during resolution and can be removed again with RemoveTranslation.
func (m *Manager) AddTranslation(code locale.Code, key, template string) error {
	if code == "" {
		return fmt.Errorf("locale code cannot be empty")
	}
	if key == "" {
		return fmt.Errorf("translation key cannot be empty")
	}
	if template == "" {
		return fmt.Errorf("translation template cannot be empty")
	}
	m.overrides.Set(code, key, template)
	return nil
}

// RemoveTranslation drops the override for (code, key), restoring
// catalog-derived resolution for that pair.
func (m *Manager) RemoveTranslation(code locale.Code, key string) {
	m.overrides.Remove(code, key)
}

var (
	defaultManager *Manager
	once           sync.Once
)

// Default returns the shared manager preloaded with the built-in language
// packs. It is created lazily on first use.
func Default() *Manager {
	once.Do(func() {
		defaultManager = New()
	})
	return defaultManager
}

// Convenience functions for the default manager

// Message resolves a validator identity using the default manager.
func Message(identity string) string {
	return Default().Message(identity)
}

// MessageForErrorCode resolves an error code using the default manager.
func MessageForErrorCode(errorCode, identity string) string {
	return Default().MessageForErrorCode(errorCode, identity)
}

// AddTranslation adds an override to the default manager.
func AddTranslation(code locale.Code, key, template string) error {
	return Default().AddTranslation(code, key, template)
}

// RemoveTranslation removes an override from the default manager.
func RemoveTranslation(code locale.Code, key string) {
	Default().RemoveTranslation(code, key)
}

// SetEnabled toggles localization on the default manager.
func SetEnabled(enabled bool) {
	Default().SetEnabled(enabled)
}

// SetCulture pins the default manager to the given locale.
func SetCulture(code locale.Code) {
	Default().SetCulture(code)
}

// ClearCulture removes the default manager's pinned locale.
func ClearCulture() {
	Default().ClearCulture()
}
