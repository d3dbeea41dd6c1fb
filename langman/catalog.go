package langman

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/c3p0-box/localize/locale"
)

// ErrDuplicateLocale reports an attempt to register a second catalog for a
// locale that already has one. This indicates a language-pack bug and should
// fail the startup path that triggered it.
var ErrDuplicateLocale = errors.New("langman: duplicate locale registration")

// Catalog is the immutable translation table for a single locale: a mapping
// from translation key (validator identity or error code) to message
// template. Catalogs never change after construction, which is what makes
// the resolution path safe for concurrent use without coordination.
type Catalog struct {
	locale   locale.Code
	messages map[string]string
}

// NewCatalog builds a catalog for the given locale. The messages map is
// copied, so mutating the argument afterwards does not affect the catalog.
func NewCatalog(code locale.Code, messages map[string]string) *Catalog {
	copied := make(map[string]string, len(messages))
	for key, template := range messages {
		copied[key] = template
	}
	return &Catalog{locale: code, messages: copied}
}

// Locale returns the locale code this catalog serves.
func (c *Catalog) Locale() locale.Code {
	return c.locale
}

// Message returns the template registered for key and whether it exists.
func (c *Catalog) Message(key string) (string, bool) {
	template, exists := c.messages[key]
	return template, exists
}

// Has reports whether the catalog contains an entry for key.
func (c *Catalog) Has(key string) bool {
	_, exists := c.messages[key]
	return exists
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.messages)
}

// Messages returns a copy of the catalog's entries.
func (c *Catalog) Messages() map[string]string {
	copied := make(map[string]string, len(c.messages))
	for key, template := range c.messages {
		copied[key] = template
	}
	return copied
}

// Registry holds one catalog per locale. It is built around its default
// catalog, which must carry an entry for every key used anywhere in the
// system; that catalog terminates every resolution chain. Registration is
// append-only: catalogs are added during startup and only read afterwards.
type Registry struct {
	mu       sync.RWMutex
	catalogs map[locale.Code]*Catalog
	default_ *Catalog
}

// NewRegistry creates a registry around its default catalog. The default
// catalog is registered immediately, so Default always succeeds for the life
// of the registry. Panics when defaultCatalog is nil or has no locale code;
// a registry without a terminal fallback cannot resolve anything.
func NewRegistry(defaultCatalog *Catalog) *Registry {
	if defaultCatalog == nil {
		panic("langman: registry requires a default catalog")
	}
	if defaultCatalog.Locale() == "" {
		panic("langman: default catalog must have a locale code")
	}
	registry := &Registry{
		catalogs: make(map[locale.Code]*Catalog),
		default_: defaultCatalog,
	}
	registry.catalogs[defaultCatalog.Locale()] = defaultCatalog
	return registry
}

// Register adds a catalog to the registry. It returns an error wrapping
// ErrDuplicateLocale when a catalog for the same locale already exists;
// existing catalogs are never replaced.
func (r *Registry) Register(c *Catalog) error {
	if c == nil {
		return fmt.Errorf("catalog cannot be nil")
	}
	if c.Locale() == "" {
		return fmt.Errorf("catalog locale cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.catalogs[c.Locale()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateLocale, c.Locale())
	}
	r.catalogs[c.Locale()] = c
	return nil
}

// Lookup returns the catalog registered for exactly the given code. There is
// no fallback here; walking parent locales is the resolver's job.
func (r *Registry) Lookup(code locale.Code) (*Catalog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.catalogs[code]
	return c, exists
}

// Default returns the default-locale catalog. It always succeeds.
func (r *Registry) Default() *Catalog {
	return r.default_
}

// DefaultLocale returns the locale code of the default catalog.
func (r *Registry) DefaultLocale() locale.Code {
	return r.default_.Locale()
}

// Locales returns the registered locale codes in sorted order.
func (r *Registry) Locales() []locale.Code {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]locale.Code, 0, len(r.catalogs))
	for code := range r.catalogs {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
