package langman

import (
	"sync"

	"github.com/c3p0-box/localize/locale"
)

// Resolver turns (key, locale) into a message template by walking an ordered
// fallback chain, first match wins:
//
//  1. override for the exact locale
//  2. override for each parent locale, most specific first
//  3. catalog entry for the exact locale
//  4. catalog entry for each parent locale, most specific first
//  5. override for the default locale
//  6. default catalog entry
//
// Overrides at any specificity beat catalogs at any specificity: a caller
// who overrides the base "fr" message intends it to win even when an
// untouched "fr-FR" catalog translation exists. A specific catalog entry
// still beats falling back to the default catalog. Step 6 is guaranteed by
// the registry contract (the default catalog carries every key), so
// resolution is total in a correctly provisioned system.
type Resolver struct {
	registry  *Registry
	overrides *Overrides

	mu      sync.RWMutex
	missing func(key string, code locale.Code)
}

// NewResolver creates a resolver over the given registry and override store.
// A nil overrides argument gets an empty store, which makes the resolver
// purely catalog-driven. Panics when registry is nil.
func NewResolver(registry *Registry, overrides *Overrides) *Resolver {
	if registry == nil {
		panic("langman: resolver requires a registry")
	}
	if overrides == nil {
		overrides = NewOverrides()
	}
	return &Resolver{registry: registry, overrides: overrides}
}

// SetMissingHandler registers a hook invoked whenever a key has no entry
// anywhere in the chain, including the default catalog. Such a key is a
// provisioning bug; the hook gives the embedding application a place to log
// it. The handler must be safe for concurrent use.
func (r *Resolver) SetMissingHandler(handler func(key string, code locale.Code)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.missing = handler
}

// Resolve returns the template for key at the given locale. It is total: a
// key missing from the entire chain returns the key itself as a last-resort
// usable string (and fires the missing handler), so callers never see a
// "not found" condition. A zero locale resolves as the default locale.
func (r *Resolver) Resolve(key string, code locale.Code) string {
	if template, ok := r.Lookup(key, code); ok {
		return template
	}

	r.mu.RLock()
	handler := r.missing
	r.mu.RUnlock()
	if handler != nil {
		handler(key, code)
	}
	return key
}

// Lookup runs the same chain as Resolve and reports whether any entry exists
// for key. Callers that need to distinguish "resolved" from "nothing
// anywhere" (error-code resolution does) use this form.
func (r *Resolver) Lookup(key string, code locale.Code) (string, bool) {
	// Overrides first, exact locale then up the parent chain
	for c := code; c != ""; c = c.Parent() {
		if template, ok := r.overrides.Get(c, key); ok {
			return template, true
		}
	}

	// Catalogs next, exact locale then up the parent chain
	for c := code; c != ""; c = c.Parent() {
		if catalog, ok := r.registry.Lookup(c); ok {
			if template, ok := catalog.Message(key); ok {
				return template, true
			}
		}
	}

	// Default-locale override before the terminal catalog entry
	if template, ok := r.overrides.Get(r.registry.DefaultLocale(), key); ok {
		return template, true
	}

	return r.registry.Default().Message(key)
}
