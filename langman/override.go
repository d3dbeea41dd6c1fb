package langman

import (
	"sync"

	"github.com/c3p0-box/localize/locale"
)

// Overrides layers caller-supplied templates over a Registry without ever
// touching catalog data. Entries are keyed by (locale, key) and are purely
// additive: setting or removing an override for one key never affects any
// other key in the same or another locale. The store starts empty and may be
// written at any time; writes are serialized, reads can run concurrently.
type Overrides struct {
	mu      sync.RWMutex
	entries map[locale.Code]map[string]string
}

// NewOverrides creates an empty override store.
func NewOverrides() *Overrides {
	return &Overrides{
		entries: make(map[locale.Code]map[string]string),
	}
}

// Set stores template for (code, key). Setting the same pair again replaces
// the previous value, last write wins.
func (o *Overrides) Set(code locale.Code, key, template string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.entries[code] == nil {
		o.entries[code] = make(map[string]string)
	}
	o.entries[code][key] = template
}

// Get returns the override for exactly (code, key) and whether it exists.
// No fallback happens here; the resolver owns the chain.
func (o *Overrides) Get(code locale.Code, key string) (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	entries, exists := o.entries[code]
	if !exists {
		return "", false
	}
	template, exists := entries[key]
	return template, exists
}

// Remove deletes the override for (code, key). Resolution for that pair
// falls back to catalog-derived behavior, it never becomes unresolved.
func (o *Overrides) Remove(code locale.Code, key string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	entries, exists := o.entries[code]
	if !exists {
		return
	}
	delete(entries, key)
	if len(entries) == 0 {
		delete(o.entries, code)
	}
}

// Len returns the total number of overrides across all locales.
func (o *Overrides) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()

	total := 0
	for _, entries := range o.entries {
		total += len(entries)
	}
	return total
}

// Snapshot returns a deep copy of the store, keyed by locale code. The copy
// is detached: later writes to the store do not show up in it. Embedding
// applications can use it to serialize override state.
func (o *Overrides) Snapshot() map[locale.Code]map[string]string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	snapshot := make(map[locale.Code]map[string]string, len(o.entries))
	for code, entries := range o.entries {
		copied := make(map[string]string, len(entries))
		for key, template := range entries {
			copied[key] = template
		}
		snapshot[code] = copied
	}
	return snapshot
}
