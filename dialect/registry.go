package dialect

import (
	"sort"
	"strings"
	"sync"

	"github.com/brindlecode/sqlforge/errs"
)

// registry is the process-wide dialect lookup table: populated once
// via init()-time Register calls (plus whatever a host adds before
// its first lookup), then read-only. A sync.RWMutex guards it rather
// than leaving it truly lock-free, since a host is free to call
// Register after startup too — the mutex is the cost of allowing
// that, paid only on the write path.
var registry = struct {
	mu sync.RWMutex
	m  map[string]*Dialect
}{m: map[string]*Dialect{}}

// Register adds d to the registry under its own Name, case-folded to
// upper case (dialect names are looked up case-insensitively).
// Re-registering an existing name replaces it; this is a deliberate
// allowance for a host overriding a builtin, not an error.
func Register(d *Dialect) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.m[strings.ToUpper(d.Name)] = d
}

// Alias registers the same Dialect under an additional lookup name
// (e.g. "POSTGRESQL" alongside "POSTGRES").
func Alias(name string, d *Dialect) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.m[strings.ToUpper(name)] = d
}

// Lookup returns the registered dialect named name (case-insensitive),
// or a DialectNotFound error if nothing is registered under it.
func Lookup(name string) (*Dialect, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	d, ok := registry.m[strings.ToUpper(name)]
	if !ok {
		return nil, errs.DialectNotFound(name)
	}
	return d, nil
}

// Names returns every registered dialect name, sorted, for discovery
// (e.g. a CLI's --dialect flag help text).
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.m))
	for n := range registry.m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
