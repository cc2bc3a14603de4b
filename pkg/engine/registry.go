package engine

import (
	"fmt"
	"sort"
)

var backends = map[string]func() Engine{}

// Register makes a backend available to Open under name. Backends register
// themselves from an init function.
func Register(name string, factory func() Engine) {
	backends[name] = factory
}

// Open returns the backend registered under name.
func Open(name string) (Engine, error) {
	f, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown engine: %s (registered: %v)", name, Registered())
	}
	return f(), nil
}

// Registered returns the names of all registered backends, sorted.
func Registered() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
