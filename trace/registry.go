package trace

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory is a function that creates a new backend instance.
// Factories are registered via Register and called by NewBackend.
type BackendFactory func() Backend

// Registry state, protected by a mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]BackendFactory)
)

// Register registers a backend factory with the given name. It is
// typically called from init in backend packages, following the
// database/sql driver pattern:
//
//	func init() {
//	    trace.Register("script", func() trace.Backend {
//	        return New()
//	    })
//	}
//
// Register panics if factory is nil or if a backend with the same name
// is already registered, so duplicate registrations are caught during
// program initialization rather than silently overwriting backends.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("trace: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("trace: Register called twice for " + name)
	}
	registry[name] = factory
}

// Unregister removes a backend from the registry. This is primarily
// useful for cleaning up between tests. If the backend is not
// registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, name)
}

// NewBackend creates a new backend instance by name. The name must
// match a previously registered backend:
//
//	import _ "github.com/gogeom/euclid/trace/backends/script"
//
//	backend, err := trace.NewBackend("script")
//
// The error message for an unknown name includes a hint about
// forgotten imports.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("trace: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustBackend creates a new backend instance by name, panicking on
// error. This is useful when backend availability is guaranteed.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the registered backend names, sorted alphabetically
// for consistent output.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}
