package drawlist

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownBackend is returned by NewBackend for names that were never
// registered.
var ErrUnknownBackend = errors.New("drawlist: unknown backend")

// BackendFactory creates a backend for a canvas of the given size.
// faces may be nil for backends that never draw text.
type BackendFactory func(width, height int, faces FaceProvider) Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

func init() {
	Register("raster", func(width, height int, faces FaceProvider) Backend {
		return NewContextBackend(width, height, faces)
	})
	Register("recording", func(width, height int, faces FaceProvider) Backend {
		return NewRecorderBackend(width, height, faces)
	})
}

// Register registers a backend factory with the given name.
// It is typically called from init(), following the database/sql driver
// pattern.
//
// Register panics if factory is nil or if name is already registered.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("drawlist: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("drawlist: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry. Unknown names are a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a backend by registered name.
func NewBackend(name string, width, height int, faces FaceProvider) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return factory(width, height, faces), nil
}

// Backends returns the sorted names of all registered backends.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
