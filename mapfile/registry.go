package mapfile

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"object-mapper/rule"
)

var (
	// ErrEmptyTransformName is returned when registering a transform with no name.
	ErrEmptyTransformName = errors.New("transform name is empty")
	// ErrNilTransform is returned when registering a nil function.
	ErrNilTransform = errors.New("transform function is nil")
	// ErrDuplicateTransform is returned when a name is registered twice.
	ErrDuplicateTransform = errors.New("transform already registered")
)

// Registry holds the named transformation functions a mapping file can
// reference. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]rule.Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]rule.Func),
	}
}

// Register adds a function under name.
func (r *Registry) Register(name string, fn rule.Func) error {
	if name == "" {
		return ErrEmptyTransformName
	}

	if fn == nil {
		return fmt.Errorf("%w: %s", ErrNilTransform, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTransform, name)
	}

	r.funcs[name] = fn

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, fn rule.Func) *Registry {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}

	return r
}

// Get retrieves a function by name.
func (r *Registry) Get(name string) (rule.Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.funcs[name]

	return fn, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
