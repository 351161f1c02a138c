package singleton

import (
	"reflect"
	"slices"
	"sync"
)

// Registry holds at most one Wrapper per Go type.
//
// It is an explicit, caller-owned replacement for a process-wide instance
// table: create one in your composition root and pass it to whatever needs
// type-keyed lookup. Wrappers in the same Registry never share state.
//
// The zero value is ready to use. A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	wrappers map[reflect.Type]any
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{wrappers: map[reflect.Type]any{}}
}

// Register creates the Wrapper for T and stores it in r.
//
// It fails with ErrNilRegistry, ErrNilConstructor, or DuplicateTypeError when
// T already has a Wrapper in r.
func Register[T any](r *Registry, ctor Constructor[T], opts ...Option) (*Wrapper[T], error) {
	if r == nil {
		return nil, ErrNilRegistry
	}
	if ctor == nil {
		return nil, ErrNilConstructor
	}
	key := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.wrappers == nil {
		r.wrappers = make(map[reflect.Type]any)
	}
	if _, exists := r.wrappers[key]; exists {
		return nil, DuplicateTypeError{Name: key.String()}
	}

	w := New(ctor, opts...)
	r.wrappers[key] = w
	return w, nil
}

// Lookup returns the Wrapper registered for T.
func Lookup[T any](r *Registry) (*Wrapper[T], bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	raw, ok := r.wrappers[reflect.TypeFor[T]()]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}
	w, ok := raw.(*Wrapper[T])
	return w, ok
}

// Resolve calls Get on the Wrapper registered for T.
//
// It returns NotRegisteredError when T has no Wrapper; otherwise the result of
// Get, including MultipleInstantiationError for strict wrappers.
func Resolve[T any](r *Registry, args ...any) (*T, error) {
	if r == nil {
		return nil, ErrNilRegistry
	}
	w, ok := Lookup[T](r)
	if !ok {
		return nil, NotRegisteredError{Name: typeName[T]()}
	}
	return w.Get(args...)
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.wrappers)
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.wrappers))
	for t := range r.wrappers {
		names = append(names, t.String())
	}
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}
