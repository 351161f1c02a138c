package singleton

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// Constructor builds the wrapped value. It receives whatever arguments the
// construction call was made with.
//
// A Constructor that returns a non-nil error (or panics) leaves the Wrapper
// empty, so the next call may try again.
type Constructor[T any] func(args ...any) (*T, error)

// NoArgs adapts a constructor that takes no arguments.
func NoArgs[T any](ctor func() (*T, error)) Constructor[T] {
	if ctor == nil {
		return nil
	}
	return func(...any) (*T, error) { return ctor() }
}

// Func adapts an infallible, argument-free constructor.
func Func[T any](ctor func() *T) Constructor[T] {
	if ctor == nil {
		return nil
	}
	return func(...any) (*T, error) { return ctor(), nil }
}

// Wrapper guards a constructor so that it produces at most one instance.
//
// The zero value is not usable; create Wrappers with New or Of.
type Wrapper[T any] struct {
	ctor       Constructor[T]
	name       string
	threadSafe bool
	strict     bool

	// mu is nil unless threadSafe.
	mu   *sync.Mutex
	inst atomic.Pointer[T]
}

// New wraps ctor according to opts. Without options the Wrapper is
// thread-safe and non-strict.
//
// New panics with ErrNilConstructor if ctor is nil.
func New[T any](ctor Constructor[T], opts ...Option) *Wrapper[T] {
	if ctor == nil {
		panic(ErrNilConstructor)
	}

	s := defaultSettings(typeName[T]())
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	w := &Wrapper[T]{
		ctor:       ctor,
		name:       s.name,
		threadSafe: s.threadSafe,
		strict:     s.strict,
	}
	if w.threadSafe {
		w.mu = new(sync.Mutex)
	}
	return w
}

// Of wraps ctor with the default configuration (thread-safe, non-strict).
func Of[T any](ctor Constructor[T]) *Wrapper[T] {
	return New(ctor)
}

// Get returns the instance, constructing it with args on the first call.
//
// Once the instance exists, args are ignored. A strict Wrapper returns a
// MultipleInstantiationError to every call except the one that constructed the
// instance. Errors from the constructor are returned unchanged.
func (w *Wrapper[T]) Get(args ...any) (*T, error) {
	// Fast path: no lock once populated.
	if inst := w.inst.Load(); inst != nil {
		return w.cached(inst)
	}

	if w.threadSafe {
		w.mu.Lock()
		defer w.mu.Unlock()

		if inst := w.inst.Load(); inst != nil {
			return w.cached(inst)
		}
	}

	return w.construct(args)
}

// MustGet is like Get but panics on error.
func (w *Wrapper[T]) MustGet(args ...any) *T {
	inst, err := w.Get(args...)
	if err != nil {
		panic(err)
	}
	return inst
}

// Instance returns the cached instance without constructing it.
// ok is false until a construction call has succeeded.
func (w *Wrapper[T]) Instance() (inst *T, ok bool) {
	inst = w.inst.Load()
	return inst, inst != nil
}

// Populated reports whether the instance has been constructed.
func (w *Wrapper[T]) Populated() bool { return w.inst.Load() != nil }

// Name returns the name used in error messages.
func (w *Wrapper[T]) Name() string { return w.name }

// ThreadSafe reports whether first construction is serialized.
func (w *Wrapper[T]) ThreadSafe() bool { return w.threadSafe }

// Strict reports whether repeat construction calls fail.
func (w *Wrapper[T]) Strict() bool { return w.strict }

func (w *Wrapper[T]) cached(inst *T) (*T, error) {
	if w.strict {
		return nil, MultipleInstantiationError{Name: w.name}
	}
	return inst, nil
}

// construct must be called with mu held when threadSafe.
func (w *Wrapper[T]) construct(args []any) (*T, error) {
	inst, err := w.ctor(args...)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, NilInstanceError{Name: w.name}
	}
	w.inst.Store(inst)
	return inst, nil
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
