package singleton

import (
	"errors"
	"strconv"
)

var (
	// ErrMultipleInstantiation is matched (via errors.Is) by every
	// MultipleInstantiationError.
	ErrMultipleInstantiation = errors.New("singleton: multiple instantiation")

	// ErrNilConstructor is the panic value of New when given a nil constructor.
	ErrNilConstructor = errors.New("singleton: nil constructor")

	// ErrNilRegistry is returned by registry helpers called with a nil *Registry.
	ErrNilRegistry = errors.New("singleton: nil registry")
)

// MultipleInstantiationError is returned by a strict Wrapper when a construction
// call happens after the instance already exists.
type MultipleInstantiationError struct{ Name string }

// Error implements the error interface.
func (e MultipleInstantiationError) Error() string {
	// Example: singleton: attempt to create another instance of "applogger.AppLogger"
	return "singleton: attempt to create another instance of " + strconv.Quote(e.Name)
}

// Is reports whether target is ErrMultipleInstantiation.
func (e MultipleInstantiationError) Is(target error) bool {
	return target == ErrMultipleInstantiation
}

// NilInstanceError is returned when a constructor reports success but returns
// a nil instance. Nothing is cached in that case.
type NilInstanceError struct{ Name string }

// Error implements the error interface.
func (e NilInstanceError) Error() string {
	return "singleton: constructor for " + strconv.Quote(e.Name) + " returned nil instance"
}

// DuplicateTypeError is returned when a type is registered twice in a Registry.
type DuplicateTypeError struct{ Name string }

// Error implements the error interface.
func (e DuplicateTypeError) Error() string {
	return "singleton: type " + strconv.Quote(e.Name) + " already registered"
}

// NotRegisteredError is returned by Resolve when no wrapper exists for a type.
type NotRegisteredError struct{ Name string }

// Error implements the error interface.
func (e NotRegisteredError) Error() string {
	return "singleton: type " + strconv.Quote(e.Name) + " not registered"
}

// ConfigError describes an invalid wrapper configuration document.
type ConfigError struct {
	// Field is the offending key, empty when the document as a whole is malformed.
	Field  string
	Reason string
	Cause  error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := "singleton: invalid config"
	if e.Field != "" {
		msg += " field " + strconv.Quote(e.Field)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying decode error, if any.
func (e *ConfigError) Unwrap() error { return e.Cause }
