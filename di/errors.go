package di

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrModuleNotFound is wrapped by ModuleNotFoundError.
	ErrModuleNotFound = errors.New("di: module not found")

	// ErrTypeMismatch is wrapped by TypeMismatchError.
	ErrTypeMismatch = errors.New("di: type mismatch")

	// ErrFactoryPanic is wrapped by FactoryPanicError.
	ErrFactoryPanic = errors.New("di: panic during factory call")

	// ErrNilFactory is wrapped by NilFactoryError.
	ErrNilFactory = errors.New("di: nil factory")
)

// ModuleNotFoundError is returned when no module is registered under any of
// the requested keys.
//
// Keys holds one key for plain resolution and both candidates for fallback
// resolution, preferred first.
type ModuleNotFoundError struct{ Keys []string }

// Error implements the error interface.
func (e ModuleNotFoundError) Error() string {
	// Example: di: module "app.Clock" not found
	// Example: di: module not found for any of "app.Cache", "app.MemCache"
	if len(e.Keys) == 1 {
		return "di: module " + strconv.Quote(e.Keys[0]) + " not found"
	}
	quoted := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		quoted[i] = strconv.Quote(k)
	}
	return "di: module not found for any of " + strings.Join(quoted, ", ")
}

func (e ModuleNotFoundError) Unwrap() error { return ErrModuleNotFound }

// TypeMismatchError is returned when a module's product cannot be narrowed to
// the type the caller asked for.
type TypeMismatchError struct {
	// Key is the registration key that was resolved.
	Key string

	// Expected is the canonical name of the requested type.
	Expected string

	// Got is the canonical name of the produced value's dynamic type.
	Got string
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	// Example: di: module "db" produced int, expected string
	return "di: module " + strconv.Quote(e.Key) + " produced " + e.Got + ", expected " + e.Expected
}

func (e TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// FactoryPanicError is returned when a factory panics. Value is the recovered
// panic value.
type FactoryPanicError struct {
	Key   string
	Value any
}

// Error implements the error interface.
func (e FactoryPanicError) Error() string {
	return "di: factory for " + strconv.Quote(e.Key) + " panicked: " + fmt.Sprint(e.Value)
}

func (e FactoryPanicError) Unwrap() error { return ErrFactoryPanic }

// NilFactoryError is returned when resolving a module that carries no factory,
// typically a zero Module.
type NilFactoryError struct{ Key string }

// Error implements the error interface.
func (e NilFactoryError) Error() string {
	return "di: nil factory for key " + strconv.Quote(e.Key)
}

func (e NilFactoryError) Unwrap() error { return ErrNilFactory }
