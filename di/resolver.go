package di

import (
	"errors"
	"reflect"
	"slices"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sghaida/rootdi/logger"
)

// Resolver holds module registrations and the instances of resolved
// singletons.
//
// A Resolver built by NewResolver starts with its modules pending: they are
// only registered once Build (or BuildInto) merges them into a target. The
// composition root returned by Root is itself a Resolver.
type Resolver struct {
	pending []Module

	mu            sync.RWMutex
	registrations map[string]Module
	instances     map[string]any

	flight singleflight.Group
}

// NewResolver returns a resolver holding modules, in order, for a later Build.
func NewResolver(modules ...Module) *Resolver {
	return &Resolver{
		pending:       slices.Clone(modules),
		registrations: make(map[string]Module),
		instances:     make(map[string]any),
	}
}

// Modules returns a copy of the modules waiting to be built.
func (r *Resolver) Modules() []Module {
	return slices.Clone(r.pending)
}

// Build registers the pending modules into the composition root.
//
// It can be called any number of times. Modules from different resolvers are
// merged; on a name collision the module built last wins. Instance caches are
// never copied.
func (r *Resolver) Build() {
	r.BuildInto(Root())
}

// BuildInto registers the pending modules into dst. A nil dst means Root().
func (r *Resolver) BuildInto(dst *Resolver) {
	if dst == nil {
		dst = Root()
	}
	dst.Register(r.pending...)
	log().Info("resolver built", logger.Fields("modules", len(r.pending)))
}

// Register adds modules to r immediately, overwriting by name.
//
// Replacing a name with a different module drops any singleton cached under
// that name; registering the same module again keeps it.
func (r *Resolver) Register(modules ...Module) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range modules {
		if old, ok := r.registrations[m.name]; ok && old.id != m.id {
			delete(r.instances, m.name)
		}
		r.registrations[m.name] = m
		log().Debug("module registered", logger.Fields(
			logger.FieldName, m.name,
			logger.FieldScope, m.scope.String(),
			logger.FieldType, TypeName(m.typ),
		))
	}
}

// Has reports whether a module is registered under name.
func (r *Resolver) Has(name string) bool {
	_, ok := r.lookup(name)
	return ok
}

// Registration describes a registered module.
type Registration struct {
	Name        string `yaml:"name"`
	Scope       Scope  `yaml:"scope"`
	Type        string `yaml:"type"`
	Initialized bool   `yaml:"initialized"`
}

// Registrations lists the registered modules sorted by name. Initialized is
// true for singletons whose instance has been created.
func (r *Resolver) Registrations() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Registration, 0, len(r.registrations))
	for name, m := range r.registrations {
		_, initialized := r.instances[name]
		out = append(out, Registration{
			Name:        name,
			Scope:       m.scope,
			Type:        TypeName(m.typ),
			Initialized: initialized,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Warm creates every singleton that has not been created yet. All failures
// are collected and returned together.
func (r *Resolver) Warm() error {
	r.mu.RLock()
	modules := make([]Module, 0, len(r.registrations))
	for name, m := range r.registrations {
		if _, done := r.instances[name]; !done && m.scope == Singleton {
			modules = append(modules, m)
		}
	}
	r.mu.RUnlock()
	sort.Slice(modules, func(i, j int) bool { return modules[i].name < modules[j].name })

	start := time.Now()
	var errs []error
	for _, m := range modules {
		if _, err := r.produce(m, m.name, anyType); err != nil {
			log().Warn("warm failed", logger.ErrorFields("warm", err), logger.Fields(logger.FieldName, m.name))
			errs = append(errs, err)
		}
	}
	log().Info("resolver warmed", logger.DurationFields("warm", time.Since(start)), logger.Fields(
		"singletons", len(modules),
		"failed", len(errs),
	))
	return errors.Join(errs...)
}

func (r *Resolver) lookup(key string) (Module, bool) {
	r.mu.RLock()
	m, ok := r.registrations[key]
	r.mu.RUnlock()
	return m, ok
}

func (r *Resolver) cached(key string) (any, bool) {
	r.mu.RLock()
	v, ok := r.instances[key]
	r.mu.RUnlock()
	return v, ok
}

// expectation describes the type a caller wants back.
type expectation struct {
	name string
	fits func(any) bool
}

var anyType = expectationOf[any]()

func expectationOf[T any]() expectation {
	nilable := reflect.TypeFor[T]().Kind() == reflect.Interface
	return expectation{
		name: NameOf[T](),
		fits: func(v any) bool {
			if v == nil {
				return nilable
			}
			_, ok := v.(T)
			return ok
		},
	}
}

// produce applies m's scope and returns an instance that fits want.
func (r *Resolver) produce(m Module, key string, want expectation) (any, error) {
	if m.scope != Singleton {
		v, err := r.call(m, key)
		if err != nil {
			return nil, err
		}
		if !want.fits(v) {
			return nil, mismatch(key, want, v)
		}
		return v, nil
	}

	if v, ok := r.cached(key); ok {
		if !want.fits(v) {
			return nil, mismatch(key, want, v)
		}
		return v, nil
	}

	// The flight is shared by callers expecting different types, so it only
	// checks the product against the module's declared type.
	v, err, _ := r.flight.Do(key, func() (interface{}, error) {
		if v, ok := r.cached(key); ok {
			return v, nil
		}
		v, err := r.call(m, key)
		if err != nil {
			return nil, err
		}
		if !m.declares(v) {
			return nil, TypeMismatchError{Key: key, Expected: TypeName(m.typ), Got: typeNameOf(v)}
		}

		r.mu.Lock()
		// a Register between lookup and here may have replaced m
		if cur, ok := r.registrations[key]; ok && cur.id == m.id {
			r.instances[key] = v
		}
		r.mu.Unlock()

		log().Debug("singleton created", logger.Fields(logger.FieldName, key, logger.FieldType, typeNameOf(v)))
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	if !want.fits(v) {
		return nil, mismatch(key, want, v)
	}
	return v, nil
}

// call invokes the factory, turning a panic into FactoryPanicError.
func (r *Resolver) call(m Module, key string) (v any, err error) {
	if m.factory == nil {
		return nil, NilFactoryError{Key: key}
	}
	defer func() {
		if rec := recover(); rec != nil {
			v = nil
			err = FactoryPanicError{Key: key, Value: rec}
			log().WithError(err).Error("factory panicked", logger.Fields(logger.FieldName, key))
		}
	}()
	return m.factory(), nil
}

func mismatch(key string, want expectation, got any) error {
	return TypeMismatchError{Key: key, Expected: want.name, Got: typeNameOf(got)}
}
