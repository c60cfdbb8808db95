package di

import (
	"reflect"
	"slices"
	"sync/atomic"
)

var moduleSeq atomic.Uint64

// Module is an immutable registration: a name, a scope, and a factory.
//
// Build Modules with NewModule or Provide. The zero Module has no factory and
// fails to resolve with NilFactoryError.
type Module struct {
	id      uint64
	name    string
	scope   Scope
	typ     reflect.Type
	factory func() any
}

// ModuleOption customises NewModule.
type ModuleOption func(*moduleOptions)

type moduleOptions struct {
	name  string
	scope Scope
}

// Named registers the module under name instead of the canonical type name.
func Named(name string) ModuleOption {
	return func(o *moduleOptions) { o.name = name }
}

// WithScope sets the module's scope.
func WithScope(scope Scope) ModuleOption {
	return func(o *moduleOptions) { o.scope = scope }
}

// AsSingleton is WithScope(Singleton).
func AsSingleton() ModuleOption { return WithScope(Singleton) }

// AsPrototype is WithScope(Prototype).
func AsPrototype() ModuleOption { return WithScope(Prototype) }

// NewModule declares a module producing T.
//
// The factory is not called here; it runs when the module is resolved. Without
// Named, the module's name is NameOf[T]().
func NewModule[T any](factory func() T, opts ...ModuleOption) Module {
	o := moduleOptions{scope: Prototype}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	typ := reflect.TypeFor[T]()
	if o.name == "" {
		o.name = TypeName(typ)
	}

	m := Module{
		id:    moduleSeq.Add(1),
		name:  o.name,
		scope: o.scope,
		typ:   typ,
	}
	if factory != nil {
		m.factory = func() any { return factory() }
	}
	return m
}

// Provide declares a singleton module around an already built instance.
// Scope options are ignored.
func Provide[T any](instance T, opts ...ModuleOption) Module {
	opts = append(slices.Clip(opts), AsSingleton())
	return NewModule(func() T { return instance }, opts...)
}

// Name returns the registration key.
func (m Module) Name() string { return m.name }

// Scope returns the lifecycle policy.
func (m Module) Scope() Scope { return m.scope }

// Type returns the declared product type, or nil for the zero Module.
func (m Module) Type() reflect.Type { return m.typ }

// declares reports whether v is a valid product of m's declared type. A nil
// product is only valid for an interface type.
func (m Module) declares(v any) bool {
	if m.typ == nil {
		return true
	}
	if v == nil {
		return m.typ.Kind() == reflect.Interface
	}
	return reflect.TypeOf(v).AssignableTo(m.typ)
}

// Modules collects modules in declaration order.
//
//	mods := di.NewModules().
//	    Add(di.NewModule(NewClock, di.AsSingleton())).
//	    Add(di.NewModule(NewGreeter))
//	mods.Resolver().Build()
type Modules struct {
	list []Module
}

// NewModules starts a collection with the given modules.
func NewModules(modules ...Module) *Modules {
	return &Modules{list: slices.Clone(modules)}
}

// Add appends a module and returns the collection for chaining.
func (b *Modules) Add(m Module) *Modules {
	b.list = append(b.list, m)
	return b
}

// List returns a copy of the collected modules.
func (b *Modules) List() []Module {
	return slices.Clone(b.list)
}

// Resolver returns a resolver holding the collected modules.
func (b *Modules) Resolver() *Resolver {
	return NewResolver(b.list...)
}
