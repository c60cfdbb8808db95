package di

import "github.com/sghaida/rootdi/memo"

// InjectOption customises Inject and InjectWithFallback.
type InjectOption func(*injectOptions)

type injectOptions struct {
	name string
	from *Resolver
}

// InjectNamed resolves the registration called name instead of the
// canonical type name.
func InjectNamed(name string) InjectOption {
	return func(o *injectOptions) { o.name = name }
}

// InjectFrom resolves against r instead of Root().
func InjectFrom(r *Resolver) InjectOption {
	return func(o *injectOptions) { o.from = r }
}

func newInjectOptions(opts []InjectOption) injectOptions {
	var o injectOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// source is read lazily so an accessor declared before the root is rebuilt
// still sees the current root on its first read.
func (o injectOptions) source() *Resolver {
	if o.from != nil {
		return o.from
	}
	return Root()
}

// Injected is a lazily resolved dependency bound to one call site.
//
// The first successful Get resolves the dependency; every later Get returns
// the same value without consulting the resolver again. Failed reads are not
// remembered. Injected is safe for concurrent use.
type Injected[T any] struct {
	name    string
	resolve func(string) (T, error)
}

// Inject declares an accessor for T.
//
//	var clock = di.Inject[*Clock]()
//	var primary = di.Inject[*sql.DB](di.InjectNamed("db.primary"))
func Inject[T any](opts ...InjectOption) *Injected[T] {
	o := newInjectOptions(opts)
	return &Injected[T]{
		name: o.name,
		resolve: memo.SyncErr(func(name string) (T, error) {
			return ResolveNamed[T](o.source(), name)
		}),
	}
}

// Get returns the dependency, resolving it on first use.
func (i *Injected[T]) Get() (T, error) {
	return i.resolve(i.name)
}

// MustGet is Get that panics on error.
func (i *Injected[T]) MustGet() T {
	v, err := i.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Name returns the key the accessor resolves.
func (i *Injected[T]) Name() string {
	if i.name != "" {
		return i.name
	}
	return NameOf[T]()
}

// InjectedWithFallback is the two-candidate form of Injected.
type InjectedWithFallback[P, F any] struct {
	name    string
	resolve func(string) (Fallback[P, F], error)
}

// InjectWithFallback declares an accessor that prefers P and falls back to F.
func InjectWithFallback[P, F any](opts ...InjectOption) *InjectedWithFallback[P, F] {
	o := newInjectOptions(opts)
	return &InjectedWithFallback[P, F]{
		name: o.name,
		resolve: memo.SyncErr(func(name string) (Fallback[P, F], error) {
			return ResolveWithFallbackNamed[P, F](o.source(), name)
		}),
	}
}

// Get returns the resolved variant, resolving it on first use.
func (i *InjectedWithFallback[P, F]) Get() (Fallback[P, F], error) {
	return i.resolve(i.name)
}

// MustGet is Get that panics on error.
func (i *InjectedWithFallback[P, F]) MustGet() Fallback[P, F] {
	v, err := i.Get()
	if err != nil {
		panic(err)
	}
	return v
}
