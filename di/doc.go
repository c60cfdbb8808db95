// Package di is a small, name-keyed dependency injection container.
//
// A Module binds a name to a Scope and a factory. Names default to the
// canonical name of the factory's declared return type (see NameOf), so most
// registrations never spell a name out:
//
//	di.NewResolver(
//	    di.NewModule(NewClock, di.AsSingleton()),
//	    di.NewModule(func() Greeter { return &englishGreeter{} }),
//	).Build()
//
// Build merges the modules into the process-wide composition root (Root).
// Registration is deferred until Build: constructing a Resolver has no side
// effects. Several resolvers may be built into the same root; on a name
// collision the module built last wins.
//
// Resolution is generic over the expected type:
//
//	clock, err := di.Resolve[*Clock](di.Root())
//
// Prototype modules run their factory on every resolution. Singleton modules
// run it once per resolver and hand back the cached instance afterwards.
//
// Call sites that should not know about the root at all declare an accessor:
//
//	var greeter = di.Inject[Greeter]()
//	...
//	g := greeter.MustGet()
//
// The accessor resolves on its first successful read and memoizes the result
// for its own lifetime, even if the root is rebuilt later.
//
// # Errors
//
// Misconfiguration is reported, never papered over with a zero value:
//
//   - ModuleNotFoundError: no module under the requested key(s)
//   - TypeMismatchError: the module's product is not the expected type
//   - FactoryPanicError: the factory panicked
//   - NilFactoryError: the module has no factory
//
// The Must* helpers turn these into panics for composition roots that prefer
// to fail fast at startup.
//
// # Concurrency
//
// A Resolver is safe for concurrent use. Factories run outside the resolver's
// lock, so a factory may resolve its own dependencies from the same resolver.
// Concurrent first resolutions of a singleton share one factory call. Cycles
// are not detected; a factory that resolves its own key blocks forever.
package di
