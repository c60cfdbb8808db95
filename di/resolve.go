package di

// Resolve returns the instance registered under NameOf[T]().
//
// A nil r resolves against Root().
func Resolve[T any](r *Resolver) (T, error) {
	return ResolveNamed[T](r, "")
}

// ResolveNamed returns the instance registered under name, or under
// NameOf[T]() when name is empty.
//
// It fails with ModuleNotFoundError when nothing is registered under the key,
// and with TypeMismatchError when the module's product is not a T.
func ResolveNamed[T any](r *Resolver, name string) (T, error) {
	if r == nil {
		r = Root()
	}
	key := name
	if key == "" {
		key = NameOf[T]()
	}

	m, ok := r.lookup(key)
	if !ok {
		var zero T
		return zero, ModuleNotFoundError{Keys: []string{key}}
	}
	return resolveModule[T](r, m, key)
}

// MustResolve is Resolve that panics on error.
func MustResolve[T any](r *Resolver) T {
	return MustResolveNamed[T](r, "")
}

// MustResolveNamed is ResolveNamed that panics on error.
func MustResolveNamed[T any](r *Resolver, name string) T {
	v, err := ResolveNamed[T](r, name)
	if err != nil {
		panic(err)
	}
	return v
}

func resolveModule[T any](r *Resolver, m Module, key string) (T, error) {
	var zero T
	raw, err := r.produce(m, key, expectationOf[T]())
	if err != nil {
		return zero, err
	}
	// comma-ok: raw may be an untyped nil for interface T
	v, _ := raw.(T)
	return v, nil
}
