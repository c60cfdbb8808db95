package di

// Fallback holds the outcome of a two-candidate resolution: either the
// preferred P or the fallback F, never both.
type Fallback[P, F any] struct {
	preferred   P
	fallback    F
	isPreferred bool
	key         string
}

// IsPreferred reports whether the preferred candidate was resolved.
func (f Fallback[P, F]) IsPreferred() bool { return f.isPreferred }

// Preferred returns the preferred instance and true, or the zero P and false.
func (f Fallback[P, F]) Preferred() (P, bool) { return f.preferred, f.isPreferred }

// Fallback returns the fallback instance and true, or the zero F and false.
func (f Fallback[P, F]) Fallback() (F, bool) { return f.fallback, !f.isPreferred }

// Key returns the registration key that was resolved.
func (f Fallback[P, F]) Key() string { return f.key }

// ResolveWithFallback resolves NameOf[P]() when it is registered and
// NameOf[F]() otherwise.
func ResolveWithFallback[P, F any](r *Resolver) (Fallback[P, F], error) {
	return ResolveWithFallbackNamed[P, F](r, "")
}

// ResolveWithFallbackNamed resolves the preferred candidate if it is
// registered, else the fallback candidate. With a non-empty name both
// candidates share that key, so the result is the preferred variant or
// ModuleNotFoundError.
//
// Presence alone decides: a registered preferred module whose factory fails
// yields that error, the fallback is not tried. Singletons are cached under
// the key of the module that was resolved.
func ResolveWithFallbackNamed[P, F any](r *Resolver, name string) (Fallback[P, F], error) {
	var out Fallback[P, F]
	if r == nil {
		r = Root()
	}

	preferredKey, fallbackKey := name, name
	if name == "" {
		preferredKey, fallbackKey = NameOf[P](), NameOf[F]()
	}

	if m, ok := r.lookup(preferredKey); ok {
		v, err := resolveModule[P](r, m, preferredKey)
		if err != nil {
			return out, err
		}
		out.preferred, out.isPreferred, out.key = v, true, preferredKey
		return out, nil
	}

	if m, ok := r.lookup(fallbackKey); ok {
		v, err := resolveModule[F](r, m, fallbackKey)
		if err != nil {
			return out, err
		}
		out.fallback, out.key = v, fallbackKey
		return out, nil
	}

	keys := []string{preferredKey}
	if fallbackKey != preferredKey {
		keys = append(keys, fallbackKey)
	}
	return out, ModuleNotFoundError{Keys: keys}
}
