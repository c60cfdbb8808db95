package memo

// Memoize wraps fn so that it is evaluated at most once per distinct key for
// the lifetime of the returned closure.
//
// The returned function is not safe for concurrent use. See Sync.
func Memoize[K comparable, V any](fn func(K) V) func(K) V {
	cache := make(map[K]V)
	return func(key K) V {
		if v, ok := cache[key]; ok {
			return v
		}
		v := fn(key)
		cache[key] = v
		return v
	}
}
