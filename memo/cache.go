package memo

import (
	"errors"
	"sync"
)

// ErrPanicked is returned to callers that waited on a call whose function
// panicked. The panic itself propagates in the goroutine that made the call.
var ErrPanicked = errors.New("memo: function panicked")

// Cache memoizes a fallible function and is safe for concurrent use.
//
// Concurrent misses for the same key are coalesced into one call. Only
// successful results are stored. Keys are compared with ==, so distinct
// pointers are distinct keys even when they point at equal values.
type Cache[K comparable, V any] struct {
	fn    func(K) (V, error)
	mu    sync.RWMutex
	vals  map[K]V
	calls map[K]*call[V]
}

// call is an in-flight or completed fn invocation.
type call[V any] struct {
	done chan struct{}
	val  V
	err  error
}

// New returns an empty Cache around fn.
func New[K comparable, V any](fn func(K) (V, error)) *Cache[K, V] {
	return &Cache[K, V]{
		fn:    fn,
		vals:  make(map[K]V),
		calls: make(map[K]*call[V]),
	}
}

// Get returns the cached value for key, computing it on a miss.
func (c *Cache[K, V]) Get(key K) (V, error) {
	c.mu.RLock()
	v, ok := c.vals[key]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	c.mu.Lock()
	if v, ok := c.vals[key]; ok {
		c.mu.Unlock()
		return v, nil
	}
	if cl, ok := c.calls[key]; ok {
		c.mu.Unlock()
		<-cl.done
		return cl.val, cl.err
	}
	cl := &call[V]{done: make(chan struct{})}
	c.calls[key] = cl
	c.mu.Unlock()

	c.do(key, cl)
	return cl.val, cl.err
}

func (c *Cache[K, V]) do(key K, cl *call[V]) {
	returned := false
	defer func() {
		if !returned {
			cl.err = ErrPanicked
		}
		c.mu.Lock()
		// Forget may have detached this call while it ran
		if c.calls[key] == cl {
			delete(c.calls, key)
			if cl.err == nil {
				c.vals[key] = cl.val
			}
		}
		c.mu.Unlock()
		close(cl.done)
	}()

	cl.val, cl.err = c.fn(key)
	returned = true
}

// Len reports how many keys currently hold a cached value.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vals)
}

// Forget drops the cached value for key so the next Get recomputes it. A
// call already in flight for key still answers its waiters but is not stored.
func (c *Cache[K, V]) Forget(key K) {
	c.mu.Lock()
	delete(c.vals, key)
	delete(c.calls, key)
	c.mu.Unlock()
}

// SyncErr is the closure form of New(fn).Get.
func SyncErr[K comparable, V any](fn func(K) (V, error)) func(K) (V, error) {
	return New(fn).Get
}

// Sync wraps an infallible fn the way Memoize does, but is safe for
// concurrent callers.
func Sync[K comparable, V any](fn func(K) V) func(K) V {
	c := New(func(key K) (V, error) { return fn(key), nil })
	return func(key K) V {
		v, _ := c.Get(key)
		return v
	}
}
