// Package memo provides cache-on-first-call wrappers for pure functions.
//
// Three flavours are available:
//
//   - Memoize: the plain wrapper. One private map per returned closure, no
//     eviction, no locking. Use it when the closure never escapes a single
//     goroutine.
//   - Sync: same contract, safe for concurrent callers. Concurrent first
//     calls for one key share a single invocation of the wrapped function.
//   - SyncErr / New: for fallible functions. Successes are cached, failures
//     are handed to every waiter and then forgotten so the next call retries.
//
// Example:
//
//	square := memo.Memoize(func(n int) int { return n * n })
//	square(4) // computes
//	square(4) // cached
package memo
