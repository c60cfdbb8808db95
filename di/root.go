package di

import "sync/atomic"

var root atomic.Pointer[Resolver]

func init() {
	root.Store(NewResolver())
}

// Root returns the process-wide composition root.
func Root() *Resolver {
	return root.Load()
}

// ResetRoot installs a fresh, empty composition root and returns the previous
// one. It exists for tests; accessors that already resolved keep their values.
func ResetRoot() *Resolver {
	return root.Swap(NewResolver())
}
