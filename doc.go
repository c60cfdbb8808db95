// Package rootdi is a small dependency injection container built around a
// single composition root.
//
// The module is organised as:
//
//   - di: modules, scopes, resolvers, the composition root, fallback
//     resolution and call-site accessors
//   - memo: cache-on-first-call wrappers used by the accessors
//   - logger, config: structured logging and configuration loading for
//     binaries that host a root
//   - cmd/rootdi-demo: an end-to-end wiring example
//
// Wiring stays explicit: factories are ordinary closures, and nothing is
// constructed by reflection. Reflection is only used to derive a stable
// registration name from a type.
//
// Import
//
//	"github.com/sghaida/rootdi/di"
package rootdi
