// Command rootdi-demo wires a tiny greeting service through the rootdi
// composition root.
//
// Usage:
//
//	rootdi-demo [-config config.yml] [-env .env] [-dump] [-name someone]
//
// The demo registers two groups of modules from separate resolvers, builds
// both into the root, optionally warms the singletons, greets through
// package-level accessors and, with -dump, prints the registrations as YAML.
package main
