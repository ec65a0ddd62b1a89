// Package schema provides the principal schematics for all other packages. It
// defines the expected-structure model (a [Config] of [Item] trees, keyed by
// well-known directory [Kind]), its parsing from declarative documents, the
// guarded [Store] holding the loaded model, and implementations for handling
// (Unix-based) operating system syscalls. The package serves as a
// foundational layer for filesystem interactions throughout the codebase.
package schema
