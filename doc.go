// Package singleton is the root of a small library for at-most-once construction in Go.
//
// The repository keeps the surface intentionally small:
//
//   - singleton: Wrapper[T] (lazy, cached construction with optional locking
//     and strict mode), YAML-loadable Config, and an explicit type-keyed Registry
//   - examples/applogger: a process-wide file logger built on a Wrapper
//
// There is no package-level state: every Wrapper owns its cache slot and lock,
// and is created once in your composition root (main/bootstrap).
//
// Package singleton See subpackages:
//   - singleton: the library package
//   - examples/*: runnable examples
package singleton
