// Package singleton turns a constructor into a lazily built, at-most-once instance.
//
// A Wrapper sits in front of a constructor and intercepts every construction
// call. The first successful call builds the instance and caches it; later
// calls either get the cached pointer back (default) or fail with a
// MultipleInstantiationError (strict mode).
//
// Two forms mirror a bare and a parameterized decorator:
//
//   - Of(ctor): thread-safe, non-strict.
//   - New(ctor, opts...): configured with WithThreadSafe, WithStrict, WithName
//     or WithConfig.
//
// Each Wrapper owns its own cache slot and lock. There is no package-level
// registry; when keyed lookup by type is wanted, create a Registry explicitly
// in your composition root.
//
// Quick guidance
//
// Use the default (thread-safe) mode unless construction provably happens on a
// single goroutine. Without it, concurrent first calls may each run the
// constructor and observe different instances.
//
// Use strict mode when a second construction attempt is a bug you want to
// surface, e.g. a component that must be wired exactly once at startup.
//
// Arguments passed after the instance exists are discarded silently.
//
// Import
//
//	"github.com/sghaida/singleton/singleton"
package singleton
