// Package value implements the in-memory JSON value model: a tagged Value
// over null, boolean, number, string, array and object, with explicit
// ownership and allocator-routed storage.
//
// # Overview
//
// Every container owns its payload exclusively. Clone produces an
// independent deep copy, Free releases a structure and everything it owns.
// Fallible operations return the safe-to-free empty form of their type
// alongside the error, so cleanup code never needs to branch on failure.
//
// Objects are backed by a string-keyed hash map with inline bucket slots
// and an external collision pool. Chain links are indices into the pool,
// so growing the pool or copying the map never invalidates a chain.
// Iteration order is bucket order; it is unspecified and not stable across
// mutations.
//
// # Ownership rules
//
//   - Object.Set copies the key and takes ownership of the value.
//   - Object.Get returns a borrow; it dies at the next mutation or Free.
//   - Array.Clone and Concat copy the spine only and transfer element
//     ownership to the result; Value.Clone is the deep copy.
//
// Nothing here is safe for concurrent use. Do not mutate an object while
// iterating it.
package value
