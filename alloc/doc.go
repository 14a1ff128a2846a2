// Package alloc provides the allocator surface the value containers and the
// lexer route their storage through.
//
// # Overview
//
// Go's runtime owns the actual memory, so the allocator here is an accounting
// interface rather than a malloc shim: every container reserves capacity
// before allocating backing storage and releases it when the storage is
// freed. This keeps two properties from the original design intact:
//
//   - Allocation failure is observable and injectable. A Limited allocator
//     with a fixed budget makes every fallible path testable.
//   - Resource discipline is checkable. After freeing every structure built
//     against a Limited allocator, its InUse count must be zero.
//
// # Implementations
//
// System: never fails, tracks nothing. The default for production use.
//
// Limited: a fixed byte budget. Reserve fails with ErrExhausted once the
// budget would be exceeded; Release returns bytes to the budget.
//
// # Helpers
//
// Bytes, Slice, GrowSlice, ReleaseBytes and ReleaseSlice pair a Reserve or
// Release call with the matching make/copy so callers cannot forget the
// accounting half.
package alloc
