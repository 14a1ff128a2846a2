package alloc

import (
	"unsafe"

	"github.com/jsonkit/jsonkit/internal/overflow"
)

// Allocator accounts for the storage backing strings, arrays, hash map
// tables and lexer copies. Implementations decide whether a reservation
// succeeds; the Go runtime provides the memory itself.
type Allocator interface {
	// Reserve accounts for n bytes of storage about to be allocated.
	// It returns ErrExhausted (possibly wrapped) when the reservation
	// cannot be covered. Reserve with n <= 0 is a no-op.
	Reserve(n int) error

	// Release returns n bytes previously reserved. Release with n <= 0
	// is a no-op.
	Release(n int)
}

// Assert reports a programmer error. It is the injected assertion point of
// the allocator surface: violated contracts abort instead of corrupting
// state.
func Assert(cond bool, msg string) {
	if !cond {
		panic("alloc: assertion failed: " + msg)
	}
}

// Bytes allocates n bytes through a. On failure the returned slice is nil.
func Bytes(a Allocator, n int) ([]byte, error) {
	Assert(a != nil, "nil allocator")
	if n <= 0 {
		return nil, nil
	}
	if err := a.Reserve(n); err != nil {
		return nil, err
	}
	return make([]byte, n), nil
}

// ReleaseBytes returns a buffer obtained from Bytes to the allocator.
// Safe to call with nil.
func ReleaseBytes(a Allocator, buf []byte) {
	Assert(a != nil, "nil allocator")
	a.Release(cap(buf))
}

// Slice allocates a zeroed slice of n elements through a, accounting
// n * sizeof(T) bytes. A size that overflows int fails like any other
// uncoverable reservation.
func Slice[T any](a Allocator, n int) ([]T, error) {
	Assert(a != nil, "nil allocator")
	if n <= 0 {
		return nil, nil
	}
	var zero T
	size, ok := overflow.Mul(n, int(unsafe.Sizeof(zero)))
	if !ok {
		return nil, ErrExhausted
	}
	if err := a.Reserve(size); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// GrowSlice reallocates s to n elements, copying the existing contents.
// The old slice's accounting is released only when the reallocation
// succeeds, so a failed grow leaves s usable.
func GrowSlice[T any](a Allocator, s []T, n int) ([]T, error) {
	Assert(a != nil, "nil allocator")
	Assert(n >= len(s), "grow below current length")
	grown, err := Slice[T](a, n)
	if err != nil {
		return nil, err
	}
	copy(grown, s)
	ReleaseSlice(a, s)
	return grown, nil
}

// ReleaseSlice returns a slice obtained from Slice to the allocator.
// Safe to call with nil.
func ReleaseSlice[T any](a Allocator, s []T) {
	Assert(a != nil, "nil allocator")
	var zero T
	a.Release(cap(s) * int(unsafe.Sizeof(zero)))
}
