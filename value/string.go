package value

import (
	"bytes"

	"github.com/jsonkit/jsonkit/alloc"
)

// Str is a length-prefixed byte buffer. The zero value is the empty string.
//
// Invariant: an empty Str holds no storage (nil data); a non-empty Str
// exclusively owns its bytes.
type Str struct {
	data []byte
}

// NewStr creates a Str owning a copy of b. A zero-length input yields the
// empty string without allocating. On allocation failure the returned Str
// is empty and safe to Free.
func NewStr(a alloc.Allocator, b []byte) (Str, error) {
	if len(b) == 0 {
		return EmptyStr(), nil
	}
	buf, err := alloc.Bytes(a, len(b))
	if err != nil {
		return EmptyStr(), err
	}
	copy(buf, b)
	return Str{data: buf}, nil
}

// StrFromString creates a Str owning a copy of s.
func StrFromString(a alloc.Allocator, s string) (Str, error) {
	return NewStr(a, []byte(s))
}

// EmptyStr returns the empty string. It never allocates.
func EmptyStr() Str {
	return Str{}
}

// Clone returns an independent copy of s.
func (s Str) Clone(a alloc.Allocator) (Str, error) {
	return NewStr(a, s.data)
}

// Equal reports whether s and t hold the same bytes.
func (s Str) Equal(t Str) bool {
	if len(s.data) != len(t.data) {
		return false
	}
	return bytes.Equal(s.data, t.data)
}

// Len returns the byte length.
func (s Str) Len() int { return len(s.data) }

// Bytes returns the underlying buffer. The bytes remain owned by s.
func (s Str) Bytes() []byte { return s.data }

// String returns a Go string copy of the contents.
func (s Str) String() string { return string(s.data) }

// Value embeds s in a Value. The Value takes ownership of s.
func (s Str) Value() Value {
	return Value{kind: KindString, str: s}
}

// Free releases the buffer. Safe on the empty string and on constructor
// failure results.
func (s Str) Free(a alloc.Allocator) {
	if len(s.data) > 0 {
		alloc.ReleaseBytes(a, s.data)
	}
}
