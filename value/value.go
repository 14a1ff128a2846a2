package value

import "github.com/jsonkit/jsonkit/alloc"

// Kind identifies the variant a Value carries.
type Kind uint8

const (
	// KindInvalid is the zero state. It never appears in well-formed
	// data; it only marks absent results and empty map slots.
	KindInvalid Kind = iota
	KindObject
	KindArray
	KindNumber
	KindBoolean
	KindString
	KindNull
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindNull:
		return "null"
	}
	return "unknown"
}

// Value is a tagged sum over the JSON variants. The zero Value has
// KindInvalid. Scalars (null, boolean, number) carry no owned storage;
// string, array and object values own their payload exclusively.
type Value struct {
	kind    Kind
	boolean bool
	number  float64
	str     Str
	arr     Array
	obj     Object
}

// Boolean returns a boolean Value. It cannot fail.
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, boolean: b}
}

// Number returns a number Value. It cannot fail.
func Number(x float64) Value {
	return Value{kind: KindNumber, number: x}
}

// Null returns the null Value. It cannot fail.
func Null() Value {
	return Value{kind: KindNull}
}

// NewStringValue creates a string Value owning a copy of s.
func NewStringValue(a alloc.Allocator, s string) (Value, error) {
	str, err := StrFromString(a, s)
	if err != nil {
		return Value{}, err
	}
	return str.Value(), nil
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. The value must be a boolean.
func (v Value) Bool() bool {
	alloc.Assert(v.kind == KindBoolean, "value is not a boolean")
	return v.boolean
}

// Number returns the numeric payload. The value must be a number.
func (v Value) Number() float64 {
	alloc.Assert(v.kind == KindNumber, "value is not a number")
	return v.number
}

// Str returns the string payload. The value must be a string.
// The returned Str is a borrow; the Value retains ownership.
func (v Value) Str() Str {
	alloc.Assert(v.kind == KindString, "value is not a string")
	return v.str
}

// Array returns the array payload. The value must be an array.
// The returned Array is a borrow; the Value retains ownership.
func (v Value) Array() Array {
	alloc.Assert(v.kind == KindArray, "value is not an array")
	return v.arr
}

// Object returns the object payload. The value must be an object.
// The returned Object is a borrow; the Value retains ownership.
func (v Value) Object() Object {
	alloc.Assert(v.kind == KindObject, "value is not an object")
	return v.obj
}

// Clone returns a deep copy of v. Scalars and invalid values copy as-is;
// containers recurse. On failure the returned Value is invalid and safe
// to Free.
func (v Value) Clone(a alloc.Allocator) (Value, error) {
	switch v.kind {
	case KindObject:
		obj, err := v.obj.Clone(a)
		if err != nil {
			return Value{}, err
		}
		return obj.Value(), nil
	case KindArray:
		arr, err := v.arr.deepClone(a)
		if err != nil {
			return Value{}, err
		}
		return arr.Value(), nil
	case KindString:
		str, err := v.str.Clone(a)
		if err != nil {
			return Value{}, err
		}
		return str.Value(), nil
	}
	return v, nil
}

// Free releases the payload v owns, recursively. Scalars and invalid
// values are no-ops. Free is total: it accepts any constructor result,
// including failure sentinels.
func (v Value) Free(a alloc.Allocator) {
	switch v.kind {
	case KindObject:
		v.obj.Free(a)
	case KindArray:
		v.arr.Free(a)
	case KindString:
		v.str.Free(a)
	}
}
