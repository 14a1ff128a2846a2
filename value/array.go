package value

import "github.com/jsonkit/jsonkit/alloc"

// Array is an immutable contiguous sequence of Values. The zero Array is
// empty and owns no storage. Arrays own their elements; Free releases
// every element and the spine.
type Array struct {
	items []Value
}

// NewArray returns an empty array. It never allocates.
func NewArray() Array {
	return Array{}
}

// ArrayOf builds an array from the given values. Ownership of every value
// transfers into the result. On allocation failure the values remain owned
// by the caller and the returned array is empty and safe to Free.
func ArrayOf(a alloc.Allocator, vals ...Value) (Array, error) {
	return Array{items: vals}.Clone(a)
}

// Clone copies the spine of ar into fresh storage. The copy is structural:
// element ownership transfers to the returned array, so the caller must
// not also Free ar's elements. Deep copies go through Value.Clone.
func (ar Array) Clone(a alloc.Allocator) (Array, error) {
	if len(ar.items) == 0 {
		return NewArray(), nil
	}
	items, err := alloc.Slice[Value](a, len(ar.items))
	if err != nil {
		return NewArray(), err
	}
	copy(items, ar.items)
	return Array{items: items}, nil
}

// deepClone copies the spine and recursively clones every element.
// Used by Value.Clone; Clone stays structural.
func (ar Array) deepClone(a alloc.Allocator) (Array, error) {
	if len(ar.items) == 0 {
		return NewArray(), nil
	}
	items, err := alloc.Slice[Value](a, len(ar.items))
	if err != nil {
		return NewArray(), err
	}
	for i, v := range ar.items {
		cloned, err := v.Clone(a)
		if err != nil {
			// Destroy the partial result before reporting.
			for j := 0; j < i; j++ {
				items[j].Free(a)
			}
			alloc.ReleaseSlice(a, items)
			return NewArray(), err
		}
		items[i] = cloned
	}
	return Array{items: items}, nil
}

// Concat builds a new array holding left's elements followed by right's.
// The spine is copied; element ownership transfers into the result.
// On allocation failure both inputs are left untouched.
func Concat(a alloc.Allocator, left, right Array) (Array, error) {
	total := len(left.items) + len(right.items)
	if total == 0 {
		return NewArray(), nil
	}
	items, err := alloc.Slice[Value](a, total)
	if err != nil {
		return NewArray(), err
	}
	copy(items, left.items)
	copy(items[len(left.items):], right.items)
	return Array{items: items}, nil
}

// Len returns the element count.
func (ar Array) Len() int { return len(ar.items) }

// At returns the element at index i. The element is a borrow; the array
// retains ownership.
func (ar Array) At(i int) Value {
	alloc.Assert(i >= 0 && i < len(ar.items), "array index out of range")
	return ar.items[i]
}

// Value embeds ar in a Value. The Value takes ownership of ar.
func (ar Array) Value() Value {
	return Value{kind: KindArray, arr: ar}
}

// Free releases every element and the spine. Safe on the empty array.
func (ar Array) Free(a alloc.Allocator) {
	for _, v := range ar.items {
		v.Free(a)
	}
	if ar.items != nil {
		alloc.ReleaseSlice(a, ar.items)
	}
}
