package value

import "github.com/jsonkit/jsonkit/alloc"

// Object is a string-keyed collection of Values backed by a hash map.
// The object owns the map, which owns every key and value stored in it.
// Insertion order is not preserved.
type Object struct {
	hm *hashMap
}

// NewObject creates an empty object. On allocation failure the returned
// Object is inert: Get misses, Delete reports false, Free is a no-op.
func NewObject(a alloc.Allocator) (Object, error) {
	hm, err := newHashMap(a)
	if err != nil {
		return Object{}, err
	}
	return Object{hm: hm}, nil
}

// Clone returns a deep copy of o. Mutating the copy never affects o.
func (o Object) Clone(a alloc.Allocator) (Object, error) {
	if o.hm == nil {
		return NewObject(a)
	}
	hm, err := o.hm.clone(a)
	if err != nil {
		return Object{}, err
	}
	return Object{hm: hm}, nil
}

// Set stores val under key, replacing and destroying any previous value.
// The key is copied; the caller keeps ownership of its copy. The value is
// taken as-is and owned by the object from here on. On allocation failure
// of a fresh insert the value stays with the caller.
func (o *Object) Set(a alloc.Allocator, key Str, val Value) error {
	alloc.Assert(o.hm != nil, "set on invalid object")
	if o.hm.set(a, key, val) {
		return nil
	}
	return o.hm.insert(a, key, val)
}

// Get returns the value stored under key. The value is a borrow: it is
// valid until the next mutation of o or its Free. A miss returns the
// invalid Value and false.
func (o Object) Get(key Str) (Value, bool) {
	if o.hm == nil {
		return Value{}, false
	}
	e := o.hm.get(key)
	if e == nil {
		return Value{}, false
	}
	return e.val, true
}

// Delete removes key and destroys its stored key copy and value.
// Returns false when the key is absent.
func (o *Object) Delete(a alloc.Allocator, key Str) bool {
	if o.hm == nil {
		return false
	}
	return o.hm.delete(a, key)
}

// Len returns the number of entries.
func (o Object) Len() int {
	if o.hm == nil {
		return 0
	}
	return o.hm.bucketSize
}

// Value embeds o in a Value. The Value takes ownership of o.
func (o Object) Value() Value {
	return Value{kind: KindObject, obj: o}
}

// Free destroys every entry and the map storage. Safe on constructor
// failure results.
func (o Object) Free(a alloc.Allocator) {
	if o.hm != nil {
		o.hm.free(a)
	}
}
