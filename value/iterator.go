package value

// Entry is one key/value pair yielded during iteration. The key is a
// borrow and the value pointer aims into the object's storage; both die
// at the next mutation of the object or its Free.
type Entry struct {
	Key   Str
	Value *Value
}

// Iterator walks every entry of an Object in bucket order. The order is
// unspecified and not stable across mutations. Mutating the object while
// iterating is undefined by contract.
type Iterator struct {
	hm          *hashMap
	bucketIndex int
	cur         *mapEntry
}

// Iter returns an iterator positioned before the first entry.
func (o Object) Iter() Iterator {
	return Iterator{hm: o.hm}
}

// Next yields the next entry, or false when the iteration is done.
// Chain successors of the current entry are visited before the scan
// moves to the next occupied primary slot.
func (it *Iterator) Next() (Entry, bool) {
	if it.hm == nil {
		return Entry{}, false
	}

	if it.cur != nil && it.cur.next != noNext {
		it.cur = &it.hm.collisions[it.cur.next]
		return Entry{Key: it.cur.key, Value: &it.cur.val}, true
	}

	for it.bucketIndex < len(it.hm.bucket) {
		e := &it.hm.bucket[it.bucketIndex]
		it.bucketIndex++
		if e.used {
			it.cur = e
			return Entry{Key: e.key, Value: &e.val}, true
		}
	}
	return Entry{}, false
}
