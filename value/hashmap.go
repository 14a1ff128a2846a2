package value

import (
	"github.com/jsonkit/jsonkit/alloc"
	"github.com/jsonkit/jsonkit/internal/djb2"
)

const (
	// initialBucketSize is the bucket capacity of a fresh map. Larger
	// values trade memory for fewer rehashes. Must be > 0.
	initialBucketSize = 16

	// growthFactor multiplies the bucket and collision pool capacities
	// on growth. Must be > 1.
	growthFactor = 2

	// maxLoadFactor is the occupancy ratio above which the bucket table
	// is rehashed into a larger one. Must be in (0, 1].
	maxLoadFactor = 0.7

	// noNext marks an entry without a chain successor.
	noNext = int32(-1)
)

// mapEntry is one slot of the bucket table or the collision pool.
//
// next is an index into the collision pool rather than a pointer, so
// growing the pool or copying the map never invalidates a chain link.
// used is the explicit occupancy discriminant; unused slots are never
// read beyond that flag.
type mapEntry struct {
	key  Str
	val  Value
	next int32
	used bool
}

// hashMap is a string-keyed map with inline bucket slots and an external
// collision pool. Keys are unique under byte-wise equality. Internal to
// Object; all access goes through the public Object API.
type hashMap struct {
	bucket     []mapEntry
	bucketSize int // occupied primary slots + chained entries

	// collisions is the chain node pool. collisionsLen is a high-water
	// mark: slots vacated by delete stay tombstoned until the next
	// rehash.
	collisions    []mapEntry
	collisionsLen int
}

// newHashMap creates an empty map with the initial capacities.
func newHashMap(a alloc.Allocator) (*hashMap, error) {
	bucket, err := alloc.Slice[mapEntry](a, initialBucketSize)
	if err != nil {
		return nil, err
	}
	collisions, err := alloc.Slice[mapEntry](a, initialBucketSize)
	if err != nil {
		alloc.ReleaseSlice(a, bucket)
		return nil, err
	}
	return &hashMap{bucket: bucket, collisions: collisions}, nil
}

func (hm *hashMap) slot(key Str) int {
	return int(djb2.Sum(key.Bytes()) % uint64(len(hm.bucket)))
}

func (hm *hashMap) loadFactor() float64 {
	return float64(hm.bucketSize) / float64(len(hm.bucket))
}

// get returns the entry holding key, or nil on a miss.
func (hm *hashMap) get(key Str) *mapEntry {
	e := &hm.bucket[hm.slot(key)]
	if !e.used {
		return nil
	}
	for {
		if e.key.Equal(key) {
			return e
		}
		if e.next == noNext {
			return nil
		}
		e = &hm.collisions[e.next]
	}
}

// insert places a copy of key with val into the map. The key must not be
// present. The value is taken as-is; the map owns it afterwards. On
// allocation failure the map is unchanged and the value stays with the
// caller.
func (hm *hashMap) insert(a alloc.Allocator, key Str, val Value) error {
	k, err := key.Clone(a)
	if err != nil {
		return err
	}

	idx := hm.slot(k)
	if !hm.bucket[idx].used {
		hm.bucket[idx] = mapEntry{key: k, val: val, next: noNext, used: true}
	} else {
		// Walk to the chain tail, remembering its location by index so
		// a collision pool reallocation cannot strand the link.
		tailInBucket := true
		tail := idx
		for e := &hm.bucket[idx]; e.next != noNext; e = &hm.collisions[tail] {
			tailInBucket = false
			tail = int(e.next)
		}

		if hm.collisionsLen+1 > len(hm.collisions) {
			grown, err := alloc.GrowSlice(a, hm.collisions, len(hm.collisions)*growthFactor)
			if err != nil {
				k.Free(a)
				return err
			}
			hm.collisions = grown
		}

		slot := hm.collisionsLen
		hm.collisions[slot] = mapEntry{key: k, val: val, next: noNext, used: true}
		if tailInBucket {
			hm.bucket[tail].next = int32(slot)
		} else {
			hm.collisions[tail].next = int32(slot)
		}
		hm.collisionsLen++
	}
	hm.bucketSize++

	if hm.loadFactor() > maxLoadFactor {
		// A failed grow is not fatal: the entry is in place and the map
		// stays consistent, merely over the load target. The next
		// insert retries.
		_ = hm.grow(a)
	}
	return nil
}

// set replaces the value of an existing key, destroying the old value.
// The existing key is retained. Returns false when the key is absent.
func (hm *hashMap) set(a alloc.Allocator, key Str, val Value) bool {
	e := hm.get(key)
	if e == nil {
		return false
	}
	e.val.Free(a)
	e.val = val
	return true
}

// delete removes key from the map, destroying its key copy and value.
// Returns false when the key is absent. Vacated collision pool slots are
// tombstoned until the next rehash.
func (hm *hashMap) delete(a alloc.Allocator, key Str) bool {
	idx := hm.slot(key)
	e := &hm.bucket[idx]
	if !e.used {
		return false
	}

	if e.key.Equal(key) {
		e.key.Free(a)
		e.val.Free(a)
		if e.next != noNext {
			// Pull the chain successor into the primary slot.
			succ := e.next
			*e = hm.collisions[succ]
			hm.collisions[succ] = mapEntry{next: noNext}
		} else {
			*e = mapEntry{next: noNext}
		}
		hm.bucketSize--
		return true
	}

	for e.next != noNext {
		n := &hm.collisions[e.next]
		if n.key.Equal(key) {
			n.key.Free(a)
			n.val.Free(a)
			e.next = n.next
			*n = mapEntry{next: noNext}
			hm.bucketSize--
			return true
		}
		e = n
	}
	return false
}

// grow rehashes into a table of growthFactor times the capacity. Keys are
// re-copied by the insert path; values transfer as-is. On failure the map
// is left exactly as it was and the partially built table is destroyed.
func (hm *hashMap) grow(a alloc.Allocator) error {
	newCap := len(hm.bucket) * growthFactor
	bucket, err := alloc.Slice[mapEntry](a, newCap)
	if err != nil {
		return err
	}
	collisions, err := alloc.Slice[mapEntry](a, newCap)
	if err != nil {
		alloc.ReleaseSlice(a, bucket)
		return err
	}
	next := hashMap{bucket: bucket, collisions: collisions}

	for i := range hm.bucket {
		e := &hm.bucket[i]
		if !e.used {
			continue
		}
		if err := next.insert(a, e.key, e.val); err != nil {
			next.releaseKeysAndTables(a)
			return err
		}
		for j := e.next; j != noNext; j = hm.collisions[j].next {
			c := &hm.collisions[j]
			if err := next.insert(a, c.key, c.val); err != nil {
				next.releaseKeysAndTables(a)
				return err
			}
		}
	}

	// Values now live in the new table; drop only the old keys and the
	// old storage.
	hm.releaseKeysAndTables(a)
	*hm = next
	return nil
}

// releaseKeysAndTables frees every stored key copy and the table storage,
// leaving the values untouched. Used by grow, where values are shared
// between the old and new table.
func (hm *hashMap) releaseKeysAndTables(a alloc.Allocator) {
	for i := range hm.bucket {
		if hm.bucket[i].used {
			hm.bucket[i].key.Free(a)
		}
	}
	for i := 0; i < hm.collisionsLen; i++ {
		if hm.collisions[i].used {
			hm.collisions[i].key.Free(a)
		}
	}
	alloc.ReleaseSlice(a, hm.bucket)
	alloc.ReleaseSlice(a, hm.collisions)
}

// clone copies the map at identical capacities. Keys and values are deep
// copied; chain indices copy verbatim, preserving topology without
// re-hashing. On failure the partial result is destroyed.
func (hm *hashMap) clone(a alloc.Allocator) (*hashMap, error) {
	bucket, err := alloc.Slice[mapEntry](a, len(hm.bucket))
	if err != nil {
		return nil, err
	}
	collisions, err := alloc.Slice[mapEntry](a, len(hm.collisions))
	if err != nil {
		alloc.ReleaseSlice(a, bucket)
		return nil, err
	}
	out := &hashMap{
		bucket:        bucket,
		bucketSize:    hm.bucketSize,
		collisions:    collisions,
		collisionsLen: hm.collisionsLen,
	}

	for i := range hm.bucket {
		out.bucket[i], err = hm.bucket[i].clone(a)
		if err != nil {
			out.free(a)
			return nil, err
		}
	}
	for i := 0; i < hm.collisionsLen; i++ {
		out.collisions[i], err = hm.collisions[i].clone(a)
		if err != nil {
			out.free(a)
			return nil, err
		}
	}
	return out, nil
}

// clone deep-copies an entry. Unused slots copy to the empty entry.
func (e mapEntry) clone(a alloc.Allocator) (mapEntry, error) {
	if !e.used {
		return mapEntry{next: noNext}, nil
	}
	key, err := e.key.Clone(a)
	if err != nil {
		return mapEntry{next: noNext}, err
	}
	val, err := e.val.Clone(a)
	if err != nil {
		key.Free(a)
		return mapEntry{next: noNext}, err
	}
	return mapEntry{key: key, val: val, next: e.next, used: true}, nil
}

// free destroys every owned key and value, then the table storage.
func (hm *hashMap) free(a alloc.Allocator) {
	for i := 0; i < hm.collisionsLen; i++ {
		if hm.collisions[i].used {
			hm.collisions[i].key.Free(a)
			hm.collisions[i].val.Free(a)
		}
	}
	for i := range hm.bucket {
		if hm.bucket[i].used {
			hm.bucket[i].key.Free(a)
			hm.bucket[i].val.Free(a)
		}
	}
	alloc.ReleaseSlice(a, hm.collisions)
	alloc.ReleaseSlice(a, hm.bucket)
}
