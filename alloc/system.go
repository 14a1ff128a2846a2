package alloc

// System is the default allocator. Reservations always succeed and nothing
// is tracked; the Go runtime and garbage collector do the real work.
type System struct{}

// Reserve implements Allocator. It never fails.
func (System) Reserve(int) error { return nil }

// Release implements Allocator. It is a no-op.
func (System) Release(int) {}
