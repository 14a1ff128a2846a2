package alloc

import "fmt"

// Limited is an allocator with a fixed byte budget. It is the failure
// injection and leak detection tool for tests: Reserve fails once the
// budget would be exceeded, and InUse exposes the outstanding balance.
//
// Limited is not safe for concurrent use, matching the single-owner
// discipline of the containers built on it.
type Limited struct {
	budget int
	used   int
}

// NewLimited creates a Limited allocator with the given byte budget.
func NewLimited(budget int) *Limited {
	Assert(budget >= 0, "negative budget")
	return &Limited{budget: budget}
}

// Reserve implements Allocator.
func (l *Limited) Reserve(n int) error {
	if n <= 0 {
		return nil
	}
	if l.used+n > l.budget {
		return fmt.Errorf("reserve %d bytes with %d of %d in use: %w", n, l.used, l.budget, ErrExhausted)
	}
	l.used += n
	return nil
}

// Release implements Allocator.
func (l *Limited) Release(n int) {
	if n <= 0 {
		return
	}
	Assert(n <= l.used, "release below zero")
	l.used -= n
}

// InUse returns the number of reserved bytes not yet released.
func (l *Limited) InUse() int { return l.used }

// Budget returns the total byte budget.
func (l *Limited) Budget() int { return l.budget }
