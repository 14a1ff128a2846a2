package alloc

import "errors"

// ErrExhausted indicates the allocator cannot cover a reservation.
var ErrExhausted = errors.New("alloc: budget exhausted")
