// Package overflow provides overflow-checked int arithmetic for storage
// size calculations.
package overflow

import "math"

// Add returns a + b, with ok = false when the sum overflows int.
func Add(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Mul returns a * b, with ok = false when the product overflows int.
// Sizing math is count * elementSize, so only non-negative operands are
// supported.
func Mul(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}
