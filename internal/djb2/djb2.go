// Package djb2 implements the multiplicative string hash used by the value
// hash map and the lexer's keyword classification.
package djb2

// Sum computes the DJB2-style hash of b.
//
// Algorithm: hash = 5381; for each byte: hash = hash*33 ^ byte.
// Good enough for short ASCII keys; no cryptographic properties.
func Sum(b []byte) uint64 {
	hash := uint64(5381)
	for _, c := range b {
		hash = hash*33 ^ uint64(c)
	}
	return hash
}
