//go:build !linux && !darwin && !freebsd

package lexer

import (
	"os"

	"github.com/jsonkit/jsonkit/alloc"
)

// Open reads the file at path and initializes a lexer over an owned copy
// of its contents.
func Open(a alloc.Allocator, path string, d Dialect) (*Lexer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(a, data, path, d)
}
