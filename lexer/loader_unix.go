//go:build linux || darwin || freebsd

package lexer

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/jsonkit/jsonkit/alloc"
)

// Open maps the file at path read-only and initializes a lexer over an
// owned copy of its contents. The mapping is released before returning;
// the lexer does not hold the file open.
func Open(a alloc.Allocator, path string, d Dialect) (*Lexer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	sz := st.Size()
	if sz == 0 {
		return New(a, nil, path, d)
	}
	if sz > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("lexer: file too large to map (%d bytes)", sz)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(sz), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("lexer: mmap %s: %w", path, err)
	}

	lx, err := New(a, data, path, d)
	if unmapErr := unix.Munmap(data); unmapErr != nil && err == nil {
		lx.Close()
		return nil, fmt.Errorf("lexer: munmap %s: %w", path, unmapErr)
	}
	return lx, err
}
