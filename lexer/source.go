package lexer

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// SourceEncoding identifies the byte encoding of raw source text.
type SourceEncoding uint8

const (
	// EncodingUTF8 passes source bytes through unchanged.
	EncodingUTF8 SourceEncoding = iota
	// EncodingWindows1252 transcodes legacy single-byte source to UTF-8
	// before tokenization. Configuration files exported by older Windows
	// tooling commonly arrive in this encoding.
	EncodingWindows1252
)

// ReadSource reads the whole of r, transcoding to UTF-8 according to enc.
func ReadSource(r io.Reader, enc SourceEncoding) ([]byte, error) {
	switch enc {
	case EncodingUTF8:
		return io.ReadAll(r)
	case EncodingWindows1252:
		decoder := charmap.Windows1252.NewDecoder()
		return io.ReadAll(transform.NewReader(r, decoder))
	}
	return nil, fmt.Errorf("lexer: unknown source encoding %d", enc)
}

// DecodeWindows1252 transcodes a Windows-1252 byte slice to UTF-8.
func DecodeWindows1252(data []byte) ([]byte, error) {
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("lexer: decode windows-1252: %w", err)
	}
	return decoded, nil
}
