package lexer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonkit/jsonkit/alloc"
)

// Test_ReadSourceUTF8 passes bytes through unchanged.
func Test_ReadSourceUTF8(t *testing.T) {
	src := []byte(`{"k": 1}`)
	out, err := ReadSource(bytes.NewReader(src), EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

// Test_ReadSourceWindows1252 transcodes high bytes to their UTF-8 forms.
// 0xE9 is e-acute in Windows-1252.
func Test_ReadSourceWindows1252(t *testing.T) {
	src := []byte{'"', 'c', 'a', 'f', 0xE9, '"'}
	out, err := ReadSource(bytes.NewReader(src), EncodingWindows1252)
	require.NoError(t, err)
	assert.Equal(t, `"café"`, string(out))
}

// Test_ReadSourceUnknownEncoding rejects encodings it does not know.
func Test_ReadSourceUnknownEncoding(t *testing.T) {
	_, err := ReadSource(bytes.NewReader(nil), SourceEncoding(99))
	require.Error(t, err)
}

// Test_DecodeWindows1252Tokenizes feeds a transcoded legacy source
// through the lexer.
func Test_DecodeWindows1252Tokenizes(t *testing.T) {
	var sys alloc.System

	legacy := []byte{'{', '"', 'n', 0xE9, '"', ':', '1', '}'}
	decoded, err := DecodeWindows1252(legacy)
	require.NoError(t, err)

	lx, err := New(sys, decoded, "legacy", DialectStrict)
	require.NoError(t, err)
	defer lx.Close()

	toks := lexAll(t, lx)
	require.Len(t, toks, 6)
	assert.Equal(t, KindString, toks[1].Kind)
	assert.Equal(t, "né", toks[1].Str.String())

	freeAll(sys, toks)
}
