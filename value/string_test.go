package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonkit/jsonkit/alloc"
)

func Test_StrCreateAndClone(t *testing.T) {
	l := alloc.NewLimited(1 << 10)

	s, err := NewStr(l, []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, "hello", s.String())

	c, err := s.Clone(l)
	require.NoError(t, err)
	assert.True(t, s.Equal(c))

	// Clone owns independent storage.
	c.Bytes()[0] = 'H'
	assert.False(t, s.Equal(c))

	s.Free(l)
	c.Free(l)
	assert.Equal(t, 0, l.InUse(), "destroying both strings releases exactly what was allocated")
}

func Test_StrEmpty(t *testing.T) {
	l := alloc.NewLimited(0)

	// Empty strings hold no heap storage.
	s := EmptyStr()
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Bytes())

	created, err := NewStr(l, nil)
	require.NoError(t, err)
	assert.True(t, created.Equal(s))

	s.Free(l)
	created.Free(l)
	assert.Equal(t, 0, l.InUse())
}

func Test_StrEqual(t *testing.T) {
	var sys alloc.System

	tests := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{"equal", "key", "key", true},
		{"different length", "key", "keys", false},
		{"same length different bytes", "key", "kez", false},
		{"both empty", "", "", true},
		{"empty vs non-empty", "", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sa, err := StrFromString(sys, tt.a)
			require.NoError(t, err)
			sb, err := StrFromString(sys, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.equal, sa.Equal(sb))
			sa.Free(sys)
			sb.Free(sys)
		})
	}
}

func Test_StrAllocationFailure(t *testing.T) {
	l := alloc.NewLimited(2)

	s, err := NewStr(l, []byte("too big"))
	require.Error(t, err)

	// The failure sentinel is the empty string; destroying it is safe.
	assert.Equal(t, 0, s.Len())
	s.Free(l)
	assert.Equal(t, 0, l.InUse())
}
