package value

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonkit/jsonkit/alloc"
)

func sizeofValue() uintptr {
	var v Value
	return unsafe.Sizeof(v)
}

func Test_Scalars(t *testing.T) {
	var sys alloc.System

	b := Boolean(true)
	assert.Equal(t, KindBoolean, b.Kind())
	assert.True(t, b.Bool())

	n := Number(4.5)
	assert.Equal(t, KindNumber, n.Kind())
	assert.Equal(t, 4.5, n.Number())

	nl := Null()
	assert.Equal(t, KindNull, nl.Kind())

	// Scalars carry no storage; Free is a no-op.
	b.Free(sys)
	n.Free(sys)
	nl.Free(sys)
}

func Test_ZeroValueIsInvalid(t *testing.T) {
	var v Value
	assert.Equal(t, KindInvalid, v.Kind())

	// Free is total: it accepts the invalid zero state.
	v.Free(alloc.System{})
}

func Test_KindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindInvalid, "invalid"},
		{KindObject, "object"},
		{KindArray, "array"},
		{KindNumber, "number"},
		{KindBoolean, "boolean"},
		{KindString, "string"},
		{KindNull, "null"},
		{Kind(200), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func Test_ValueDeepClone(t *testing.T) {
	l := alloc.NewLimited(1 << 12)

	inner, err := NewStringValue(l, "nested")
	require.NoError(t, err)
	ar, err := ArrayOf(l, inner, Number(1))
	require.NoError(t, err)
	v := ar.Value()

	c, err := v.Clone(l)
	require.NoError(t, err)
	require.Equal(t, KindArray, c.Kind())
	require.Equal(t, 2, c.Array().Len())

	// The clone's nested string has its own storage.
	c.Array().At(0).Str().Bytes()[0] = 'N'
	assert.Equal(t, "nested", v.Array().At(0).Str().String())
	assert.Equal(t, "Nested", c.Array().At(0).Str().String())

	v.Free(l)
	c.Free(l)
	assert.Equal(t, 0, l.InUse())
}

func Test_ValueCloneFailureIsClean(t *testing.T) {
	var sys alloc.System

	inner, err := NewStringValue(sys, "payload-that-needs-space")
	require.NoError(t, err)
	ar, err := ArrayOf(sys, Number(1), inner)
	require.NoError(t, err)
	v := ar.Value()

	// Enough budget for the spine but not for the nested string: the
	// partial result must be destroyed, leaving the budget balanced.
	tight := alloc.NewLimited(2 * int(sizeofValue()))
	_, err = v.Clone(tight)
	require.Error(t, err)
	assert.Equal(t, 0, tight.InUse())

	v.Free(sys)
}

func Test_AccessorAsserts(t *testing.T) {
	assert.Panics(t, func() { Null().Bool() })
	assert.Panics(t, func() { Boolean(true).Number() })
	assert.Panics(t, func() { Number(1).Str() })
}
