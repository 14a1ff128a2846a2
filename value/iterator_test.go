package value

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonkit/jsonkit/alloc"
)

// Test_IteratorVisitsEveryKeyOnce checks that iteration yields each
// present key exactly once, in some order.
func Test_IteratorVisitsEveryKeyOnce(t *testing.T) {
	var sys alloc.System

	obj, err := NewObject(sys)
	require.NoError(t, err)

	const n = 20
	for i := 0; i < n; i++ {
		key := mustStr(t, sys, fmt.Sprintf("it%d", i))
		require.NoError(t, obj.Set(sys, key, Number(float64(i))))
		key.Free(sys)
	}

	seen := map[string]float64{}
	it := obj.Iter()
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		name := e.Key.String()
		_, dup := seen[name]
		assert.False(t, dup, "key %q visited twice", name)
		seen[name] = e.Value.Number()
	}

	require.Len(t, seen, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, float64(i), seen[fmt.Sprintf("it%d", i)])
	}

	obj.Free(sys)
}

// Test_IteratorWalksChains makes sure chained entries are yielded, not
// just primary slots.
func Test_IteratorWalksChains(t *testing.T) {
	var sys alloc.System

	obj, err := NewObject(sys)
	require.NoError(t, err)

	keys := collidingKeys(t, 4, initialBucketSize)
	for i, k := range keys {
		key := mustStr(t, sys, k)
		require.NoError(t, obj.Set(sys, key, Number(float64(i))))
		key.Free(sys)
	}

	count := 0
	it := obj.Iter()
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, len(keys), count)

	obj.Free(sys)
}

// Test_IteratorEmpty yields nothing on an empty object and terminates on
// repeated calls.
func Test_IteratorEmpty(t *testing.T) {
	var sys alloc.System

	obj, err := NewObject(sys)
	require.NoError(t, err)

	it := obj.Iter()
	_, ok := it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)

	obj.Free(sys)
}

// Test_IteratorInvalidObject terminates immediately on an object whose
// creation failed.
func Test_IteratorInvalidObject(t *testing.T) {
	empty := alloc.NewLimited(0)
	obj, err := NewObject(empty)
	require.Error(t, err)

	it := obj.Iter()
	_, ok := it.Next()
	assert.False(t, ok)
}
