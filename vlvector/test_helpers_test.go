// Package vlvector_test contains test helpers.
//
// Purpose:
//   - Provide small deterministic fixtures (pushRange, mustFromSlice).
//   - Centralize the storage invariants every mutation test re-checks.
package vlvector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vlvector/vlvector"
)

// mustFromSlice builds a Vector from values or fails the test.
func mustFromSlice[T any](t *testing.T, values []T, opts ...vlvector.Option) *vlvector.Vector[T] {
	t.Helper()
	v, err := vlvector.FromSlice(values, opts...)
	require.NoError(t, err, "FromSlice")

	return v
}

// seq returns [0, 1, ..., n-1].
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// pushRange appends 0..n-1 to v or fails the test.
func pushRange(t *testing.T, v *vlvector.Vector[int], n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, v.PushBack(i), "PushBack(%d)", i)
	}
}

// requireInvariants checks 0 ≤ size ≤ capacity, capacity == N iff inline,
// and that Data() exposes exactly Size() elements.
func requireInvariants[T any](t *testing.T, v *vlvector.Vector[T]) {
	t.Helper()
	n := v.InlineCapacity()
	require.GreaterOrEqual(t, v.Size(), 0)
	require.LessOrEqual(t, v.Size(), v.Capacity(), "size must not exceed capacity")
	if v.OnHeap() {
		require.Greater(t, v.Capacity(), n, "heap capacity must exceed N")
	} else {
		require.Equal(t, n, v.Capacity(), "inline capacity must equal N")
	}
	require.Len(t, v.Data(), v.Size())
	require.Equal(t, v.Size(), cap(v.Data()))
}
