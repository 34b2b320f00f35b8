package vlvector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vlvector/vlvector"
)

// TestNextCapacity pins the growth policy.
func TestNextCapacity(t *testing.T) {
	cases := []struct {
		size, add, n int
		want         int
	}{
		{0, 0, 4, 4},
		{0, 4, 4, 4},
		{3, 1, 4, 4},
		{4, 1, 4, 7},  // ⌊15/2⌋
		{7, 1, 4, 12}, // post-insertion size, not capacity
		{2, 3, 4, 7},  // bulk insert
		{0, 17, 16, 25},
		{1, 1, 1, 3},
	}
	for _, tc := range cases {
		got := vlvector.NextCapacity(tc.size, tc.add, tc.n)
		assert.Equal(t, tc.want, got, "nextCapacity(%d,%d,%d)", tc.size, tc.add, tc.n)
		if tc.size+tc.add > tc.n {
			assert.Greater(t, got, tc.n, "heap capacity must exceed N")
			assert.GreaterOrEqual(t, got, tc.size+tc.add)
		}
	}
}

// TestInlineCapacityOne exercises the smallest legal N.
func TestInlineCapacityOne(t *testing.T) {
	v := vlvector.New[int](vlvector.WithInlineCapacity(1))
	pushRange(t, v, 2)
	assert.Equal(t, 3, v.Capacity())
	requireInvariants(t, v)

	v.PopBack()
	assert.False(t, v.OnHeap())
	assert.Equal(t, []int{0}, v.Data())
	requireInvariants(t, v)
}

// TestInvariants_RandomWalk applies a deterministic mix of operations and
// re-checks the storage invariants after each one. Growth phases alternate
// with drain phases so the walk spills to the heap and returns inline
// several times.
func TestInvariants_RandomWalk(t *testing.T) {
	const phase = 40
	v := vlvector.New[int](vlvector.WithInlineCapacity(3))
	var model []int
	var transitions int
	onHeap := v.OnHeap()
	for step := 0; step < 8*phase; step++ {
		draining := (step/phase)%2 == 1
		switch k := (step * 7) % 5; {
		case draining && len(model) > 0 && step%2 == 0:
			pos := step % len(model)
			_, _ = v.Erase(pos)
			model = append(model[:pos], model[pos+1:]...)
		case draining:
			v.PopBack()
			if len(model) > 0 {
				model = model[:len(model)-1]
			}
		case k == 0 || k == 1:
			_ = v.PushBack(step)
			model = append(model, step)
		case k == 2:
			pos := step % (len(model) + 1)
			_, _ = v.Insert(pos, -step)
			model = append(model[:pos], append([]int{-step}, model[pos:]...)...)
		case k == 3 && len(model) > 0:
			pos := step % len(model)
			_, _ = v.Erase(pos)
			model = append(model[:pos], model[pos+1:]...)
		default:
			v.PopBack()
			if len(model) > 0 {
				model = model[:len(model)-1]
			}
		}
		requireInvariants(t, v)
		if len(model) == 0 {
			assert.Empty(t, v.Data())
		} else {
			assert.Equal(t, model, v.Data(), "step %d", step)
		}
		if v.OnHeap() != onHeap {
			onHeap = v.OnHeap()
			transitions++
		}
	}
	assert.GreaterOrEqual(t, transitions, 6, "expected repeated spill/shrink cycles")
}
