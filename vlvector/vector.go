// SPDX-License-Identifier: MIT

package vlvector

import (
	"fmt"
	"iter"
	"runtime"
	"slices"
)

// Vector is a sequence of T that stores up to N elements inline and moves
// to a heap buffer beyond that. N is fixed when the Vector is created.
//
// The zero Vector is empty and ready to use with N = DefaultInlineCapacity.
// A Vector must not be copied by value after first use; use Clone or Assign.
type Vector[T any] struct {
	inline  []T             // len == N; allocated once, never replaced
	heap    []T             // nil in inline mode; len == Capacity() > N otherwise
	kind    storeKind       // which of inline/heap holds the elements
	size    int             // logical element count, 0 ≤ size ≤ Capacity()
	gen     uint64          // bumped by every iterator-invalidating operation
	budget  *Budget         // heap allocation budget; nil ⇒ unlimited
	charge  *heapCharge     // budget debt of heap; nil without a budget
	cleanup runtime.Cleanup // settles charge if v is dropped on the heap
}

// New returns an empty Vector in inline mode.
// Complexity: O(N) for the inline buffer.
func New[T any](opts ...Option) *Vector[T] {
	v := &Vector[T]{}
	v.setup(gatherOptions(opts...))

	return v
}

// Fill returns a Vector holding count copies of value. When count exceeds N
// the heap buffer is allocated up front with capacity ⌊3·count/2⌋.
// Returns ErrNegativeCount or ErrAllocation.
func Fill[T any](count int, value T, opts ...Option) (*Vector[T], error) {
	if count < 0 {
		return nil, vectorErrorf("Fill", outside(ErrNegativeCount, count, "[0,∞)"))
	}
	v := New[T](opts...)
	if err := v.reserve(count); err != nil {
		return nil, vectorErrorf("Fill", err)
	}
	s := v.active()
	for i := 0; i < count; i++ {
		s[i] = value
	}
	v.size = count

	return v, nil
}

// FromSlice returns a Vector holding a copy of values, in order.
// Returns ErrAllocation if the heap buffer cannot be obtained.
func FromSlice[T any](values []T, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.reserve(len(values)); err != nil {
		return nil, vectorErrorf("FromSlice", err)
	}
	v.size = copy(v.active(), values)

	return v, nil
}

// FromRange returns a Vector holding the elements of [first, last).
// Both iterators must come from the same container and direction.
// Returns ErrRange, ErrInvalidated, ErrIndex or ErrAllocation.
func FromRange[T any](first, last Iterator[T], opts ...Option) (*Vector[T], error) {
	values, err := rangeValues(first, last)
	if err != nil {
		return nil, vectorErrorf("FromRange", err)
	}

	return FromSlice(values, opts...)
}

// Collect returns a Vector holding every value yielded by seq.
func Collect[T any](seq iter.Seq[T], opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	for x := range seq {
		if err := v.PushBack(x); err != nil {
			v.Clear()
			return nil, vectorErrorf("Collect", err)
		}
	}

	return v, nil
}

// Clone returns a deep copy of v with the same N and Budget.
// Complexity: O(Size()).
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{}
	c.setup(Options{inlineCap: v.inlineCap(), budget: v.budget})
	if err := c.Assign(v); err != nil {
		return nil, vectorErrorf("Clone", err)
	}

	return c, nil
}

// Assign replaces the contents of v with a deep copy of other. v keeps its
// own N; the new heap buffer (if needed) is allocated before anything is
// released, so on ErrAllocation v is unchanged. v.Assign(v) is a no-op.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if other == nil {
		return vectorErrorf("Assign", ErrNilVector)
	}
	if v == other {
		return nil
	}
	v.init()

	src := other.Data()
	var buf []T
	if len(src) > len(v.inline) {
		var err error
		if buf, err = v.allocate(nextCapacity(0, len(src), len(v.inline))); err != nil {
			return vectorErrorf("Assign", err)
		}
	}

	v.dropHeap()
	clear(v.inline)
	if buf != nil {
		copy(buf, src)
		v.adopt(buf)
	} else {
		copy(v.inline, src)
		v.kind = inlineStore
	}
	v.size = len(src)
	v.gen++

	return nil
}

// ---------- queries ----------

// Size returns the number of elements.
func (v *Vector[T]) Size() int {
	if v == nil {
		return 0
	}

	return v.size
}

// Capacity returns the slot count of the active store: N in inline mode,
// the heap buffer length otherwise.
func (v *Vector[T]) Capacity() int {
	if v == nil {
		return 0
	}

	return v.capacity()
}

func (v *Vector[T]) capacity() int {
	if v.kind == heapStore {
		return len(v.heap)
	}

	return v.inlineCap()
}

// InlineCapacity returns N.
func (v *Vector[T]) InlineCapacity() int {
	if v == nil {
		return 0
	}

	return v.inlineCap()
}

// Empty reports whether Size() == 0.
func (v *Vector[T]) Empty() bool { return v.Size() == 0 }

// OnHeap reports whether the elements currently live in a heap buffer.
func (v *Vector[T]) OnHeap() bool { return v != nil && v.kind == heapStore }

// ---------- element access ----------

// Index returns element i without an error path. Like a slice index it
// panics when i is outside [0, Size()).
func (v *Vector[T]) Index(i int) T {
	return v.active()[:v.size][i]
}

// Ref returns a pointer to element i for in-place mutation. It panics when
// i is outside [0, Size()). The pointer is valid until the next operation
// that invalidates iterators.
func (v *Vector[T]) Ref(i int) *T {
	return &v.active()[:v.size][i]
}

// At returns element i or ErrIndex when i is outside [0, Size()).
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, vectorErrorf("At", outside(ErrIndex, i, fmt.Sprintf("[0,%d)", v.size)))
	}

	return v.active()[i], nil
}

// SetAt overwrites element i or returns ErrIndex when i is outside [0, Size()).
// Complexity: O(1).
func (v *Vector[T]) SetAt(i int, value T) error {
	if i < 0 || i >= v.size {
		return vectorErrorf("SetAt", outside(ErrIndex, i, fmt.Sprintf("[0,%d)", v.size)))
	}
	v.active()[i] = value

	return nil
}

// Data returns the elements of the active store as a slice whose length and
// capacity both equal Size(). The slice aliases v and is valid until the next
// operation that invalidates iterators.
func (v *Vector[T]) Data() []T {
	if v == nil {
		return nil
	}

	return v.active()[:v.size:v.size]
}

// String implements fmt.Stringer.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}

// ---------- read-only traversal ----------

// All yields (index, element) pairs front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.active()[i]) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.active()[i]) {
				return
			}
		}
	}
}

// Backward yields (index, element) pairs back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if i >= v.size {
				continue // shrunk by the loop body
			}
			if !yield(i, v.active()[i]) {
				return
			}
		}
	}
}

// ---------- equality ----------

// Equal reports whether a and b hold the same elements in the same order.
// Storage mode and N are ignored. A nil Vector equals an empty one.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}
