package vlvector

import (
	"fmt"
	"slices"
)

// PushBack appends value. When Size() == Capacity() it first grows to
// ⌊3·(Size()+1)/2⌋ slots; a refused allocation returns ErrAllocation and
// leaves v unchanged.
// Complexity: amortized O(1).
func (v *Vector[T]) PushBack(value T) error {
	v.init()
	if err := v.reserve(1); err != nil {
		return vectorErrorf("PushBack", err)
	}
	v.active()[v.size] = value
	v.size++

	return nil
}

// PopBack removes the last element. It is a no-op on an empty Vector.
// Dropping from N+1 to N elements moves storage back inline.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	var zero T
	v.size--
	v.active()[v.size] = zero
	v.shrink()
}

// Insert places value at logical position pos in [0, Size()], shifting the
// tail one slot right, and returns an iterator at the new element.
// pos == Size() behaves as PushBack.
//
// Errors:
//   - ErrPosition  : pos outside [0, Size()]; nothing is moved.
//   - ErrAllocation: growth refused; nothing is moved.
//
// Complexity: O(Size()-pos), plus O(Size()) on a grow transition.
func (v *Vector[T]) Insert(pos int, value T) (Iterator[T], error) {
	v.init()
	if pos < 0 || pos > v.size {
		return Iterator[T]{}, vectorErrorf("Insert", outside(ErrPosition, pos, fmt.Sprintf("[0,%d]", v.size)))
	}
	if pos == v.size {
		if err := v.PushBack(value); err != nil {
			return Iterator[T]{}, vectorErrorf("Insert", err)
		}
		return v.iteratorAt(pos, false), nil
	}

	if err := v.reserve(1); err != nil {
		return Iterator[T]{}, vectorErrorf("Insert", err)
	}
	s := v.active()
	copy(s[pos+1:v.size+1], s[pos:v.size])
	s[pos] = value
	v.size++
	v.gen++

	return v.iteratorAt(pos, false), nil
}

// InsertSlice inserts values at logical position pos in [0, Size()], in
// order, and returns an iterator at the first inserted element. values may
// alias v itself (for example v.Data()).
// Returns ErrPosition or ErrAllocation; on error nothing is moved.
func (v *Vector[T]) InsertSlice(pos int, values ...T) (Iterator[T], error) {
	v.init()
	if pos < 0 || pos > v.size {
		return Iterator[T]{}, vectorErrorf("InsertSlice", outside(ErrPosition, pos, fmt.Sprintf("[0,%d]", v.size)))
	}
	if v.aliases(values) {
		values = slices.Clone(values)
	}
	if err := v.insertValues(pos, values); err != nil {
		return Iterator[T]{}, vectorErrorf("InsertSlice", err)
	}

	return v.iteratorAt(pos, false), nil
}

// InsertRange inserts the elements of [first, last) at logical position pos
// and returns an iterator at the first inserted element. The range may come
// from v itself; it is read before v is modified.
//
// Errors:
//   - ErrPosition   : pos outside [0, Size()].
//   - ErrRange      : last precedes first, or the ends belong to different
//     containers or directions.
//   - ErrInvalidated: first or last is stale.
//   - ErrAllocation : growth refused.
func (v *Vector[T]) InsertRange(pos int, first, last Iterator[T]) (Iterator[T], error) {
	v.init()
	if pos < 0 || pos > v.size {
		return Iterator[T]{}, vectorErrorf("InsertRange", outside(ErrPosition, pos, fmt.Sprintf("[0,%d]", v.size)))
	}
	values, err := rangeValues(first, last)
	if err != nil {
		return Iterator[T]{}, vectorErrorf("InsertRange", err)
	}
	if err = v.insertValues(pos, values); err != nil {
		return Iterator[T]{}, vectorErrorf("InsertRange", err)
	}

	return v.iteratorAt(pos, false), nil
}

// insertValues opens a gap of len(values) at pos and copies values into it.
// values must not alias v.
func (v *Vector[T]) insertValues(pos int, values []T) error {
	n := len(values)
	if n == 0 {
		return nil
	}
	if err := v.reserve(n); err != nil {
		return err
	}
	s := v.active()
	copy(s[pos+n:v.size+n], s[pos:v.size])
	copy(s[pos:pos+n], values)
	v.size += n
	v.gen++

	return nil
}

// Erase removes the element at logical position pos in [0, Size()) and
// returns an iterator at the element that followed it. On an empty Vector,
// or with pos == Size(), it does nothing and returns End().
// Dropping from N+1 to N elements moves storage back inline.
// Returns ErrPosition for any other pos outside [0, Size()).
// Complexity: O(Size()-pos).
func (v *Vector[T]) Erase(pos int) (Iterator[T], error) {
	if v.size == 0 || pos == v.size {
		return v.End(), nil
	}
	if pos < 0 || pos > v.size {
		return Iterator[T]{}, vectorErrorf("Erase", outside(ErrPosition, pos, fmt.Sprintf("[0,%d)", v.size)))
	}

	var zero T
	s := v.active()
	copy(s[pos:], s[pos+1:v.size])
	v.size--
	s[v.size] = zero
	v.gen++
	v.shrink()

	return v.iteratorAt(pos, false), nil
}

// EraseRange removes the elements at logical positions [first, last) and
// returns an iterator at the element that followed them. first == last is a
// no-op. Leaving a heap-mode Vector with N or fewer elements moves storage
// back inline, exactly as popping the elements one by one would.
//
// Errors:
//   - ErrRange   : last < first.
//   - ErrPosition: first < 0 or last > Size().
func (v *Vector[T]) EraseRange(first, last int) (Iterator[T], error) {
	if last < first {
		return Iterator[T]{}, vectorErrorf("EraseRange", fmt.Errorf("%w: last %d precedes first %d", ErrRange, last, first))
	}
	if first < 0 {
		return Iterator[T]{}, vectorErrorf("EraseRange", outside(ErrPosition, first, fmt.Sprintf("[0,%d]", v.size)))
	}
	if last > v.size {
		return Iterator[T]{}, vectorErrorf("EraseRange", outside(ErrPosition, last, fmt.Sprintf("[0,%d]", v.size)))
	}
	if first == last {
		return v.iteratorAt(first, false), nil
	}

	s := v.active()
	copy(s[first:], s[last:v.size])
	tail := v.size - (last - first)
	clear(s[tail:v.size])
	v.size = tail
	v.gen++
	v.shrink()

	return v.iteratorAt(first, false), nil
}

// Clear removes every element, drops the heap buffer (returning its bytes
// to the Budget) and puts v back in inline mode with Capacity() == N.
func (v *Vector[T]) Clear() {
	v.init()
	v.dropHeap()
	clear(v.inline)
	v.kind = inlineStore
	v.size = 0
	v.gen++
}
