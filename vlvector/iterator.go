package vlvector

import "fmt"

// Iterator is a position in a Vector: its owner, a logical offset, the
// direction of travel and the owner's generation when it was created.
//
// Iterators are small comparable values; two iterators are == when they
// name the same offset of the same container, direction and generation.
// Moving an iterator (Next, Prev, Advance) never touches the container.
// Dereferencing (Value, Set) checks, in order:
//   - the iterator is attached and not stale, else ErrInvalidated;
//   - the offset lies in [0, Size()), else ErrIndex.
//
// The zero Iterator is detached and always reports ErrInvalidated.
type Iterator[T any] struct {
	owner *Vector[T]
	pos   int    // logical offset; End is Size(), REnd is -1
	gen   uint64 // owner.gen at creation
	rev   bool   // reverse traversal
}

// iteratorAt returns an iterator at pos stamped with the current generation.
func (v *Vector[T]) iteratorAt(pos int, rev bool) Iterator[T] {
	return Iterator[T]{owner: v, pos: pos, gen: v.gen, rev: rev}
}

// Begin returns a forward iterator at the first element.
func (v *Vector[T]) Begin() Iterator[T] { return v.iteratorAt(0, false) }

// End returns a forward iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] { return v.iteratorAt(v.size, false) }

// RBegin returns a reverse iterator at the last element.
func (v *Vector[T]) RBegin() Iterator[T] { return v.iteratorAt(v.size-1, true) }

// REnd returns a reverse iterator one before the first element.
func (v *Vector[T]) REnd() Iterator[T] { return v.iteratorAt(-1, true) }

// step is +1 for forward iterators and -1 for reverse ones.
func (it Iterator[T]) step() int {
	if it.rev {
		return -1
	}

	return 1
}

// Next returns the iterator one step further in its direction of travel.
func (it Iterator[T]) Next() Iterator[T] { return it.Advance(1) }

// Prev returns the iterator one step back against its direction of travel.
func (it Iterator[T]) Prev() Iterator[T] { return it.Advance(-1) }

// Advance returns the iterator n steps further (n may be negative).
func (it Iterator[T]) Advance(n int) Iterator[T] {
	it.pos += n * it.step()

	return it
}

// Index returns the logical offset the iterator names.
func (it Iterator[T]) Index() int { return it.pos }

// Reverse reports whether the iterator travels back to front.
func (it Iterator[T]) Reverse() bool { return it.rev }

// Valid reports whether Value would succeed.
func (it Iterator[T]) Valid() bool { return it.check() == nil }

// live returns ErrInvalidated for detached or stale iterators.
func (it Iterator[T]) live() error {
	if it.owner == nil {
		return fmt.Errorf("%w: detached iterator", ErrInvalidated)
	}
	if it.gen != it.owner.gen {
		return fmt.Errorf("%w: generation %d, container at %d", ErrInvalidated, it.gen, it.owner.gen)
	}

	return nil
}

// check validates the iterator for dereference.
func (it Iterator[T]) check() error {
	if err := it.live(); err != nil {
		return err
	}
	if it.pos < 0 || it.pos >= it.owner.size {
		return outside(ErrIndex, it.pos, fmt.Sprintf("[0,%d)", it.owner.size))
	}

	return nil
}

// Value returns the element the iterator names.
// Returns ErrInvalidated or ErrIndex.
func (it Iterator[T]) Value() (T, error) {
	if err := it.check(); err != nil {
		var zero T
		return zero, fmt.Errorf("Iterator.Value: %w", err)
	}

	return it.owner.active()[it.pos], nil
}

// Set overwrites the element the iterator names. It does not invalidate
// any iterator. Returns ErrInvalidated or ErrIndex.
func (it Iterator[T]) Set(value T) error {
	if err := it.check(); err != nil {
		return fmt.Errorf("Iterator.Set: %w", err)
	}
	it.owner.active()[it.pos] = value

	return nil
}

// Distance returns the number of steps from it to other in its direction
// of travel. Both must be live, share an owner and a direction; otherwise it
// returns ErrInvalidated or ErrRange.
func (it Iterator[T]) Distance(other Iterator[T]) (int, error) {
	n, err := it.distance(other)
	if err != nil {
		return 0, fmt.Errorf("Iterator.Distance: %w", err)
	}

	return n, nil
}

func (it Iterator[T]) distance(other Iterator[T]) (int, error) {
	if err := it.live(); err != nil {
		return 0, err
	}
	if err := other.live(); err != nil {
		return 0, err
	}
	if it.owner != other.owner {
		return 0, fmt.Errorf("%w: iterators of different containers", ErrRange)
	}
	if it.rev != other.rev {
		return 0, fmt.Errorf("%w: mixed iterator directions", ErrRange)
	}

	return (other.pos - it.pos) * it.step(), nil
}

// rangeValues copies out the elements of [first, last).
func rangeValues[T any](first, last Iterator[T]) ([]T, error) {
	n, err := first.distance(last)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: last is %d steps before first", ErrRange, -n)
	}
	if n == 0 {
		return nil, nil
	}
	// both ends must lie in the traversable window of their direction
	size := first.owner.size
	lo, hi := first.pos, last.pos-1
	if first.rev {
		lo, hi = last.pos+1, first.pos
	}
	if lo < 0 || hi >= size {
		return nil, fmt.Errorf("%w: range [%d,%d] exceeds [0,%d)", ErrIndex, lo, hi, size)
	}

	out := make([]T, n)
	s := first.owner.active()
	for i, p := 0, first.pos; i < n; i, p = i+1, p+first.step() {
		out[i] = s[p]
	}

	return out, nil
}
