package vlvector

import (
	"fmt"
	"runtime"
	"unsafe"
)

// storeKind discriminates the active store of a Vector.
type storeKind uint8

const (
	inlineStore storeKind = iota // elements live in Vector.inline
	heapStore                    // elements live in Vector.heap
)

// nextCapacity is the growth policy. It returns n while size+add fits the
// inline buffer, and 1.5× the post-insertion size (floored) otherwise.
// Complexity: O(1).
func nextCapacity(size, add, n int) int {
	if size+add <= n {
		return n
	}

	return 3 * (size + add) / 2
}

// init lazily configures a zero Vector with the default options.
func (v *Vector[T]) init() {
	if v.inline == nil {
		v.setup(defaultOptions())
	}
}

// setup allocates the inline buffer. It runs exactly once per Vector.
func (v *Vector[T]) setup(o Options) {
	v.inline = make([]T, o.inlineCap)
	v.budget = o.budget
	v.kind = inlineStore
}

// inlineCap returns N, including for a zero Vector that has not been set up.
func (v *Vector[T]) inlineCap() int {
	if v.inline == nil {
		return DefaultInlineCapacity
	}

	return len(v.inline)
}

// active returns the full-length active store.
func (v *Vector[T]) active() []T {
	if v.kind == heapStore {
		return v.heap
	}

	return v.inline
}

// bytesFor returns the budget charge for a heap buffer of capacity slots.
func (v *Vector[T]) bytesFor(capacity int) int64 {
	var zero T

	return int64(capacity) * int64(unsafe.Sizeof(zero))
}

// allocate obtains a heap buffer of capacity slots, charging the budget first.
// On failure nothing is reserved and the error wraps ErrAllocation.
func (v *Vector[T]) allocate(capacity int) ([]T, error) {
	bytes := v.bytesFor(capacity)
	if err := v.budget.Acquire(bytes); err != nil {
		return nil, fmt.Errorf("%w: %d slots (%d bytes): %w", ErrAllocation, capacity, bytes, err)
	}

	return make([]T, capacity), nil
}

// heapCharge is the budget debt of one heap buffer. It is settled exactly
// once: by dropHeap, or by a runtime cleanup after the Vector is unreachable.
type heapCharge struct {
	budget *Budget
	bytes  int64
}

// settle returns the charged bytes to the budget.
func (c *heapCharge) settle() {
	c.budget.Release(c.bytes)
	c.bytes = 0
}

// adopt installs buf as the active heap store. With a budget, the charge
// taken by allocate is recorded and a cleanup is registered so that a
// Vector dropped while on the heap still returns its bytes.
func (v *Vector[T]) adopt(buf []T) {
	v.heap = buf
	v.kind = heapStore
	if v.budget == nil {
		return
	}
	v.charge = &heapCharge{budget: v.budget, bytes: v.bytesFor(len(buf))}
	v.cleanup = runtime.AddCleanup(v, (*heapCharge).settle, v.charge)
}

// dropHeap forgets the heap buffer and returns its bytes to the budget.
// The discriminant is left to the caller.
func (v *Vector[T]) dropHeap() {
	if v.heap == nil {
		return
	}
	if v.charge != nil {
		v.cleanup.Stop()
		v.charge.settle()
		v.charge = nil
	}
	v.heap = nil
}

// reserve guarantees room for add more elements. When the active store is
// too small it allocates the next buffer, copies the elements over and only
// then swaps stores and releases the old heap buffer, so an allocation
// failure leaves the Vector untouched.
// Complexity: O(1) when room exists, O(Size()) on a grow transition.
func (v *Vector[T]) reserve(add int) error {
	if v.size+add <= v.capacity() {
		return nil
	}

	buf, err := v.allocate(nextCapacity(v.size, add, len(v.inline)))
	if err != nil {
		return err
	}
	copy(buf, v.active()[:v.size])

	if v.kind == inlineStore {
		clear(v.inline[:v.size]) // no stale references left inline
	}
	v.dropHeap()
	v.adopt(buf)
	v.gen++

	return nil
}

// shrink moves the elements back inline once a removal leaves a heap-mode
// Vector holding no more than N elements.
func (v *Vector[T]) shrink() {
	if v.kind != heapStore || v.size > len(v.inline) {
		return
	}
	copy(v.inline, v.heap[:v.size])
	v.dropHeap()
	v.kind = inlineStore
	v.gen++
}

// aliases reports whether s points into one of v's stores.
func (v *Vector[T]) aliases(s []T) bool {
	var zero T
	width := unsafe.Sizeof(zero)
	if len(s) == 0 || width == 0 {
		return false
	}
	p := uintptr(unsafe.Pointer(unsafe.SliceData(s))) //nolint:gosec // address comparison only
	for _, store := range [...][]T{v.inline, v.heap} {
		if len(store) == 0 {
			continue
		}
		lo := uintptr(unsafe.Pointer(unsafe.SliceData(store))) //nolint:gosec // address comparison only
		if p >= lo && p < lo+uintptr(len(store))*width {
			return true
		}
	}

	return false
}
