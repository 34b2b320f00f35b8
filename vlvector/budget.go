package vlvector

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrBudgetExceeded is returned by Budget.Acquire when the reservation would
// exceed the configured limit. Vector operations wrap it in ErrAllocation.
var ErrBudgetExceeded = errors.New("vlvector: allocation budget exceeded")

// Budget caps the heap bytes held by the vectors configured WithBudget.
// Inline buffers are never charged. A Budget is safe for concurrent use, so
// one Budget may be shared by vectors owned by different goroutines.
// A nil *Budget is valid and unlimited.
type Budget struct {
	limit int64
	sem   *semaphore.Weighted // nil if unlimited
	used  atomic.Int64
}

// NewBudget creates a Budget allowing limitBytes of heap buffers in total.
// If limitBytes <= 0 no limit is enforced and the Budget only tracks usage.
func NewBudget(limitBytes int64) *Budget {
	b := &Budget{limit: limitBytes}
	if limitBytes > 0 {
		b.sem = semaphore.NewWeighted(limitBytes)
	}

	return b
}

// Acquire reserves bytes. It never blocks: if the reservation does not fit,
// it returns ErrBudgetExceeded and reserves nothing.
func (b *Budget) Acquire(bytes int64) error {
	if b == nil || bytes <= 0 {
		return nil
	}
	if b.sem != nil && !b.sem.TryAcquire(bytes) {
		return ErrBudgetExceeded
	}
	b.used.Add(bytes)

	return nil
}

// Release returns bytes previously reserved with Acquire.
func (b *Budget) Release(bytes int64) {
	if b == nil || bytes <= 0 {
		return
	}
	if b.sem != nil {
		b.sem.Release(bytes)
	}
	b.used.Add(-bytes)
}

// Used returns the bytes currently reserved.
func (b *Budget) Used() int64 {
	if b == nil {
		return 0
	}

	return b.used.Load()
}

// Limit returns the configured limit in bytes (0 if unlimited).
func (b *Budget) Limit() int64 {
	if b == nil || b.limit < 0 {
		return 0
	}

	return b.limit
}
