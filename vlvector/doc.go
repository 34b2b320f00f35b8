// Package vlvector provides Vector, a variable-length sequence container that
// keeps its first N elements inline and spills to a heap buffer beyond that.
//
// 🚀 What is a hybrid-storage vector?
//
//	Most sequences in real programs are short. Vector reserves a fixed inline
//	buffer of N slots when it is created and serves every operation from it
//	while Size() <= N. Only when the logical size would exceed N does it
//	allocate a heap buffer, and it returns to the inline buffer as soon as a
//	removal brings the size back down to exactly N.
//
// ✨ Key features:
//   - inline capacity N fixed at construction (WithInlineCapacity, default 16)
//   - amortized 1.5× growth applied to the post-insertion size
//   - positional Insert / InsertSlice / InsertRange and Erase / EraseRange
//   - checked (At, SetAt) and unchecked (Index, Ref) element access
//   - generation-checked iterators: a stale iterator reports ErrInvalidated
//     instead of reading relocated storage
//   - optional shared allocation Budget; a refused allocation reports
//     ErrAllocation and leaves the container exactly as it was
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vlvector/vlvector"
//
//	v := vlvector.New[int](vlvector.WithInlineCapacity(4))
//	for i := 0; i < 5; i++ {
//		_ = v.PushBack(i) // 5th push moves to the heap: capacity 7
//	}
//	_, _ = v.Insert(1, 9)  // [0 9 1 2 3 4]
//	_, _ = v.Erase(0)      // [9 1 2 3 4]
//	_, _ = v.EraseRange(0, 1) // back to 4 elements: inline again
//
// Storage states:
//
//	inline: Capacity() == N, no heap buffer held
//	heap:   Capacity() == len(heap) > N
//
// Iterator invalidation (hard contract):
//
//	Any operation that relocates or shifts elements invalidates every
//	iterator obtained before it: a PushBack that grows, Insert*, Erase*,
//	a PopBack that shrinks, Clear and Assign. Index/Ref pointers and slices
//	returned by Data() follow the same rule but cannot be checked.
//
// Concurrency:
//
//	A Vector is not safe for concurrent use; callers serialize access.
//	A Budget may be shared by many vectors across goroutines.
//	Heap bytes return to the Budget when a Vector shrinks, regrows, is
//	cleared or reassigned; a Vector dropped while on the heap returns
//	them once the garbage collector has reclaimed it.
//
// Complexity:
//
//	PushBack amortized O(1); Insert/Erase O(Size()); At/Index O(1).
package vlvector
