// Package vlvector is the root of a small toolkit built around a hybrid
// inline/heap vector, with a dense matrix and image filters on top.
//
// 🚀 What is in the module?
//
//	• vlvector/ Vector[T]: up to N elements inline, heap beyond that,
//	              1.5× growth, automatic shrink back to inline storage,
//	              generation-checked iterators and an allocation Budget
//	• matrix/   Dense: row-major float64 matrix with checked indexing,
//	              arithmetic and whitespace-separated text I/O
//	• filters/  Quantization, Blur and Sobel over grayscale images,
//	              with 3×3 kernels held in inline Vectors
//
// ✨ Why vlvector?
//
//   - Small sequences never touch the heap.
//   - Every failure is a sentinel error, matched with errors.Is.
//   - Pure Go, no cgo.
//
// Quick start:
//
//	v := vlvector.New[int](vlvector.WithInlineCapacity(4))
//	for i := range 6 {
//		_ = v.PushBack(i) // the fifth push moves storage to the heap
//	}
//	v.EraseRange(0, 2) // back to 4 elements: storage returns inline
//
// See examples/ for a runnable image pipeline.
package vlvector
