// Package vlvector_test provides benchmarks for Vector operations.
package vlvector_test

import (
	"testing"

	"github.com/katalvlaran/vlvector/vlvector"
)

// benchmarkPushBack appends n elements per iteration to a fresh Vector.
func benchmarkPushBack(b *testing.B, n int) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := vlvector.New[int](vlvector.WithInlineCapacity(16))
		for j := 0; j < n; j++ {
			_ = v.PushBack(j)
		}
	}
}

// BenchmarkPushBack_Inline stays within the inline buffer.
func BenchmarkPushBack_Inline(b *testing.B) { benchmarkPushBack(b, 16) }

// BenchmarkPushBack_Heap exercises repeated grow transitions.
func BenchmarkPushBack_Heap(b *testing.B) { benchmarkPushBack(b, 4096) }

// BenchmarkInsertFront measures the worst-case shift.
func BenchmarkInsertFront(b *testing.B) {
	v := vlvector.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.Size() == 1024 {
			v.Clear()
		}
		_, _ = v.Insert(0, i)
	}
}

// BenchmarkIterate compares Iterator and range-over-func traversal.
func BenchmarkIterate(b *testing.B) {
	v, _ := vlvector.FromSlice(seq(1024))

	b.Run("iterator", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for it := v.Begin(); it != v.End(); it = it.Next() {
				x, _ := it.Value()
				sum += x
			}
			_ = sum
		}
	})
	b.Run("values", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for x := range v.Values() {
				sum += x
			}
			_ = sum
		}
	})
}
