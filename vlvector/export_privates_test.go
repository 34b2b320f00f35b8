package vlvector

// White-box bridge: exposes unexported helpers to vlvector_test only.
// Compiled exclusively by `go test`, so the production API stays unchanged.

// NextCapacity exposes the growth policy.
func NextCapacity(size, add, n int) int { return nextCapacity(size, add, n) }

// Generation exposes the invalidation counter of v.
func Generation[T any](v *Vector[T]) uint64 { return v.gen }
