// SPDX-License-Identifier: MIT

// Package vlvector: functional configuration for Vector construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Options are consumed once, when a Vector is created. The inline capacity
// they select can never change for the lifetime of that Vector.
package vlvector

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultInlineCapacity is the number of inline slots used when no
	// WithInlineCapacity option is given, including for the zero Vector.
	DefaultInlineCapacity = 16
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicInlineCapacityInvalid = "vlvector: WithInlineCapacity: n must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	inlineCap int     // N; DefaultInlineCapacity
	budget    *Budget // nil ⇒ unlimited
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{inlineCap: DefaultInlineCapacity}
}

// WithInlineCapacity sets N, the number of elements held without touching
// the heap. Panics if n <= 0.
func WithInlineCapacity(n int) Option {
	if n <= 0 {
		panic(panicInlineCapacityInvalid)
	}

	return func(o *Options) { o.inlineCap = n }
}

// WithBudget charges every heap buffer the Vector allocates against b.
// A nil b means unlimited.
func WithBudget(b *Budget) Option {
	return func(o *Options) { o.budget = b }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
