// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the fixture builders. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters in order.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRandomLow is the inclusive lower bound of NewRandom values.
	DefaultRandomLow = 0.0

	// DefaultRandomHigh is the exclusive upper bound of NewRandom values.
	// [0,1) mirrors the usual "uniform random matrix" fixture.
	DefaultRandomHigh = 1.0

	// DefaultSeed seeds NewRandom when the caller passes a nil *rand.Rand.
	DefaultSeed int64 = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRangeInvalid = "matrix: WithRange: bounds must be finite with lo < hi"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	lo, hi float64 // NewRandom value range [lo, hi)
}

// WithRange sets the half-open value range [lo, hi) used by NewRandom.
//
// Errors:
//   - Panics with a stable message when a bound is NaN/±Inf or lo >= hi.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithRange(lo, hi float64) Option {
	if isNonFinite(lo) || isNonFinite(hi) || lo >= hi {
		panic(panicRangeInvalid)
	}

	return func(o *Options) { o.lo, o.hi = lo, hi }
}

// gatherOptions resolves user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{lo: DefaultRandomLow, hi: DefaultRandomHigh}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
