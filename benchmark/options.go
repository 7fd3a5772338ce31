// SPDX-License-Identifier: MIT

// Package benchmark: functional configuration for Run. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters in order.
package benchmark

import (
	"math"

	"github.com/katalvlaran/tilemul/blocked"
	"github.com/katalvlaran/tilemul/reference"
	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRTol is the relative tolerance of the correctness check.
	DefaultRTol = 1e-5

	// DefaultATol is the absolute tolerance of the correctness check.
	DefaultATol = 1e-8
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilClock      = "benchmark: WithClock(nil)"
	panicBadTolerance  = "benchmark: WithTolerance: tolerances must be finite and >= 0"
	panicNilReference  = "benchmark: WithReference(nil)"
	panicNilMultiplier = "benchmark: WithMultiplier(nil)"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	clock      Clock
	logger     zerolog.Logger
	rtol, atol float64
	reference  blocked.Func
	multiplier func(blocked.BlockConfig) blocked.Func
}

// WithClock replaces the system clock. Panics on nil.
func WithClock(c Clock) Option {
	if c == nil {
		panic(panicNilClock)
	}

	return func(o *Options) { o.clock = c }
}

// WithLogger routes run events to l. The default logger is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithTolerance overrides DefaultRTol and DefaultATol.
// Panics when either value is negative, NaN or ±Inf.
func WithTolerance(rtol, atol float64) Option {
	if !validTolerance(rtol) || !validTolerance(atol) {
		panic(panicBadTolerance)
	}

	return func(o *Options) { o.rtol, o.atol = rtol, atol }
}

// WithReference replaces reference.Multiply as the trusted product. Panics on nil.
func WithReference(fn blocked.Func) Option {
	if fn == nil {
		panic(panicNilReference)
	}

	return func(o *Options) { o.reference = fn }
}

// WithMultiplier replaces blocked.Bind as the factory of the timed multiply
// for each config. Panics on nil.
func WithMultiplier(factory func(blocked.BlockConfig) blocked.Func) Option {
	if factory == nil {
		panic(panicNilMultiplier)
	}

	return func(o *Options) { o.multiplier = factory }
}

func validTolerance(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) // NaN fails v >= 0
}

// gatherOptions resolves user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		clock:      SystemClock(),
		logger:     zerolog.Nop(),
		rtol:       DefaultRTol,
		atol:       DefaultATol,
		reference:  reference.Multiply,
		multiplier: blocked.Bind,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
