// SPDX-License-Identifier: MIT

package benchmark

import (
	"time"

	"github.com/katalvlaran/tilemul/blocked"
	"github.com/katalvlaran/tilemul/matrix"
)

const (
	opRun       = "benchmark.Run"
	opReference = "benchmark.Run: reference"
	opWarmUp    = "benchmark.Run: warm-up"
	opTimed     = "benchmark.Run: timed"
	opCheck     = "benchmark.Run: check"
)

// DefaultConfigs returns the square tiles 16, 32, 64 and 128, in that order.
// The slice is fresh on every call.
func DefaultConfigs() []blocked.BlockConfig {
	return []blocked.BlockConfig{
		{M: 16, N: 16},
		{M: 32, N: 32},
		{M: 64, N: 64},
		{M: 128, N: 128},
	}
}

// Run benchmarks the blocked multiply of a and b for each config.
//
// Implementation:
//   - Stage 1: validate operand shapes, then every config (nil/empty configs
//     mean DefaultConfigs). Nothing is computed on failure.
//   - Stage 2: compute the reference product once.
//   - Stage 3: per config in order: warm-up call (discarded), timed call,
//     AllClose(got, ref, rtol, atol), record. A config already measured is skipped.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, blocked.ErrInvalidBlockSize,
//     or any error of the reference or multiply calls. The *Result is nil whenever
//     err != nil.
func Run(a, b matrix.Matrix, configs []blocked.BlockConfig, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if len(configs) == 0 {
		configs = DefaultConfigs()
	}

	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, benchErrorf(opRun, err)
	}
	for _, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return nil, benchErrorf(opRun, err)
		}
	}

	// Resolve generic operands once so every timed call sees the same *Dense.
	da, err := matrix.AsDense(a)
	if err != nil {
		return nil, benchErrorf(opRun, err)
	}
	db, err := matrix.AsDense(b)
	if err != nil {
		return nil, benchErrorf(opRun, err)
	}
	m, k, n := da.Rows(), da.Cols(), db.Cols()

	log := o.logger.With().Int("m", m).Int("k", k).Int("n", n).Logger()
	log.Info().Int("configs", len(configs)).Msg("benchmark start")

	start := o.clock.Now()
	ref, err := o.reference(da, db)
	refElapsed := nonNegative(o.clock.Since(start))
	if err != nil {
		return nil, benchErrorf(opReference, err)
	}
	log.Debug().Dur("elapsed", refElapsed).Msg("reference computed")

	res := newResult(m, k, n, refElapsed, len(configs))
	var (
		got     *matrix.Dense
		elapsed time.Duration
		correct bool
	)
	for _, cfg := range configs {
		if res.has(cfg) {
			log.Debug().Stringer("config", cfg).Msg("duplicate config skipped")
			continue
		}
		mul := o.multiplier(cfg)

		if _, err = mul(da, db); err != nil {
			return nil, benchErrorf(opWarmUp, err)
		}

		start = o.clock.Now()
		got, err = mul(da, db)
		elapsed = nonNegative(o.clock.Since(start))
		if err != nil {
			return nil, benchErrorf(opTimed, err)
		}

		if correct, err = matrix.AllClose(got, ref, o.rtol, o.atol); err != nil {
			return nil, benchErrorf(opCheck, err)
		}
		rec := Record{Elapsed: elapsed, Correct: correct, GFLOPS: GFLOPS(m, k, n, elapsed)}
		res.add(cfg, rec)

		log.Debug().
			Stringer("config", cfg).
			Dur("elapsed", elapsed).
			Float64("gflops", rec.GFLOPS).
			Bool("correct", correct).
			Msg("config measured")
		if !correct {
			log.Warn().Stringer("config", cfg).Msg("result differs from reference")
		}
	}
	log.Info().Int("measured", res.Len()).Msg("benchmark done")

	return res, nil
}

// GFLOPS returns 2·m·k·n floating-point operations per elapsed nanosecond.
// Zero elapsed yields 0.
func GFLOPS(m, k, n int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}

	return 2 * float64(m) * float64(k) * float64(n) / float64(elapsed.Nanoseconds())
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}

	return d
}
