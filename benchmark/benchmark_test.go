// SPDX-License-Identifier: MIT
package benchmark_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/tilemul/benchmark"
	"github.com/katalvlaran/tilemul/blocked"
	"github.com/katalvlaran/tilemul/matrix"
	"github.com/katalvlaran/tilemul/reference"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cfg16 = blocked.BlockConfig{M: 16, N: 16}
	cfg32 = blocked.BlockConfig{M: 32, N: 32}
)

// TestRunTwoConfigs runs the real kernel on the system clock.
func TestRunTwoConfigs(t *testing.T) {
	a, b := operands(t, 70, 45, 38, 1)

	res, err := benchmark.Run(a, b, []blocked.BlockConfig{cfg16, cfg32})
	require.NoError(t, err)
	require.Equal(t, 2, res.Len())
	require.Equal(t, []blocked.BlockConfig{cfg16, cfg32}, res.Configs())
	require.Equal(t, [3]int{70, 45, 38}, [3]int{res.M, res.K, res.N})

	for _, e := range res.Entries() {
		assert.GreaterOrEqual(t, e.Elapsed, time.Duration(0), e.Config.String())
		assert.True(t, e.Correct, e.Config.String())
		assert.GreaterOrEqual(t, e.GFLOPS, 0.0)
	}
	require.True(t, res.AllCorrect())
	_, ok := res.Get(blocked.BlockConfig{M: 64, N: 64})
	require.False(t, ok)
}

func TestRunDefaultConfigs(t *testing.T) {
	a, b := operands(t, 40, 20, 30, 2)

	for _, configs := range [][]blocked.BlockConfig{nil, {}} {
		res, err := benchmark.Run(a, b, configs, benchmark.WithClock(newStepClock(time.Millisecond)))
		require.NoError(t, err)
		require.Equal(t, benchmark.DefaultConfigs(), res.Configs())
	}

	// DefaultConfigs hands out a fresh slice each time.
	d := benchmark.DefaultConfigs()
	d[0].M = 999
	require.Equal(t, 16, benchmark.DefaultConfigs()[0].M)
}

func TestRunStepClock(t *testing.T) {
	a, b := operands(t, 20, 10, 30, 3)
	step := 3 * time.Millisecond

	res, err := benchmark.Run(a, b, []blocked.BlockConfig{cfg16, cfg32}, benchmark.WithClock(newStepClock(step)))
	require.NoError(t, err)
	require.Equal(t, step, res.Reference)

	for _, e := range res.Entries() {
		require.Equal(t, step, e.Elapsed)
		require.InDelta(t, benchmark.GFLOPS(20, 10, 30, step), e.GFLOPS, 1e-15)
	}
}

func TestRunHugeBlock(t *testing.T) {
	a, b := operands(t, 2, 3, 2, 11)
	huge := blocked.BlockConfig{M: math.MaxInt, N: math.MaxInt}

	res, err := benchmark.Run(a, b, []blocked.BlockConfig{huge}, benchmark.WithClock(newStepClock(time.Millisecond)))
	require.NoError(t, err)
	rec, ok := res.Get(huge)
	require.True(t, ok)
	require.True(t, rec.Correct)
}

// TestRunBackwardsClock clamps negative readings to zero.
func TestRunBackwardsClock(t *testing.T) {
	a, b := operands(t, 8, 8, 8, 4)

	res, err := benchmark.Run(a, b, []blocked.BlockConfig{cfg16}, benchmark.WithClock(newStepClock(-time.Second)))
	require.NoError(t, err)
	rec, ok := res.Get(cfg16)
	require.True(t, ok)
	require.Equal(t, time.Duration(0), rec.Elapsed)
	require.Equal(t, 0.0, rec.GFLOPS)
	require.Equal(t, time.Duration(0), res.Reference)
}

// TestRunCallOrder checks reference-once, then warm-up and timed call per config.
func TestRunCallOrder(t *testing.T) {
	a, b := operands(t, 12, 9, 7, 5)
	var calls []string

	ref := func(x, y matrix.Matrix) (*matrix.Dense, error) {
		calls = append(calls, "reference")
		return reference.Multiply(x, y)
	}
	factory := func(cfg blocked.BlockConfig) blocked.Func {
		mul := blocked.Bind(cfg)
		return func(x, y matrix.Matrix) (*matrix.Dense, error) {
			calls = append(calls, cfg.String())
			return mul(x, y)
		}
	}

	res, err := benchmark.Run(a, b,
		[]blocked.BlockConfig{cfg16, cfg32, cfg16},
		benchmark.WithReference(ref),
		benchmark.WithMultiplier(factory),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"reference", "16x16", "16x16", "32x32", "32x32"}, calls)
	require.Equal(t, []blocked.BlockConfig{cfg16, cfg32}, res.Configs()) // duplicate kept at first position
}

func TestRunIncorrectIsData(t *testing.T) {
	a, b := operands(t, 10, 10, 10, 6)
	off := func(cfg blocked.BlockConfig) blocked.Func {
		return func(x, y matrix.Matrix) (*matrix.Dense, error) {
			c, err := blocked.Multiply(x, y, cfg)
			if err != nil {
				return nil, err
			}
			_ = c.Set(0, 0, 1e6)
			return c, nil
		}
	}

	res, err := benchmark.Run(a, b, []blocked.BlockConfig{cfg16}, benchmark.WithMultiplier(off))
	require.NoError(t, err)
	rec, _ := res.Get(cfg16)
	require.False(t, rec.Correct)
	require.False(t, res.AllCorrect())
	_, ok := res.Fastest()
	require.False(t, ok)
}

func TestRunTolerance(t *testing.T) {
	a, b := operands(t, 6, 6, 6, 7)
	scaled := func(cfg blocked.BlockConfig) blocked.Func {
		return func(x, y matrix.Matrix) (*matrix.Dense, error) {
			c, err := blocked.Multiply(x, y, cfg)
			if err != nil {
				return nil, err
			}
			for i := range c.RawData() {
				c.RawData()[i] *= 1 + 1e-3
			}
			return c, nil
		}
	}
	configs := []blocked.BlockConfig{cfg16}

	res, err := benchmark.Run(a, b, configs, benchmark.WithMultiplier(scaled))
	require.NoError(t, err)
	require.False(t, res.AllCorrect())

	res, err = benchmark.Run(a, b, configs, benchmark.WithMultiplier(scaled), benchmark.WithTolerance(1e-2, 0))
	require.NoError(t, err)
	require.True(t, res.AllCorrect())
}

func TestRunErrors(t *testing.T) {
	a34, _ := matrix.NewDense(3, 4)
	b52, _ := matrix.NewDense(5, 2)
	b42, _ := matrix.NewDense(4, 2)

	refCalls := 0
	countingRef := benchmark.WithReference(func(x, y matrix.Matrix) (*matrix.Dense, error) {
		refCalls++
		return reference.Multiply(x, y)
	})

	res, err := benchmark.Run(a34, b52, nil, countingRef)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Nil(t, res)

	res, err = benchmark.Run(a34, b42, []blocked.BlockConfig{cfg16, {M: 0, N: 4}}, countingRef)
	require.ErrorIs(t, err, blocked.ErrInvalidBlockSize)
	require.Nil(t, res)

	res, err = benchmark.Run(a34, b42, []blocked.BlockConfig{{M: 4, N: -1}}, countingRef)
	require.ErrorIs(t, err, blocked.ErrInvalidBlockSize)
	require.Nil(t, res)

	res, err = benchmark.Run(nil, b42, nil, countingRef)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Nil(t, res)

	require.Zero(t, refCalls, "nothing runs before validation passes")

	boom := errors.New("boom")
	res, err = benchmark.Run(a34, b42, nil, benchmark.WithReference(func(_, _ matrix.Matrix) (*matrix.Dense, error) {
		return nil, boom
	}))
	require.ErrorIs(t, err, boom)
	require.Nil(t, res)

	timedCalls := 0
	flaky := func(cfg blocked.BlockConfig) blocked.Func {
		return func(x, y matrix.Matrix) (*matrix.Dense, error) {
			timedCalls++
			if timedCalls == 2 {
				return nil, boom
			}
			return blocked.Multiply(x, y, cfg)
		}
	}
	res, err = benchmark.Run(a34, b42, nil, benchmark.WithMultiplier(flaky))
	require.ErrorIs(t, err, boom)
	require.Nil(t, res)
}

func TestRunLogging(t *testing.T) {
	a, b := operands(t, 8, 8, 8, 8)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := benchmark.Run(a, b, []blocked.BlockConfig{cfg16}, benchmark.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `"message":"benchmark start"`)
	require.Contains(t, out, `"message":"reference computed"`)
	require.Contains(t, out, `"config":"16x16"`)
	require.Contains(t, out, `"message":"benchmark done"`)
}

func TestResultJSON(t *testing.T) {
	a, b := operands(t, 8, 8, 8, 9)
	res, err := benchmark.Run(a, b, []blocked.BlockConfig{cfg32, cfg16}, benchmark.WithClock(newStepClock(time.Microsecond)))
	require.NoError(t, err)

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded []struct {
		Config  string  `json:"config"`
		Elapsed int64   `json:"elapsed_ns"`
		Correct bool    `json:"correct"`
		GFLOPS  float64 `json:"gflops"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, "32x32", decoded[0].Config)
	require.Equal(t, "16x16", decoded[1].Config)
	require.Equal(t, int64(1000), decoded[0].Elapsed)
	require.True(t, decoded[1].Correct)
}

func TestFastest(t *testing.T) {
	a, b := operands(t, 8, 8, 8, 10)
	res, err := benchmark.Run(a, b, []blocked.BlockConfig{cfg16, cfg32}, benchmark.WithClock(newStepClock(time.Millisecond)))
	require.NoError(t, err)

	best, ok := res.Fastest()
	require.True(t, ok)
	require.Equal(t, cfg16, best.Config) // equal times: earliest wins
}

func TestGFLOPS(t *testing.T) {
	require.InDelta(t, 2.0, benchmark.GFLOPS(1000, 1000, 1000, time.Second), 1e-12)
	require.Zero(t, benchmark.GFLOPS(10, 10, 10, 0))
}
