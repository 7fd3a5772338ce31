// SPDX-License-Identifier: MIT
package benchmark_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/tilemul/matrix"
	"github.com/stretchr/testify/require"
)

// stepClock advances by step on every reading, so each Now→Since pair
// measures exactly step.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func newStepClock(step time.Duration) *stepClock {
	return &stepClock{now: time.Unix(0, 0), step: step}
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func (c *stepClock) Since(t time.Time) time.Duration {
	c.now = c.now.Add(c.step)
	return c.now.Sub(t)
}

func operands(t testing.TB, m, k, n int, seed int64) (*matrix.Dense, *matrix.Dense) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a, err := matrix.NewRandom(m, k, rng)
	require.NoError(t, err)
	b, err := matrix.NewRandom(k, n, rng)
	require.NoError(t, err)

	return a, b
}
