// SPDX-License-Identifier: MIT

package benchmark

import "time"

// Clock is the time source of a benchmark run. Implementations must be
// monotonic: Since(t) measures elapsed time independent of wall-clock jumps.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// SystemClock returns the process clock. time.Now carries a monotonic
// reading, which time.Since uses.
func SystemClock() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time                  { return time.Now() }
func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }
