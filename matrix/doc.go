// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 primitives the multipliers are built on.
//
// The matrix package provides:
//
//   - Dense: a row-major, fixed-size container backed by one flat slice
//     (offset = i*cols + j) with bounds-safe At/Set that return errors.
//   - Sub-block plumbing for tiled kernels: Block (copy a rectangular window out),
//     SetBlock (write a tile back), AddInPlace (accumulate a partial product).
//   - Mul, the standard i-k-j dense kernel used inside every tile.
//   - AllClose, the element-wise |a-b| ≤ atol + rtol*|b| comparison used to check
//     a blocked result against the reference.
//   - Builders for deterministic fixtures: NewRandom, NewSequential, NewIdentityPadded.
//
// All failures are reported through the sentinels in errors.go and can be matched
// with errors.Is. No exported function panics on user input.
//
//	a, _ := matrix.NewSequential(4, 3)       // 1..12
//	b, _ := matrix.NewIdentityPadded(3, 5)   // I₃ followed by two zero columns
//	c, _ := matrix.Mul(a, b)                 // 4×5
//	ok, _ := matrix.AllClose(c, c, 1e-9, 0)  // true
package matrix
