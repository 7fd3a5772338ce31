// SPDX-License-Identifier: MIT

// Package blocked implements tiled (blocked) dense matrix multiplication.
//
// 🚀 What is it?
//
//	C = A × B computed one output tile at a time. The output is partitioned into
//	tiles of at most M rows by N columns; the inner dimension is walked in chunks
//	(of M by default, or K when set). For every chunk the two operand sub-blocks
//	are copied out, multiplied with the ordinary dense kernel and added into a
//	per-tile accumulator, which is written into C exactly once.
//
// ✨ Properties
//
//   - Edge tiles are clipped, so any dimension works with any positive block size,
//     including blocks larger than the matrix (a single tile).
//   - Tiles and chunks cover [0,m), [0,n) and [0,k) exactly once (see Spans).
//   - Same O(m·n·k) cost as the naive kernel; only the summation order differs,
//     so results agree with a reference product within floating-point tolerance.
//   - Single-threaded. Inputs are never mutated.
//
// ⚙️ Entry points
//
//	c, err := blocked.MultiplyBlocked(a, b, 32, 32)         // M=32, N=32, inner=32
//	c, err = blocked.Multiply(a, b, blocked.BlockConfig{M: 64, N: 32, K: 128})
//	mul := blocked.Bind(blocked.BlockConfig{M: 16, N: 16})  // Func with the config bound
//
// Errors are matrix.ErrNilMatrix, matrix.ErrDimensionMismatch and
// ErrInvalidBlockSize, checked in that order before anything is allocated.
package blocked
