// SPDX-License-Identifier: MIT

// Package reference provides the trusted full-matrix products that blocked
// results are checked against.
//
// 🚀 What is it?
//
//	A thin adapter between matrix.Dense and gonum. Multiply hands the flat
//	row-major buffers of both operands to gonum's mat.Dense.Mul without copying
//	them, so the reference cost is one optimized GEMM plus one result allocation.
//
// ✨ Entry points
//
//   - Multiply: gonum mat.Dense.Mul (pure-Go blas64 underneath).
//   - GEMM: the same product expressed directly as a blas64.Gemm call.
//   - Naive: the package's own i-k-j kernel (matrix.Mul), for hosts or tests
//     that want a baseline free of any external BLAS.
//
// All three validate shapes first and report matrix.ErrNilMatrix or
// matrix.ErrDimensionMismatch; gonum never sees an incompatible pair, so it
// never panics on user input.
package reference
