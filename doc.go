// Package tilemul is a small laboratory for blocked (tiled) dense matrix
// multiplication: how the choice of tile size changes wall-clock time for
// the same O(m·n·k) arithmetic.
//
// 🚀 What is tilemul?
//
//	A pure-Go module that brings together:
//		• Dense primitives: row-major float64 matrices, sub-block copy/write-back, AllClose
//		• A reference product: gonum's optimized GEMM over the same buffers
//		• A blocked product: output tiles of M×N, inner chunks of K (default M)
//		• A benchmark harness: warm-up, monotonic timing and a tolerance check per tiling
//
// ✨ Why tilemul?
//
//   - Deterministic – seeded operands, fixed loop orders, ordered results
//   - Fail-fast – shape and block-size errors before any work is timed
//   - Pure Go – no cgo; gonum's blas64 backs the reference
//   - Observable – zerolog events from the harness, JSON reports from the CLI
//
// Under the hood, the module is four library packages and one command:
//
//	matrix/          : Dense, Mul, AllClose, Block/SetBlock/AddInPlace, fixture builders
//	reference/       : trusted full products (gonum mat, blas64 GEMM, naive)
//	blocked/         : BlockConfig, Spans and the tiled kernel
//	benchmark/       : Run, Result, Clock, host detection
//	cmd/blockbench/  : the command-line driver
//
// Quick ASCII example (m=5, n=7, tiles 2×3):
//
//	┌──┬───┬─┐
//	│00│01 │02
//	├──┼───┼─┤   5 rows  → spans [0,2) [2,4) [4,5)
//	│10│11 │12   7 cols  → spans [0,3) [3,6) [6,7)
//	├──┼───┼─┤
//	│20│21 │22   the last row and column of tiles are clipped
//	└──┴───┴─┘
//
//	go install github.com/katalvlaran/tilemul/cmd/blockbench@latest
package tilemul
