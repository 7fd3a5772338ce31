// SPDX-License-Identifier: MIT

// Package benchmark times blocked multiplication across tiling strategies and
// checks every result against a reference product.
//
// 🚀 What is it?
//
//	Run computes the reference A×B once, then for each BlockConfig in order:
//	one untimed warm-up call, one call timed on a monotonic Clock, and an
//	AllClose check (rtol=1e-5, atol=1e-8 unless overridden) against the
//	reference. The outcome is a Result: an insertion-ordered map from
//	BlockConfig to Record{Elapsed, Correct, GFLOPS}.
//
// ✨ Guarantees
//
//   - Shapes and every config are validated before anything is computed or timed;
//     on error Run returns a nil *Result, never a partial one.
//   - A tolerance failure is data (Correct=false), not an error.
//   - Elapsed is never negative.
//   - Silent by default: pass WithLogger to receive zerolog events.
//
// ⚙️ Usage
//
//	res, err := benchmark.Run(a, b, nil) // default configs 16x16 … 128x128
//	for _, e := range res.Entries() {
//		fmt.Println(e.Config, e.Elapsed, e.Correct)
//	}
package benchmark
