// SPDX-License-Identifier: MIT

// Command blockbench benchmarks blocked matrix multiplication over a set of
// tile sizes on random operands and reports time, GFLOPS and correctness
// against a gonum reference product.
//
//	blockbench                                  # 1024×512 · 512×768, tiles 16…128
//	blockbench --block 24x48 --block 64x64x256  # custom tilings (MxN or MxNxK)
//	blockbench --json report.json --host        # machine-readable report
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
