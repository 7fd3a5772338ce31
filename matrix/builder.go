// SPDX-License-Identifier: MIT

// Package matrix - deterministic fixture builders.
//
// Purpose:
//   - Build operands for tests, benchmarks and the blockbench driver without
//     each caller re-implementing fill loops.
//   - Keep randomness explicit: NewRandom draws from the *rand.Rand it is given,
//     so equal seeds always produce equal matrices.

package matrix

import "math/rand"

// NewRandom returns a rows×cols Dense filled with uniform values in [lo, hi)
// (default [0,1), see WithRange) drawn from rng in row-major order.
// A nil rng is replaced by rand.New(rand.NewSource(DefaultSeed)).
//
// Errors:
//   - ErrInvalidDimensions for non-positive shapes.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewRandom(rows, cols int, rng *rand.Rand, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(DefaultSeed))
	}
	o := gatherOptions(opts...)
	span := o.hi - o.lo
	for idx := range m.data {
		m.data[idx] = o.lo + rng.Float64()*span
	}

	return m, nil
}

// NewSequential returns a rows×cols Dense holding 1, 2, …, rows*cols in row-major order.
// Every partial sum of products of such matrices is an exactly representable integer
// for the sizes used in tests, which makes exact comparisons meaningful.
func NewSequential(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = float64(idx + 1)
	}

	return m, nil
}

// NewIdentityPadded returns a rows×cols Dense with ones on the main diagonal
// (i == j, up to min(rows, cols)) and zeros elsewhere. For rows == cols this is Iₙ;
// otherwise the identity is padded with zero rows or columns.
func NewIdentityPadded(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < min(rows, cols); i++ { // fixed i order guarantees reproducibility
		m.data[i*cols+i] = 1.0
	}

	return m, nil
}

// NewFromRows builds a Dense from a rectangular [][]float64 (copying values).
//
// Errors:
//   - ErrInvalidDimensions when rows is empty, a row is empty, or rows are ragged.
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, ErrInvalidDimensions
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}
