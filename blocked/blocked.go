// SPDX-License-Identifier: MIT

package blocked

import (
	"fmt"

	"github.com/katalvlaran/tilemul/matrix"
)

const (
	opMultiply        = "blocked.Multiply"
	opMultiplyBlocked = "blocked.MultiplyBlocked"
)

// MultiplyBlocked returns C = A × B computed tile by tile with tiles of
// blockM×blockN and an inner chunk of blockM.
//
// Errors (in this order):
//   - matrix.ErrNilMatrix for a nil operand.
//   - matrix.ErrDimensionMismatch when a.Cols() != b.Rows().
//   - ErrInvalidBlockSize when blockM <= 0 or blockN <= 0.
func MultiplyBlocked(a, b matrix.Matrix, blockM, blockN int) (*matrix.Dense, error) {
	c, err := multiply(a, b, BlockConfig{M: blockM, N: blockN})
	if err != nil {
		return nil, blockedErrorf(opMultiplyBlocked, err)
	}

	return c, nil
}

// Multiply returns C = A × B tiled according to cfg.
// Same error contract as MultiplyBlocked; a negative cfg.K is also ErrInvalidBlockSize.
func Multiply(a, b matrix.Matrix, cfg BlockConfig) (*matrix.Dense, error) {
	c, err := multiply(a, b, cfg)
	if err != nil {
		return nil, blockedErrorf(opMultiply, err)
	}

	return c, nil
}

// Bind returns a Func that multiplies with cfg. cfg is not validated here;
// every call reports ErrInvalidBlockSize for a bad cfg.
func Bind(cfg BlockConfig) Func {
	return func(a, b matrix.Matrix) (*matrix.Dense, error) {
		return Multiply(a, b, cfg)
	}
}

// multiply is the tiled kernel.
//
// Implementation:
//   - Stage 1: validate operands (nil, shape) then cfg; resolve operands to *Dense.
//   - Stage 2: for each output tile (row span × column span) zero an accumulator,
//     then for each inner chunk copy A[i0:i1,p0:p1] and B[p0:p1,j0:j1], multiply
//     them with matrix.Mul and add the partial product into the accumulator.
//   - Stage 3: write the accumulator into C once.
//
// Complexity:
//   - Time O(m*k*n); extra space O(M*K + K*N + M*N) per tile.
func multiply(a, b matrix.Matrix, cfg BlockConfig) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	da, err := matrix.AsDense(a)
	if err != nil {
		return nil, err
	}
	db, err := matrix.AsDense(b)
	if err != nil {
		return nil, err
	}

	m, k, n := da.Rows(), da.Cols(), db.Cols()
	c, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, err
	}

	rows, cols, inner := Spans(m, cfg.M), Spans(n, cfg.N), Spans(k, cfg.Inner())
	var (
		acc, ablk, bblk, part *matrix.Dense
	)
	for _, rs := range rows {
		for _, cs := range cols {
			if acc, err = matrix.NewDense(rs.Len(), cs.Len()); err != nil {
				return nil, err
			}
			for _, ks := range inner {
				if ablk, err = da.Block(rs.Start, rs.End, ks.Start, ks.End); err != nil {
					return nil, tileErrorf(rs, cs, err)
				}
				if bblk, err = db.Block(ks.Start, ks.End, cs.Start, cs.End); err != nil {
					return nil, tileErrorf(rs, cs, err)
				}
				if part, err = matrix.Mul(ablk, bblk); err != nil {
					return nil, tileErrorf(rs, cs, err)
				}
				if err = acc.AddInPlace(part); err != nil {
					return nil, tileErrorf(rs, cs, err)
				}
			}
			if err = c.SetBlock(rs.Start, cs.Start, acc); err != nil {
				return nil, tileErrorf(rs, cs, err)
			}
		}
	}

	return c, nil
}

func tileErrorf(rs, cs Span, err error) error {
	return fmt.Errorf("tile[%d:%d,%d:%d]: %w", rs.Start, rs.End, cs.Start, cs.End, err)
}
