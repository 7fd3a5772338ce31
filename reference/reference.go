// SPDX-License-Identifier: MIT

package reference

import (
	"fmt"

	"github.com/katalvlaran/tilemul/matrix"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

const (
	opMultiply = "reference.Multiply"
	opGEMM     = "reference.GEMM"
	opNaive    = "reference.Naive"
)

func referenceErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Multiply returns C = A × B computed by gonum's dense multiply.
//
// *matrix.Dense operands are wrapped in place (mat.NewDense over RawData);
// other Matrix implementations are copied once through matrix.AsDense.
// The result is a fresh *matrix.Dense whose buffer gonum writes directly.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n).
func Multiply(a, b matrix.Matrix) (*matrix.Dense, error) {
	da, db, out, err := prepare(a, b)
	if err != nil {
		return nil, referenceErrorf(opMultiply, err)
	}

	ga := mat.NewDense(da.Rows(), da.Cols(), da.RawData())
	gb := mat.NewDense(db.Rows(), db.Cols(), db.RawData())
	gc := mat.NewDense(out.Rows(), out.Cols(), out.RawData())
	gc.Mul(ga, gb) // writes into out's buffer

	return out, nil
}

// GEMM returns C = A × B through a single blas64.Gemm call
// (C = 1·A·B + 0·C, no transposes). Same contract as Multiply.
func GEMM(a, b matrix.Matrix) (*matrix.Dense, error) {
	da, db, out, err := prepare(a, b)
	if err != nil {
		return nil, referenceErrorf(opGEMM, err)
	}

	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, general(da), general(db), 0, general(out))

	return out, nil
}

// Naive returns C = A × B using matrix.Mul.
func Naive(a, b matrix.Matrix) (*matrix.Dense, error) {
	c, err := matrix.Mul(a, b)
	if err != nil {
		return nil, referenceErrorf(opNaive, err)
	}

	return c, nil
}

// prepare validates the pair, resolves both operands to *matrix.Dense and
// allocates the zeroed m×n result.
func prepare(a, b matrix.Matrix) (da, db, out *matrix.Dense, err error) {
	if err = matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, nil, nil, err
	}
	if da, err = matrix.AsDense(a); err != nil {
		return nil, nil, nil, err
	}
	if db, err = matrix.AsDense(b); err != nil {
		return nil, nil, nil, err
	}
	if out, err = matrix.NewDense(a.Rows(), b.Cols()); err != nil {
		return nil, nil, nil, err
	}

	return da, db, out, nil
}

// general views d's row-major buffer as a blas64.General (stride = cols).
func general(d *matrix.Dense) blas64.General {
	return blas64.General{Rows: d.Rows(), Cols: d.Cols(), Stride: d.Cols(), Data: d.RawData()}
}
