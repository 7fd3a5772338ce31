// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilemul/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewRandomDeterministic(t *testing.T) {
	a, err := matrix.NewRandom(8, 5, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := matrix.NewRandom(8, 5, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, a.RawData(), b.RawData())

	for _, v := range a.RawData() {
		require.GreaterOrEqual(t, v, matrix.DefaultRandomLow)
		require.Less(t, v, matrix.DefaultRandomHigh)
	}

	// nil rng falls back to DefaultSeed.
	c, err := matrix.NewRandom(8, 5, nil)
	require.NoError(t, err)
	d, err := matrix.NewRandom(8, 5, rand.New(rand.NewSource(matrix.DefaultSeed)))
	require.NoError(t, err)
	require.Equal(t, c.RawData(), d.RawData())
}

func TestNewRandomWithRange(t *testing.T) {
	m, err := matrix.NewRandom(16, 16, rand.New(rand.NewSource(7)), matrix.WithRange(-1, 1))
	require.NoError(t, err)
	var sawNegative bool
	for _, v := range m.RawData() {
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 1.0)
		sawNegative = sawNegative || v < 0
	}
	require.True(t, sawNegative)

	_, err = matrix.NewRandom(0, 3, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewSequential(t *testing.T) {
	m, err := matrix.NewSequential(2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, toRows(t, m))
}

func TestNewIdentityPadded(t *testing.T) {
	wide, err := matrix.NewIdentityPadded(2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}}, toRows(t, wide))

	tall, err := matrix.NewIdentityPadded(3, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {0, 1}, {0, 0}}, toRows(t, tall))

	sq, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, toRows(t, sq))
}

func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, toRows(t, m))

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFacades(t *testing.T) {
	src := MustDense(t, 3, 2)

	z, err := matrix.ZerosLike(src)
	require.NoError(t, err)
	require.Equal(t, 3, z.Rows())
	require.Equal(t, 2, z.Cols())

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	same, err := matrix.AsDense(src)
	require.NoError(t, err)
	require.Same(t, src, same)

	RandomFill(t, src, 3)
	cp, err := matrix.AsDense(hide{src})
	require.NoError(t, err)
	require.NotSame(t, src, cp)
	require.Equal(t, src.RawData(), cp.RawData())
}
