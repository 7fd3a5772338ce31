// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Block/SetBlock return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Provide the copy-based tile plumbing used by blocked kernels (Block, SetBlock, AddInPlace).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Block: O(h*w); SetBlock: O(h*w).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"         // method tag used in error wrappers
	ctxSet      = "Set"        // method tag used in error wrappers
	ctxBlock    = "Block"      // ctor tag for Dense.Block
	ctxSetBlock = "SetBlock"   // method tag for Dense.SetBlock
	ctxAddIn    = "AddInPlace" // method tag for Dense.AddInPlace
	ctxFrom     = "NewDenseFrom"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer (make() zero-fills deterministically).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom creates an r×c matrix holding a copy of data (row-major).
//
// Implementation:
//   - Stage 1: validate the shape and len(data) == rows*cols.
//   - Stage 2: allocate and copy; the caller keeps ownership of data.
//
// Errors:
//   - ErrInvalidDimensions when the shape is non-positive or the length disagrees.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d) len=%d: %w", ctxFrom, rows, cols, len(data), ErrInvalidDimensions)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// RawData returns the backing row-major slice without copying.
// Writes through the slice are visible in m; it is meant for handing the
// buffer to external dense kernels that read or fill it in place.
func (m *Dense) RawData() []float64 { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned bare; public methods wrap it with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns a wrapped sentinel.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders rows as lines with comma-separated values (%g).
// Intended for logs and debugging; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Block materializes a copy of the half-open window [r0:r1) × [c0:c1).
//
// Implementation:
//   - Stage 1: validate 0 ≤ r0 < r1 ≤ Rows and 0 ≤ c0 < c1 ≤ Cols.
//   - Stage 2: allocate (r1-r0)×(c1-c0) and copy row segments with copy().
//
// Behavior highlights:
//   - The result owns its buffer; mutating it never touches m.
//   - Empty windows are rejected: every tile in a blocked kernel is non-empty.
//
// Errors:
//   - ErrOutOfRange when the window is empty or exceeds the bounds.
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func (m *Dense) Block(r0, r1, c0, c1 int) (*Dense, error) {
	if r0 < 0 || c0 < 0 || r1 > m.r || c1 > m.c || r0 >= r1 || c0 >= c1 {
		return nil, fmt.Errorf("Dense.%s[%d:%d,%d:%d]: %w", ctxBlock, r0, r1, c0, c1, ErrOutOfRange)
	}
	h, w := r1-r0, c1-c0
	out := &Dense{r: h, c: w, data: make([]float64, h*w)}

	// One contiguous copy per row: source row segment → destination row.
	var i, src int
	for i = 0; i < h; i++ {
		src = (r0+i)*m.c + c0
		copy(out.data[i*w:(i+1)*w], m.data[src:src+w])
	}

	return out, nil
}

// SetBlock overwrites the window starting at (r0, c0) with the contents of src.
//
// Implementation:
//   - Stage 1: validate that src fits entirely inside m at (r0, c0).
//   - Stage 2: copy src row by row into the flat buffer.
//
// Errors:
//   - ErrNilMatrix when src is nil; ErrOutOfRange when the window does not fit.
//
// Complexity:
//   - Time O(h*w), Space O(1).
func (m *Dense) SetBlock(r0, c0 int, src *Dense) error {
	if src == nil {
		return denseErrorf(ctxSetBlock, r0, c0, ErrNilMatrix)
	}
	if r0 < 0 || c0 < 0 || r0+src.r > m.r || c0+src.c > m.c {
		return denseErrorf(ctxSetBlock, r0, c0, ErrOutOfRange)
	}

	var i, dst int
	for i = 0; i < src.r; i++ {
		dst = (r0+i)*m.c + c0
		copy(m.data[dst:dst+src.c], src.data[i*src.c:(i+1)*src.c])
	}

	return nil
}

// AddInPlace accumulates src into m element-wise (m += src).
// Shapes must match exactly. *Dense operands use a single flat loop; other
// implementations are read through At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) AddInPlace(src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(ctxAddIn, err)
	}
	if err := ValidateSameShape(m, src); err != nil {
		return matrixErrorf(ctxAddIn, err)
	}

	// Dense fast-path: single pass over both flat slices.
	if ds, ok := src.(*Dense); ok {
		for idx, v := range ds.data {
			m.data[idx] += v
		}

		return nil
	}

	// Generic fallback via At (bounds-safe; fixed i→j order).
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return matrixErrorf(ctxAddIn, err)
			}
			m.data[i*m.c+j] += v
		}
	}

	return nil
}
