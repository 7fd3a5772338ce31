// SPDX-License-Identifier: MIT

package blocked

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/tilemul/matrix"
)

const (
	opParse    = "ParseBlockConfig"
	opValidate = "BlockConfig.Validate"

	specSep = "x"
)

// BlockConfig is the tiling strategy of one blocked multiply.
//
//   - M: tile height over output rows (rows of A).
//   - N: tile width over output columns (columns of B).
//   - K: inner chunk size over the shared dimension. Zero means "same as M".
//
// BlockConfig is comparable and is used as the key of benchmark results.
type BlockConfig struct {
	M, N, K int
}

// Inner returns the effective inner chunk size (K, or M when K is zero).
func (c BlockConfig) Inner() int {
	if c.K == 0 {
		return c.M
	}

	return c.K
}

// Validate reports ErrInvalidBlockSize unless M > 0, N > 0 and K >= 0.
func (c BlockConfig) Validate() error {
	if c.M <= 0 || c.N <= 0 || c.K < 0 {
		return blockedErrorf(fmt.Sprintf("%s(%d,%d,%d)", opValidate, c.M, c.N, c.K), ErrInvalidBlockSize)
	}

	return nil
}

// String renders "MxN", or "MxNxK" when K is explicit.
func (c BlockConfig) String() string {
	if c.K == 0 {
		return strconv.Itoa(c.M) + specSep + strconv.Itoa(c.N)
	}

	return strconv.Itoa(c.M) + specSep + strconv.Itoa(c.N) + specSep + strconv.Itoa(c.K)
}

// MarshalText implements encoding.TextMarshaler using String.
func (c BlockConfig) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler using ParseBlockConfig.
func (c *BlockConfig) UnmarshalText(text []byte) error {
	parsed, err := ParseBlockConfig(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// ParseBlockConfig parses "M" (square tile), "MxN" or "MxNxK".
// Surrounding whitespace is ignored and the separator is case-insensitive.
//
// Errors:
//   - ErrBadBlockSpec for anything that is not 1–3 integers joined by "x".
//   - ErrInvalidBlockSize when the parsed values fail Validate.
func ParseBlockConfig(s string) (BlockConfig, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), specSep)
	if len(parts) == 0 || len(parts) > 3 {
		return BlockConfig{}, blockedErrorf(fmt.Sprintf("%s(%q)", opParse, s), ErrBadBlockSpec)
	}
	vals := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return BlockConfig{}, blockedErrorf(fmt.Sprintf("%s(%q)", opParse, s), ErrBadBlockSpec)
		}
		vals[i] = v
	}

	var cfg BlockConfig
	switch len(vals) {
	case 1:
		cfg = BlockConfig{M: vals[0], N: vals[0]}
	case 2:
		cfg = BlockConfig{M: vals[0], N: vals[1]}
	default:
		cfg = BlockConfig{M: vals[0], N: vals[1], K: vals[2]}
	}
	if err := cfg.Validate(); err != nil {
		return BlockConfig{}, blockedErrorf(opParse, err)
	}

	return cfg, nil
}

// Func is a multiply with its strategy already bound. reference.Multiply,
// reference.Naive and the result of Bind all satisfy it.
type Func func(a, b matrix.Matrix) (*matrix.Dense, error)
