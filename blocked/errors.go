// SPDX-License-Identifier: MIT

package blocked

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBlockSize indicates a non-positive tile height or width, or a negative
	// inner chunk size.
	ErrInvalidBlockSize = errors.New("blocked: block sizes must be > 0")

	// ErrBadBlockSpec indicates a block specification string that is not of the form
	// "M", "MxN" or "MxNxK".
	ErrBadBlockSpec = errors.New("blocked: malformed block spec")
)

// blockedErrorf wraps err with an operation tag, preserving it for errors.Is.
func blockedErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
