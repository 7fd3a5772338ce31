// SPDX-License-Identifier: MIT

package benchmark

import "fmt"

// benchErrorf wraps err with an operation tag, preserving it for errors.Is.
// The package defines no sentinels of its own: failures surface the
// matrix and blocked sentinels unchanged.
func benchErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
