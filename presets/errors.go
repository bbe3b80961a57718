// SPDX-License-Identifier: MIT

package presets

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMethod indicates a method tag outside the supported tools.
	ErrUnknownMethod = errors.New("presets: unknown method")

	// ErrMissingColumn indicates an LSA row shorter than the column the
	// chosen sub-score lives in.
	ErrMissingColumn = errors.New("presets: missing column")
)

// presetErrorf wraps err with an operation tag.
func presetErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
