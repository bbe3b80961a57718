// SPDX-License-Identifier: MIT

package threshold

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned at policy construction (before any matrix
// scan) for an unknown strategy, a non-finite or negative significance
// level, a zero level under a one-tailed strategy, or options that do not
// apply to the chosen strategy. It is also returned by Select when a Fixed
// policy meets a matrix without p-values.
var ErrInvalidConfig = errors.New("threshold: invalid configuration")

// thresholdErrorf wraps err with an operation tag.
func thresholdErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
