// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput marks degenerate input without a single candidate pair.
	// It is a warning: extraction logs it and returns an empty EdgeSet.
	ErrEmptyInput = errors.New("network: empty input")

	// ErrNilSource indicates a nil CorrelationMatrix was handed to an extractor.
	ErrNilSource = errors.New("network: nil source")

	// ErrUnknownInteraction indicates an interaction label that is neither
	// "copresence" nor "mutualExclusion".
	ErrUnknownInteraction = errors.New("network: unknown interaction")
)

// networkErrorf wraps err with an operation tag.
func networkErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
