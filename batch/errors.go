// SPDX-License-Identifier: MIT
// Package batch: sentinel error set.

package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by Decode when the document holds no items.
	ErrEmptyInput = errors.New("batch: empty input")

	// ErrInvalidItem is returned when an item carries a NaN or ±Inf coefficient.
	ErrInvalidItem = errors.New("batch: invalid item")
)

// Operation tags for error wrapping.
const (
	opClassify = "Classify"
	opDecode   = "Decode"
	opEncode   = "Encode"
)

// batchErrorf wraps err with an operation tag, preserving it for errors.Is.
func batchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// itemError wraps a validation failure of item i with ErrInvalidItem while
// keeping the underlying cause matchable.
func itemError(i int, name string, cause error) error {
	if name == "" {
		return fmt.Errorf("item %d: %w: %w", i, ErrInvalidItem, cause)
	}

	return fmt.Errorf("item %d (%s): %w: %w", i, name, ErrInvalidItem, cause)
}
