// Package domain defines the core quantity kinds and errors.
package domain

import "errors"

// Common domain errors used across the quantity kinds.
var (
	// ErrOverflow is returned when a canonical magnitude would not fit in its
	// integer representation. It is never returned for floating point kinds.
	ErrOverflow = errors.New("quantity overflow")

	// ErrUnknownUnit is returned when a unit or representation tag is not part
	// of its kind's fixed table.
	ErrUnknownUnit = errors.New("unknown unit")
)
