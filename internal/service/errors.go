// Package service provides application-level use cases for quantities.
package service

import (
	"errors"
	"fmt"
)

// Common service errors. Callers check for them with errors.Is.
var (
	// ErrNilDistance is returned when a nil representation is passed where a
	// distance is required.
	ErrNilDistance = errors.New("distance cannot be nil")

	// ErrNilAngle is returned when a nil representation is passed where an
	// angle is required.
	ErrNilAngle = errors.New("angle cannot be nil")
)

// MeasureServiceError is a custom error type for measure service errors.
type MeasureServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for MeasureServiceError.
func (e *MeasureServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("measure service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("measure service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *MeasureServiceError) Unwrap() error {
	return e.Err
}

// NewMeasureServiceError creates a new MeasureServiceError.
func NewMeasureServiceError(operation, message string, err error) *MeasureServiceError {
	return &MeasureServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
