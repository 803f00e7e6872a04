package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrColumnMissing   = errors.New("required column not found in input table")
	ErrEmptySample     = errors.New("no usable values in sample column")
	ErrUnsupportedFile = errors.New("unsupported input file type")

	// Interaction errors
	ErrCancelled = errors.New("cancelled by user")

	// Analysis errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrNoSignChange     = errors.New("objective does not change sign within the interval [0, 1]")
	ErrZeroReference    = errors.New("reference mean is zero")
	ErrBracketInvalid   = errors.New("invalid root bracket")
	ErrMaxIterations    = errors.New("root finder exceeded iteration limit")
)

// Error constructors with context
func NewColumnMissingError(column string) error {
	return fmt.Errorf("%w: %q", ErrColumnMissing, column)
}

func NewEmptySampleError(column string) error {
	return fmt.Errorf("%w: column %q", ErrEmptySample, column)
}

func NewUnsupportedFileError(path string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
}

// Error checking helpers
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

func IsSchemaError(err error) bool {
	return errors.Is(err, ErrColumnMissing) || errors.Is(err, ErrEmptySample) ||
		errors.Is(err, ErrUnsupportedFile)
}

func IsMarginNotFound(err error) bool {
	return errors.Is(err, ErrNoSignChange)
}
