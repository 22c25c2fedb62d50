// Package errs defines the error values shared by all meshkit packages.
//
// Every argument error satisfies errors.Is(err, ErrInvalidArgument) and every
// storage or parse error satisfies errors.Is(err, ErrIO).
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for shape mismatches, degenerate sizes and
	// non-positive periods.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO is returned for unreadable or missing files and malformed tables.
	ErrIO = errors.New("i/o error")
)

// ShapeMismatchError indicates that two inputs which must agree in length or
// shape do not.
type ShapeMismatchError struct {
	What     string
	Expected int
	Actual   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: expected %d, got %d", e.What, e.Expected, e.Actual)
}

// Is reports ErrInvalidArgument.
func (e *ShapeMismatchError) Is(target error) bool { return target == ErrInvalidArgument }

// InvalidValueError indicates a parameter outside its allowed domain.
type InvalidValueError struct {
	Name   string
	Value  any
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Name, e.Value, e.Reason)
}

// Is reports ErrInvalidArgument.
func (e *InvalidValueError) Is(target error) bool { return target == ErrInvalidArgument }

// CheckCount returns an error unless n >= minimum.
func CheckCount(name string, n, minimum int) error {
	if n < minimum {
		return &InvalidValueError{Name: name, Value: n, Reason: fmt.Sprintf("must be at least %d", minimum)}
	}
	return nil
}

// CheckPositive returns an error unless v > 0. NaN is rejected.
func CheckPositive(name string, v float64) error {
	if !(v > 0) {
		return &InvalidValueError{Name: name, Value: v, Reason: "must be positive"}
	}
	return nil
}

// CheckSameLength returns an error unless a and b have equal lengths.
func CheckSameLength(what string, a, b int) error {
	if a != b {
		return &ShapeMismatchError{What: what, Expected: a, Actual: b}
	}
	return nil
}

// IO wraps cause so that it satisfies both errors.Is(err, ErrIO) and
// errors.Is(err, cause).
func IO(op, path string, cause error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, cause)
}
