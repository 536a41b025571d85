package vecunits

import (
	"fmt"
)

// ErrDimensionMismatch indicates that a serialized axis unit belongs to a
// different dimension than the axis it is decoded into.
//
// In-process arithmetic never produces this error; mixing dimensions there
// does not compile. It only exists at the Record boundary where units
// arrive as data.
type ErrDimensionMismatch struct {
	Axis     int
	Expected string
	Actual   string
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("axis %d: dimension mismatch: expected %s, got %s", e.Axis, e.Expected, e.Actual)
}

// ErrUnitMismatch indicates that a serialized axis unit differs from the
// unit of the target axis when an exact match is required.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrUnitMismatch struct {
	Axis     int
	Expected string
	Actual   string
	cause    error
}

func (e *ErrUnitMismatch) Error() string {
	return fmt.Sprintf("axis %d: unit mismatch: expected %s, got %s", e.Axis, e.Expected, e.Actual)
}

func (e *ErrUnitMismatch) Unwrap() error { return e.cause }
