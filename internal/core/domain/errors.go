package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// The messages for invalid input and division by zero are part of the
// tool contract surface returned to remote callers, which is why they
// read as user-facing sentences rather than conventional Go errors.
var (
	// ErrInvalidInput indicates a supplied operand is not a finite number.
	ErrInvalidInput = errors.New("must be a finite number")

	// ErrDivisionByZero indicates the divisor of a division call was zero.
	ErrDivisionByZero = errors.New("Division by zero is not allowed")

	// ErrUnknownOperation indicates an operation label outside the
	// supported set.
	ErrUnknownOperation = errors.New("unknown operation")
)
