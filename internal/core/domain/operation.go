package domain

import (
	"fmt"
	"math"
	"time"
)

// Operation identifies a supported arithmetic operation.
type Operation string

// Supported operations.
const (
	OperationAddition       Operation = "addition"
	OperationSubtraction    Operation = "subtraction"
	OperationMultiplication Operation = "multiplication"
	OperationDivision       Operation = "division"
)

// AllOperations returns every supported operation.
func AllOperations() []Operation {
	return []Operation{
		OperationAddition,
		OperationSubtraction,
		OperationMultiplication,
		OperationDivision,
	}
}

// IsValid returns true if the operation is supported.
func (o Operation) IsValid() bool {
	switch o {
	case OperationAddition, OperationSubtraction, OperationMultiplication, OperationDivision:
		return true
	default:
		return false
	}
}

// String returns the operation label as recorded in history.
func (o Operation) String() string {
	return string(o)
}

// Title returns the capitalised operation name used in error messages,
// e.g. "Division failed: ...".
func (o Operation) Title() string {
	switch o {
	case OperationAddition:
		return "Addition"
	case OperationSubtraction:
		return "Subtraction"
	case OperationMultiplication:
		return "Multiplication"
	case OperationDivision:
		return "Division"
	default:
		return "Operation"
	}
}

// Apply computes the operation over two operands. Operands must already
// be validated as finite; Apply only guards the zero divisor.
func (o Operation) Apply(num1, num2 float64) (float64, error) {
	switch o {
	case OperationAddition:
		return num1 + num2, nil
	case OperationSubtraction:
		return num1 - num2, nil
	case OperationMultiplication:
		return num1 * num2, nil
	case OperationDivision:
		if num2 == 0 {
			return 0, ErrDivisionByZero
		}
		return num1 / num2, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownOperation, o)
	}
}

// ValidateOperand checks that a single operand is a finite number.
// The field name is included in the error so callers know which
// argument was rejected.
func ValidateOperand(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s %w", field, ErrInvalidInput)
	}
	return nil
}

// OperationResult is a single recorded computation outcome.
// Immutable once created.
type OperationResult struct {
	// ID uniquely identifies the history entry.
	ID string `json:"id"`

	// Result is the computed value.
	Result float64 `json:"result"`

	// Operation is the label of the operation performed.
	Operation Operation `json:"operation"`

	// Timestamp is the wall-clock time of the computation.
	Timestamp time.Time `json:"timestamp"`
}
