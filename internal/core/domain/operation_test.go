package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOperation_IsValid tests operation label validation
func TestOperation_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		op    Operation
		valid bool
	}{
		{"addition", OperationAddition, true},
		{"subtraction", OperationSubtraction, true},
		{"multiplication", OperationMultiplication, true},
		{"division", OperationDivision, true},
		{"empty", Operation(""), false},
		{"unknown", Operation("modulo"), false},
		{"wrong case", Operation("Addition"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.op.IsValid())
		})
	}
}

// TestOperation_Title tests the error-prefix form of each operation
func TestOperation_Title(t *testing.T) {
	assert.Equal(t, "Addition", OperationAddition.Title())
	assert.Equal(t, "Subtraction", OperationSubtraction.Title())
	assert.Equal(t, "Multiplication", OperationMultiplication.Title())
	assert.Equal(t, "Division", OperationDivision.Title())
	assert.Equal(t, "Operation", Operation("modulo").Title())
}

// TestOperation_Apply tests the arithmetic semantics
func TestOperation_Apply(t *testing.T) {
	tests := []struct {
		name     string
		op       Operation
		num1     float64
		num2     float64
		expected float64
	}{
		{"addition", OperationAddition, 2, 3, 5},
		{"addition negative", OperationAddition, -2, 3, 1},
		{"subtraction", OperationSubtraction, 10, 4, 6},
		{"subtraction below zero", OperationSubtraction, 4, 10, -6},
		{"multiplication", OperationMultiplication, 3, 0, 0},
		{"multiplication fractional", OperationMultiplication, 2.5, 4, 10},
		{"division", OperationDivision, 10, 4, 2.5},
		{"division negative divisor", OperationDivision, 10, -2, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.op.Apply(tt.num1, tt.num2)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestOperation_Apply_DivisionByZero tests the zero-divisor guard
func TestOperation_Apply_DivisionByZero(t *testing.T) {
	_, err := OperationDivision.Apply(10, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	// Negative zero is still zero.
	_, err = OperationDivision.Apply(1, math.Copysign(0, -1))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

// TestOperation_Apply_Unknown tests unknown operation labels
func TestOperation_Apply_Unknown(t *testing.T) {
	_, err := Operation("modulo").Apply(1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Contains(t, err.Error(), "modulo")
}

// TestValidateOperand tests finite-number validation
func TestValidateOperand(t *testing.T) {
	t.Run("finite values pass", func(t *testing.T) {
		assert.NoError(t, ValidateOperand("num1", 0))
		assert.NoError(t, ValidateOperand("num1", -12.5))
		assert.NoError(t, ValidateOperand("num2", math.MaxFloat64))
	})

	t.Run("NaN is rejected with field name", func(t *testing.T) {
		err := ValidateOperand("num1", math.NaN())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "num1")
	})

	t.Run("infinity is rejected with field name", func(t *testing.T) {
		err := ValidateOperand("num2", math.Inf(1))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "num2")

		err = ValidateOperand("num2", math.Inf(-1))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

// TestAllOperations tests the enumeration of supported operations
func TestAllOperations(t *testing.T) {
	ops := AllOperations()
	assert.Len(t, ops, 4)
	for _, op := range ops {
		assert.True(t, op.IsValid())
	}
}
