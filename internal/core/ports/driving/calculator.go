package driving

import (
	"context"

	"github.com/mathop-labs/mathop-cli/internal/core/domain"
)

// CalculatorService performs validated arithmetic and records results.
//
// Every arithmetic method validates both operands as finite before
// computing, and appends the outcome to the operation history only on
// success. Failed calls leave the history untouched.
type CalculatorService interface {
	// Add computes num1 + num2.
	Add(ctx context.Context, num1, num2 float64) (domain.OperationResult, error)

	// Subtract computes num1 - num2.
	Subtract(ctx context.Context, num1, num2 float64) (domain.OperationResult, error)

	// Multiply computes num1 * num2.
	Multiply(ctx context.Context, num1, num2 float64) (domain.OperationResult, error)

	// Divide computes num1 / num2. Fails if num2 is zero.
	Divide(ctx context.Context, num1, num2 float64) (domain.OperationResult, error)

	// History returns all successful results in call order. Never fails
	// beyond the error slot required for transport symmetry.
	History(ctx context.Context) ([]domain.OperationResult, error)
}
