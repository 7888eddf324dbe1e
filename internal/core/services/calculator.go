package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mathop-labs/mathop-cli/internal/core/domain"
	"github.com/mathop-labs/mathop-cli/internal/core/ports/driving"
	"github.com/mathop-labs/mathop-cli/internal/logger"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// CalculatorService performs validated arithmetic and records results.
//
// The history slice is the only shared mutable state; the mutex covers
// compute+append so concurrent tool calls cannot interleave an append
// with a read and produce a torn or duplicated entry. History lives in
// process memory only and is discarded on exit.
type CalculatorService struct {
	mu      sync.Mutex
	history []domain.OperationResult

	now   func() time.Time
	newID func() string
}

// NewCalculatorService creates a new calculator service with an empty
// history.
func NewCalculatorService() *CalculatorService {
	return &CalculatorService{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Add computes num1 + num2.
func (s *CalculatorService) Add(ctx context.Context, num1, num2 float64) (domain.OperationResult, error) {
	return s.perform(ctx, domain.OperationAddition, num1, num2)
}

// Subtract computes num1 - num2.
func (s *CalculatorService) Subtract(ctx context.Context, num1, num2 float64) (domain.OperationResult, error) {
	return s.perform(ctx, domain.OperationSubtraction, num1, num2)
}

// Multiply computes num1 * num2.
func (s *CalculatorService) Multiply(ctx context.Context, num1, num2 float64) (domain.OperationResult, error) {
	return s.perform(ctx, domain.OperationMultiplication, num1, num2)
}

// Divide computes num1 / num2. Fails if num2 is zero.
func (s *CalculatorService) Divide(ctx context.Context, num1, num2 float64) (domain.OperationResult, error) {
	return s.perform(ctx, domain.OperationDivision, num1, num2)
}

// History returns a copy of all recorded results in call order.
func (s *CalculatorService) History(_ context.Context) ([]domain.OperationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.OperationResult, len(s.history))
	copy(out, s.history)
	return out, nil
}

// Count returns the number of recorded results.
func (s *CalculatorService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// perform runs validate -> compute -> record -> return for one
// operation. Failures return before anything is appended.
func (s *CalculatorService) perform(
	_ context.Context, op domain.Operation, num1, num2 float64,
) (domain.OperationResult, error) {
	logger.Debug("%s: num1=%v num2=%v", op, num1, num2)

	if err := domain.ValidateOperand("num1", num1); err != nil {
		return domain.OperationResult{}, fmt.Errorf("%s failed: %w", op.Title(), err)
	}
	if err := domain.ValidateOperand("num2", num2); err != nil {
		return domain.OperationResult{}, fmt.Errorf("%s failed: %w", op.Title(), err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := op.Apply(num1, num2)
	if err != nil {
		return domain.OperationResult{}, fmt.Errorf("%s failed: %w", op.Title(), err)
	}

	result := domain.OperationResult{
		ID:        s.newID(),
		Result:    value,
		Operation: op,
		Timestamp: s.now(),
	}
	s.history = append(s.history, result)

	logger.Debug("%s: result=%v history=%d", op, value, len(s.history))
	return result, nil
}
