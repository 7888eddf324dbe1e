package mcp

import (
	"context"

	"github.com/mathop-labs/mathop-cli/internal/core/domain"
)

// mockCalculatorService is a mock implementation of driving.CalculatorService.
type mockCalculatorService struct {
	result  domain.OperationResult
	history []domain.OperationResult
	err     error

	calls []string
}

func (m *mockCalculatorService) Add(_ context.Context, _, _ float64) (domain.OperationResult, error) {
	m.calls = append(m.calls, "add")
	return m.result, m.err
}

func (m *mockCalculatorService) Subtract(_ context.Context, _, _ float64) (domain.OperationResult, error) {
	m.calls = append(m.calls, "subtract")
	return m.result, m.err
}

func (m *mockCalculatorService) Multiply(_ context.Context, _, _ float64) (domain.OperationResult, error) {
	m.calls = append(m.calls, "multiply")
	return m.result, m.err
}

func (m *mockCalculatorService) Divide(_ context.Context, _, _ float64) (domain.OperationResult, error) {
	m.calls = append(m.calls, "divide")
	return m.result, m.err
}

func (m *mockCalculatorService) History(_ context.Context) ([]domain.OperationResult, error) {
	m.calls = append(m.calls, "history")
	return m.history, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }
func (m *mockSettingsService) SetPort(_ int) error              { return m.err }
func (m *mockSettingsService) SetVerbose(_ bool) error          { return m.err }
