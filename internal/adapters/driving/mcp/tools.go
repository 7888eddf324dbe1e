package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mathop-labs/mathop-cli/internal/core/domain"
)

// OperationInput is the input schema shared by all arithmetic tools.
type OperationInput struct {
	Num1 float64 `json:"num1" jsonschema:"the first operand"`
	Num2 float64 `json:"num2" jsonschema:"the second operand"`
}

// HistoryInput is the (empty) input schema for the history tool.
type HistoryInput struct{}

// OperationOutput is the output schema for a single computation.
type OperationOutput struct {
	Result    float64 `json:"result"`
	Operation string  `json:"operation"`
	Timestamp string  `json:"timestamp"`
}

// HistoryOutput is the output schema for the history tool.
type HistoryOutput struct {
	Operations []OperationOutput `json:"operations"`
}

// operationOutput converts a domain result to its wire form.
// Timestamps are ISO-8601 strings.
func operationOutput(result domain.OperationResult) OperationOutput {
	return OperationOutput{
		Result:    result.Result,
		Operation: result.Operation.String(),
		Timestamp: result.Timestamp.Format(time.RFC3339Nano),
	}
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_numbers",
		Description: "Add two numbers",
	}, s.handleAdd)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "subtract_numbers",
		Description: "Subtract the second number from the first number",
	}, s.handleSubtract)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "multiply_numbers",
		Description: "Multiply two numbers",
	}, s.handleMultiply)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "divide_numbers",
		Description: "Divide the first number by the second number (divisor cannot be zero)",
	}, s.handleDivide)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_math_history",
		Description: "Retrieve the history of all performed mathematical operations",
	}, s.handleHistory)
}

// handleAdd handles the add_numbers tool invocation.
func (s *Server) handleAdd(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OperationInput,
) (*mcp.CallToolResult, OperationOutput, error) {
	result, err := s.ports.Calculator.Add(ctx, input.Num1, input.Num2)
	if err != nil {
		return nil, OperationOutput{}, err
	}
	return nil, operationOutput(result), nil
}

// handleSubtract handles the subtract_numbers tool invocation.
func (s *Server) handleSubtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OperationInput,
) (*mcp.CallToolResult, OperationOutput, error) {
	result, err := s.ports.Calculator.Subtract(ctx, input.Num1, input.Num2)
	if err != nil {
		return nil, OperationOutput{}, err
	}
	return nil, operationOutput(result), nil
}

// handleMultiply handles the multiply_numbers tool invocation.
func (s *Server) handleMultiply(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OperationInput,
) (*mcp.CallToolResult, OperationOutput, error) {
	result, err := s.ports.Calculator.Multiply(ctx, input.Num1, input.Num2)
	if err != nil {
		return nil, OperationOutput{}, err
	}
	return nil, operationOutput(result), nil
}

// handleDivide handles the divide_numbers tool invocation.
func (s *Server) handleDivide(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OperationInput,
) (*mcp.CallToolResult, OperationOutput, error) {
	result, err := s.ports.Calculator.Divide(ctx, input.Num1, input.Num2)
	if err != nil {
		return nil, OperationOutput{}, err
	}
	return nil, operationOutput(result), nil
}

// handleHistory handles the get_math_history tool invocation.
func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	history, err := s.ports.Calculator.History(ctx)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	output := HistoryOutput{
		Operations: make([]OperationOutput, len(history)),
	}
	for i := range history {
		output.Operations[i] = operationOutput(history[i])
	}

	return nil, output, nil
}
