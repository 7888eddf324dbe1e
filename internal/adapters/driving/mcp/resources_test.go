package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathop-labs/mathop-cli/internal/core/domain"
)

func TestExtractOperation(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected domain.Operation
	}{
		{
			name:     "valid addition URI",
			uri:      "mathop://history/addition",
			expected: domain.OperationAddition,
		},
		{
			name:     "valid division URI",
			uri:      "mathop://history/division",
			expected: domain.OperationDivision,
		},
		{
			name:     "invalid prefix",
			uri:      "file://history/addition",
			expected: domain.Operation(""),
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: domain.Operation(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractOperation(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleHistoryResource(t *testing.T) {
	ctx := context.Background()
	stamp := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	t.Run("returns full history with entry IDs", func(t *testing.T) {
		mockCalc := &mockCalculatorService{
			history: []domain.OperationResult{
				{ID: "op-1", Result: 5, Operation: domain.OperationAddition, Timestamp: stamp},
				{ID: "op-2", Result: 6, Operation: domain.OperationSubtraction, Timestamp: stamp},
			},
		}

		server, err := NewServer(&Ports{Calculator: mockCalc})
		require.NoError(t, err)

		req := makeReadResourceRequest("mathop://history")
		result, err := server.handleHistoryResource(ctx, req)
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var entries []domain.OperationResult
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "op-1", entries[0].ID)
		assert.Equal(t, domain.OperationAddition, entries[0].Operation)
		assert.Equal(t, "op-2", entries[1].ID)
	})

	t.Run("empty history marshals as empty array", func(t *testing.T) {
		mockCalc := &mockCalculatorService{
			history: []domain.OperationResult{},
		}

		server, err := NewServer(&Ports{Calculator: mockCalc})
		require.NoError(t, err)

		req := makeReadResourceRequest("mathop://history")
		result, err := server.handleHistoryResource(ctx, req)
		require.NoError(t, err)
		assert.JSONEq(t, "[]", result.Contents[0].Text)
	})

	t.Run("service failure surfaces", func(t *testing.T) {
		mockCalc := &mockCalculatorService{err: errors.New("boom")}
		server, err := NewServer(&Ports{Calculator: mockCalc})
		require.NoError(t, err)

		req := makeReadResourceRequest("mathop://history")
		_, err = server.handleHistoryResource(ctx, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading history")
	})
}

func TestServer_handleHistoryByOperationResource(t *testing.T) {
	ctx := context.Background()
	stamp := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	history := []domain.OperationResult{
		{ID: "op-1", Result: 2, Operation: domain.OperationAddition, Timestamp: stamp},
		{ID: "op-2", Result: 4, Operation: domain.OperationMultiplication, Timestamp: stamp},
		{ID: "op-3", Result: 7, Operation: domain.OperationAddition, Timestamp: stamp},
	}

	t.Run("filters to the requested operation", func(t *testing.T) {
		mockCalc := &mockCalculatorService{history: history}
		server, err := NewServer(&Ports{Calculator: mockCalc})
		require.NoError(t, err)

		req := makeReadResourceRequest("mathop://history/addition")
		result, err := server.handleHistoryByOperationResource(ctx, req)
		require.NoError(t, err)

		var entries []domain.OperationResult
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "op-1", entries[0].ID)
		assert.Equal(t, "op-3", entries[1].ID)
	})

	t.Run("unknown operation is not found", func(t *testing.T) {
		mockCalc := &mockCalculatorService{history: history}
		server, err := NewServer(&Ports{Calculator: mockCalc})
		require.NoError(t, err)

		req := makeReadResourceRequest("mathop://history/modulo")
		_, err = server.handleHistoryByOperationResource(ctx, req)
		require.Error(t, err)
	})

	t.Run("no matches yields empty array", func(t *testing.T) {
		mockCalc := &mockCalculatorService{history: history}
		server, err := NewServer(&Ports{Calculator: mockCalc})
		require.NoError(t, err)

		req := makeReadResourceRequest("mathop://history/division")
		result, err := server.handleHistoryByOperationResource(ctx, req)
		require.NoError(t, err)
		assert.JSONEq(t, "[]", result.Contents[0].Text)
	})
}
