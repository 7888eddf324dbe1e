package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mathop-labs/mathop-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for mathop resources.
	uriScheme = "mathop://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the full operation history.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "All recorded operation results in call order",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	// Template for history filtered to one operation label.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{operation}",
		Name:        "history-by-operation",
		Description: "Recorded results for a single operation (addition, subtraction, multiplication, division)",
		MIMEType:    "application/json",
	}, s.handleHistoryByOperationResource)
}

// handleHistoryResource returns the full operation history, including
// entry IDs that the tool output schema omits.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	history, err := s.ports.Calculator.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	return historyContents(req.Params.URI, history)
}

// handleHistoryByOperationResource returns history entries for one
// operation label.
func (s *Server) handleHistoryByOperationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract the label from URI: mathop://history/{operation}
	op := extractOperation(req.Params.URI)
	if !op.IsValid() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	history, err := s.ports.Calculator.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	filtered := make([]domain.OperationResult, 0, len(history))
	for _, entry := range history {
		if entry.Operation == op {
			filtered = append(filtered, entry)
		}
	}

	return historyContents(req.Params.URI, filtered)
}

// historyContents marshals history entries into a resource result.
func historyContents(uri string, history []domain.OperationResult) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractOperation extracts the operation label from a URI like
// mathop://history/{operation}.
func extractOperation(uri string) domain.Operation {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return domain.Operation("")
	}

	return domain.Operation(strings.TrimPrefix(uri, prefix))
}
