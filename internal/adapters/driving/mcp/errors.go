// Package mcp provides an MCP (Model Context Protocol) server adapter for mathop.
// It exposes validated arithmetic operations and the operation history
// as tools that AI assistants like Claude can invoke.
package mcp

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("mcp: calculator service is required")
