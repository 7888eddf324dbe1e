package mcp

import (
	"github.com/mathop-labs/mathop-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator performs validated arithmetic and records results.
	Calculator driving.CalculatorService

	// Settings exposes application settings. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	// Settings is optional
	return nil
}
