package driving

import (
	"github.com/mathop-labs/mathop-cli/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, with defaults applied.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetPort updates the MCP server port.
	SetPort(port int) error

	// SetVerbose updates the verbose logging flag.
	SetVerbose(verbose bool) error
}
