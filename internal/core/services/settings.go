package services

import (
	"fmt"

	"github.com/mathop-labs/mathop-cli/internal/core/domain"
	"github.com/mathop-labs/mathop-cli/internal/core/ports/driven"
	"github.com/mathop-labs/mathop-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyServerPort     = "mcp.port"
	keyLoggingVerbose = "logging.verbose"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, with defaults applied.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()

	if _, exists := s.configStore.Get(keyServerPort); exists {
		settings.Server.Port = s.configStore.GetInt(keyServerPort)
	}
	if _, exists := s.configStore.Get(keyLoggingVerbose); exists {
		settings.Logging.Verbose = s.configStore.GetBool(keyLoggingVerbose)
	}

	return &settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyServerPort, settings.Server.Port); err != nil {
		return fmt.Errorf("save mcp port: %w", err)
	}
	if err := s.configStore.Set(keyLoggingVerbose, settings.Logging.Verbose); err != nil {
		return fmt.Errorf("save logging verbose: %w", err)
	}
	return nil
}

// SetPort updates the MCP server port.
func (s *SettingsService) SetPort(port int) error {
	if port < 0 || port > 65535 {
		return fmt.Errorf("invalid port: %d", port)
	}
	return s.configStore.Set(keyServerPort, port)
}

// SetVerbose updates the verbose logging flag.
func (s *SettingsService) SetVerbose(verbose bool) error {
	return s.configStore.Set(keyLoggingVerbose, verbose)
}
