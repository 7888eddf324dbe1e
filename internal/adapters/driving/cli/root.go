// Package cli implements the cobra command tree for mathop.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mathop-labs/mathop-cli/internal/adapters/driven/config/file"
	"github.com/mathop-labs/mathop-cli/internal/core/ports/driving"
	"github.com/mathop-labs/mathop-cli/internal/core/services"
	"github.com/mathop-labs/mathop-cli/internal/logger"
)

// version is the CLI version, overridable at build time.
var version = "0.1.0"

// Package-level services shared by the commands. Wired once in
// initServices; tests may inject their own.
var (
	verboseFlag bool

	configStore       *file.ConfigStore
	calculatorService driving.CalculatorService
	settingsService   driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "mathop",
	Short: "Validated arithmetic operations over MCP",
	Long: `mathop performs validated arithmetic (addition, subtraction,
multiplication, division) and records every successful result in an
in-memory operation history.

The primary surface is the MCP server (mathop mcp serve); the calc
command runs computations directly from the shell.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// initServices wires the service graph before any command runs.
// Already-set services (from tests) are left alone.
func initServices(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		store, err := file.NewConfigStore("")
		if err != nil {
			return err
		}
		configStore = store
	}

	if settingsService == nil {
		settingsService = services.NewSettingsService(configStore)
	}

	if calculatorService == nil {
		calculatorService = services.NewCalculatorService()
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	// The flag wins over the configured default.
	logger.SetVerbose(verboseFlag || settings.Logging.Verbose)
	logger.Debug("config: %s", configStore.Path())

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
