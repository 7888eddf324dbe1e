package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change configuration",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print current settings",
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update a setting",
	Long: `Updates a setting in the config file.

Keys:
  port     default HTTP port for 'mcp serve' (0 = stdio)
  verbose  enable verbose logging (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsGet(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	cmd.Printf("port:    %d\n", settings.Server.Port)
	cmd.Printf("verbose: %t\n", settings.Logging.Verbose)
	if configStore != nil {
		cmd.Printf("config:  %s\n", configStore.Path())
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	switch key {
	case "port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid port %q: %w", value, err)
		}
		if err := settingsService.SetPort(port); err != nil {
			return err
		}

	case "verbose":
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		if err := settingsService.SetVerbose(verbose); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown setting %q (want port or verbose)", key)
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}
