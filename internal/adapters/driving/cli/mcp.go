package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathop-labs/mathop-cli/internal/adapters/driven/config/file"
	"github.com/mathop-labs/mathop-cli/internal/adapters/driving/mcp"
	"github.com/mathop-labs/mathop-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing the arithmetic tools
(add_numbers, subtract_numbers, multiply_numbers, divide_numbers) and
the get_math_history query.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  mathop mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  mathop mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "mathop": {
        "command": "/path/to/mathop",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	// Fall back to the configured default port when the flag is unset.
	if !cmd.Flags().Changed("port") && settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return err
		}
		port = settings.Server.Port
	}

	ports := &mcp.Ports{
		Calculator: calculatorService,
		Settings:   settingsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	// Re-apply logging settings when the config file changes on disk.
	if configStore != nil {
		watcher, err := file.NewWatcher(configStore, func() {
			if settings, err := settingsService.Get(); err == nil {
				logger.SetVerbose(verboseFlag || settings.Logging.Verbose)
			}
		})
		if err != nil {
			logger.Warn("config watcher unavailable: %v", err)
		} else {
			go watcher.Run(ctx) //nolint:errcheck
		}
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
