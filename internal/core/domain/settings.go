package domain

// ServerSettings configures the MCP transport.
type ServerSettings struct {
	// Port is the HTTP port for the MCP server. 0 means stdio only.
	Port int
}

// LoggingSettings configures diagnostic output.
type LoggingSettings struct {
	// Verbose enables debug logging to stderr.
	Verbose bool
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Server  ServerSettings
	Logging LoggingSettings
}

// DefaultAppSettings returns the defaults used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Server:  ServerSettings{Port: 0},
		Logging: LoggingSettings{Verbose: false},
	}
}
