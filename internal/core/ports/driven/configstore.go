package driven

// ConfigStore provides persistent key-value configuration storage.
// Keys use dot notation, e.g. "mcp.port" or "logging.verbose".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetInt retrieves an integer configuration value.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	GetBool(key string) bool

	// Set stores a configuration value and persists immediately.
	Set(key string, value any) error

	// Load reads configuration from the backing store.
	Load() error

	// Path returns the location of the backing store, for diagnostics.
	Path() string
}
