// Package file provides a file-based configuration store using TOML.
// Configuration lives at ~/.mathop/config.toml; nested tables are
// flattened into dot-notation keys. A Watcher can reload the store
// when the file changes on disk.
package file
