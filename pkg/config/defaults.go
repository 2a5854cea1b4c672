package config

// File Permissions
const (
	// PermDirectory is the file permission for directories
	PermDirectory = 0755

	// PermConfigFile is the file permission for config files
	PermConfigFile = 0644
)

// Path Constants
const (
	// LocalConfigDir is the directory for textlens configuration,
	// resolved under the user's config root.
	LocalConfigDir = "textlens"

	// LocalConfigFile is the filename for the settings file
	LocalConfigFile = "textlens.yaml"
)

// Default Values
const (
	// DefaultDebounceMs is the clipboard watch debounce in milliseconds
	DefaultDebounceMs = 500
)
