package driven

import "github.com/custodia-labs/gitlab-xsearch/internal/core/domain"

// ConfigStore persists user defaults between runs.
// Implementations handle the file format and validate values.
type ConfigStore interface {
	// Settings returns the currently loaded settings.
	Settings() domain.Settings

	// Get retrieves the string form of a key.
	// Returns false if the key is unset or unknown.
	Get(key string) (string, bool)

	// Set validates and stores a value, persisting immediately.
	// An empty value removes the key.
	Set(key, value string) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
