package driven

// ConfigStore provides read access to application configuration.
// Keys use dot notation ("registry.primary_url"). Configuration is read once
// at start-up and never written back.
type ConfigStore interface {
	// Get retrieves a raw value by key and reports whether it was set.
	Get(key string) (any, bool)

	// GetString retrieves a string value.
	// Returns "" if the key is unset or not a string.
	GetString(key string) string

	// Path returns where the configuration was read from.
	Path() string
}
