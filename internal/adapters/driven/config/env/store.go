// Package env layers environment variables over another driven.ConfigStore.
//
// Keys map to variables by replacing dots with underscores and adding the
// CLINICAL_TRIALS_ prefix, so "registry.primary_url" reads
// CLINICAL_TRIALS_REGISTRY_PRIMARY_URL.
package env

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driven"
)

// Prefix is prepended to every environment variable name.
const Prefix = "CLINICAL_TRIALS"

// Ensure Store implements the interface.
var _ driven.ConfigStore = (*Store)(nil)

// Store reads a key from the environment first and falls back to base.
type Store struct {
	v    *viper.Viper
	base driven.ConfigStore
}

// NewStore wraps base with environment overrides.
func NewStore(base driven.ConfigStore) *Store {
	v := viper.New()
	v.SetEnvPrefix(Prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Store{v: v, base: base}
}

// Get retrieves a value, preferring the environment.
func (s *Store) Get(key string) (any, bool) {
	if s.v.IsSet(key) {
		return s.v.Get(key), true
	}
	return s.base.Get(key)
}

// GetString retrieves a string value, preferring the environment.
func (s *Store) GetString(key string) string {
	if s.v.IsSet(key) {
		return s.v.GetString(key)
	}
	return s.base.GetString(key)
}

// Path returns the underlying store's path.
func (s *Store) Path() string {
	return s.base.Path()
}
