package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for registry settings.
const (
	keyPrimaryURL   = "registry.primary_url"
	keySecondaryURL = "registry.secondary_url"
	keyDeepLinkBase = "registry.deep_link_base"
	keyUserAgent    = "registry.user_agent"
	keyTimeout      = "registry.timeout"
)

// SettingsService resolves registry settings from configuration.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// RegistrySettings returns the effective registry settings.
// Unset keys fall back to domain.DefaultRegistrySettings.
func (s *SettingsService) RegistrySettings() (domain.RegistrySettings, error) {
	defaults := domain.DefaultRegistrySettings()

	timeout, err := s.getDuration(keyTimeout, defaults.Timeout)
	if err != nil {
		return domain.RegistrySettings{}, err
	}

	settings := domain.RegistrySettings{
		PrimaryURL:   s.getString(keyPrimaryURL, defaults.PrimaryURL),
		SecondaryURL: s.getString(keySecondaryURL, defaults.SecondaryURL),
		DeepLinkBase: s.getString(keyDeepLinkBase, defaults.DeepLinkBase),
		UserAgent:    s.getString(keyUserAgent, defaults.UserAgent),
		Timeout:      timeout,
	}

	if err := settings.Validate(); err != nil {
		return domain.RegistrySettings{}, err
	}
	return settings, nil
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getDuration accepts a Go duration string ("45s") or a number of seconds.
func (s *SettingsService) getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	raw, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal, nil
	}

	switch v := raw.(type) {
	case string:
		if v == "" {
			return defaultVal, nil
		}
		if secs, err := strconv.Atoi(v); err == nil {
			return time.Duration(secs) * time.Second, nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", domain.ErrInvalidSettings, key, err)
		}
		return d, nil
	case int:
		return time.Duration(v) * time.Second, nil
	case int64:
		return time.Duration(v) * time.Second, nil
	case float64:
		return time.Duration(v * float64(time.Second)), nil
	default:
		return 0, fmt.Errorf("%w: %s: unsupported value %v", domain.ErrInvalidSettings, key, raw)
	}
}
