package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

// mockConfigStore implements driven.ConfigStore over a map.
type mockConfigStore struct {
	data map[string]any
}

func newMockConfigStore(data map[string]any) *mockConfigStore {
	if data == nil {
		data = map[string]any{}
	}
	return &mockConfigStore{data: data}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.data[key].(string)
	return s
}

func (m *mockConfigStore) Path() string { return "" }

func TestSettingsService_Defaults(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore(nil))

	settings, err := svc.RegistrySettings()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRegistrySettings(), settings)
}

func TestSettingsService_Overrides(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore(map[string]any{
		"registry.primary_url":    "http://localhost:8080/trials",
		"registry.secondary_url":  "http://localhost:8081/full_studies",
		"registry.deep_link_base": "http://localhost:8080/Trial2.aspx",
		"registry.user_agent":     "test-agent/0.1",
		"registry.timeout":        "5s",
	}))

	settings, err := svc.RegistrySettings()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/trials", settings.PrimaryURL)
	assert.Equal(t, "http://localhost:8081/full_studies", settings.SecondaryURL)
	assert.Equal(t, "http://localhost:8080/Trial2.aspx", settings.DeepLinkBase)
	assert.Equal(t, "test-agent/0.1", settings.UserAgent)
	assert.Equal(t, 5*time.Second, settings.Timeout)
}

func TestSettingsService_TimeoutForms(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected time.Duration
	}{
		{"duration string", "1m30s", 90 * time.Second},
		{"seconds string", "45", 45 * time.Second},
		{"int64 from toml", int64(12), 12 * time.Second},
		{"int from yaml", 7, 7 * time.Second},
		{"float", 1.5, 1500 * time.Millisecond},
		{"empty string uses default", "", domain.DefaultTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSettingsService(newMockConfigStore(map[string]any{"registry.timeout": tt.value}))

			settings, err := svc.RegistrySettings()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, settings.Timeout)
		})
	}
}

func TestSettingsService_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{"bad duration", map[string]any{"registry.timeout": "soon"}},
		{"negative timeout", map[string]any{"registry.timeout": "-1s"}},
		{"relative url", map[string]any{"registry.primary_url": "trials"}},
		{"unsupported type", map[string]any{"registry.timeout": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSettingsService(newMockConfigStore(tt.data))

			_, err := svc.RegistrySettings()

			assert.ErrorIs(t, err, domain.ErrInvalidSettings)
		})
	}
}
