package domain

import (
	"fmt"
	"net/url"
	"time"
)

// Registry endpoint defaults.
const (
	DefaultPrimaryURL   = "https://trialsearch.who.int/api/v1/trials"
	DefaultSecondaryURL = "https://clinicaltrials.gov/api/query/full_studies"
	DefaultDeepLinkBase = "https://trialsearch.who.int/Trial2.aspx"
	DefaultUserAgent    = "clinical-trials-mcp/1.0"
	DefaultTimeout      = 30 * time.Second
)

// RegistrySettings configures how the registries are reached.
// It is resolved once at start-up and passed by value afterwards.
type RegistrySettings struct {
	// PrimaryURL is the ICTRP trial search endpoint (XML).
	PrimaryURL string

	// SecondaryURL is the ClinicalTrials.gov full-study search endpoint (JSON).
	SecondaryURL string

	// DeepLinkBase is the trial page the canonical URL points at.
	DeepLinkBase string

	// UserAgent identifies this client to both registries.
	UserAgent string

	// Timeout bounds each registry request.
	Timeout time.Duration
}

// DefaultRegistrySettings returns the built-in registry settings.
func DefaultRegistrySettings() RegistrySettings {
	return RegistrySettings{
		PrimaryURL:   DefaultPrimaryURL,
		SecondaryURL: DefaultSecondaryURL,
		DeepLinkBase: DefaultDeepLinkBase,
		UserAgent:    DefaultUserAgent,
		Timeout:      DefaultTimeout,
	}
}

// Validate checks the settings are usable.
func (s RegistrySettings) Validate() error {
	for name, raw := range map[string]string{
		"primary_url":    s.PrimaryURL,
		"secondary_url":  s.SecondaryURL,
		"deep_link_base": s.DeepLinkBase,
	} {
		if err := validateHTTPURL(raw); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidSettings, name, err)
		}
	}
	if s.UserAgent == "" {
		return fmt.Errorf("%w: user_agent cannot be empty", ErrInvalidSettings)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidSettings)
	}
	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
