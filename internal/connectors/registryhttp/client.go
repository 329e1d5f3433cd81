// Package registryhttp performs the GET requests both registry connectors share
// and classifies their failures into domain registry errors.
package registryhttp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

const (
	// MaxResponseSize is the maximum allowed response size (32MB).
	MaxResponseSize = 32 * 1024 * 1024
)

// Client fetches registry documents.
type Client struct {
	registry  string
	userAgent string
	client    *http.Client
}

// Config holds the settings for a registry HTTP client.
type Config struct {
	// Registry names the upstream in returned errors.
	Registry string

	// UserAgent is sent with every request (default: domain.DefaultUserAgent).
	UserAgent string

	// Timeout bounds each request (default: domain.DefaultTimeout).
	Timeout time.Duration

	// HTTPClient overrides the underlying client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// New creates a registry HTTP client.
func New(cfg Config) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = domain.DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = domain.DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		registry:  cfg.Registry,
		userAgent: cfg.UserAgent,
		client:    httpClient,
	}
}

// Get requests rawURL and returns the body of a 2xx response.
func (c *Client) Get(ctx context.Context, rawURL, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", c.registry, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.RegistryNetworkError{
			Registry: c.registry,
			Timeout:  isTimeout(err),
			Err:      err,
		}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.RegistryHTTPError{
			Registry:   c.registry,
			StatusCode: resp.StatusCode,
			URL:        rawURL,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, &domain.RegistryNetworkError{
			Registry: c.registry,
			Timeout:  isTimeout(err),
			Err:      err,
		}
	}
	if int64(len(body)) > MaxResponseSize {
		return nil, &domain.RegistryParseError{
			Registry: c.registry,
			Err:      fmt.Errorf("response exceeds %d bytes", MaxResponseSize),
		}
	}

	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
