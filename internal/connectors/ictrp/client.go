package ictrp

import (
	"context"
	"time"

	"github.com/custodia-labs/clinical-trials-mcp/internal/connectors/registryhttp"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/clinical-trials-mcp/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Registry = (*Client)(nil)

// Config holds configuration for the ICTRP connector.
type Config struct {
	// BaseURL is the trial search endpoint (default: domain.DefaultPrimaryURL).
	BaseURL string

	// UserAgent is sent with every request (default: domain.DefaultUserAgent).
	UserAgent string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Client queries the ICTRP search API.
type Client struct {
	baseURL string
	http    *registryhttp.Client
}

// NewClient creates a new ICTRP client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = domain.DefaultPrimaryURL
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http: registryhttp.New(registryhttp.Config{
			Registry:  domain.RegistryICTRP,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		}),
	}
}

// Name returns the registry identifier.
func (c *Client) Name() string {
	return domain.RegistryICTRP
}

// Search runs one search request against ICTRP.
func (c *Client) Search(ctx context.Context, params domain.RegistryParams) (*domain.RawResult, error) {
	u := c.baseURL
	if q := buildQuery(params).Encode(); q != "" {
		u += "?" + q
	}

	logger.Debug("ictrp: requesting %s", u)

	body, err := c.http.Get(ctx, u, "application/xml")
	if err != nil {
		return nil, err
	}

	result, err := decode(body)
	if err != nil {
		return nil, err
	}

	logger.Debug("ictrp: decoded %d trials", result.Len())
	return result, nil
}

