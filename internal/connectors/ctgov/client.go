package ctgov

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/custodia-labs/clinical-trials-mcp/internal/connectors/registryhttp"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/clinical-trials-mcp/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Registry = (*Client)(nil)

// DefaultMaxRank is the page size used when no result cap is given.
const DefaultMaxRank = 20

// Config holds configuration for the ClinicalTrials.gov connector.
type Config struct {
	// BaseURL is the full-studies endpoint (default: domain.DefaultSecondaryURL).
	BaseURL string

	// UserAgent is sent with every request (default: domain.DefaultUserAgent).
	UserAgent string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Client queries the ClinicalTrials.gov full-study search API.
type Client struct {
	baseURL string
	http    *registryhttp.Client
}

// NewClient creates a new ClinicalTrials.gov client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = domain.DefaultSecondaryURL
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http: registryhttp.New(registryhttp.Config{
			Registry:  domain.RegistryCTGov,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		}),
	}
}

// Name returns the registry identifier.
func (c *Client) Name() string {
	return domain.RegistryCTGov
}

// Search runs one full-study search.
func (c *Client) Search(ctx context.Context, params domain.RegistryParams) (*domain.RawResult, error) {
	maxRank := DefaultMaxRank
	if params.Max > 0 {
		maxRank = params.Max
	}

	q := url.Values{}
	q.Set("expr", buildExpr(params))
	q.Set("min_rnk", "1")
	q.Set("max_rnk", strconv.Itoa(maxRank))
	q.Set("fmt", "json")
	u := c.baseURL + "?" + q.Encode()

	logger.Debug("ctgov: requesting %s", u)

	body, err := c.http.Get(ctx, u, "application/json")
	if err != nil {
		return nil, err
	}

	result, err := convert(body)
	if err != nil {
		return nil, err
	}

	logger.Debug("ctgov: converted %d studies", result.Len())
	return result, nil
}
