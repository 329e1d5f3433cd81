package driven

//go:generate mockgen -destination=mocks/mock_registry.go -package=mocks -source=registry.go Registry

import (
	"context"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

// Registry fetches raw trial data from one clinical-trial registry.
// Implementations are stateless apart from immutable configuration and
// safe for concurrent use.
type Registry interface {
	// Name returns the registry identifier used in errors, logs and metrics.
	Name() string

	// Search runs a single request against the registry.
	// Errors are *domain.RegistryHTTPError, *domain.RegistryNetworkError or
	// *domain.RegistryParseError.
	Search(ctx context.Context, params domain.RegistryParams) (*domain.RawResult, error)
}
