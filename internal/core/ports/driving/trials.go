package driving

import (
	"context"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

// TrialService provides clinical trial lookups to external actors.
type TrialService interface {
	// Search queries the registries and returns normalised trials.
	// An empty slice with a nil error means nothing matched.
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Trial, error)

	// GetDetails returns the first trial matching id exactly.
	// Returns domain.ErrNotFound when no registry knows the id.
	GetDetails(ctx context.Context, id string) (*domain.Trial, error)
}

// SettingsService resolves the registry settings the process runs with.
type SettingsService interface {
	// RegistrySettings returns the effective, validated settings.
	RegistrySettings() (domain.RegistrySettings, error)
}
