package mcp

import (
	"net/http"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driving"
)

// Ports aggregates everything the MCP server needs.
type Ports struct {
	// Trials provides search and detail lookups.
	Trials driving.TrialService

	// Metrics is served on /metrics in HTTP mode. Optional.
	Metrics http.Handler
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Trials == nil {
		return ErrMissingTrialService
	}
	return nil
}
