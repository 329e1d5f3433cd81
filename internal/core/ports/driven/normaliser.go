package driven

import "github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"

// TrialNormaliser turns a registry's raw structure into canonical trials.
type TrialNormaliser interface {
	// Normalise maps every raw trial, preserving order.
	// A nil or absent result yields an empty slice.
	Normalise(raw *domain.RawResult) []domain.Trial
}
