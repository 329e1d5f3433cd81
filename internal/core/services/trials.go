package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/clinical-trials-mcp/internal/logger"
)

// Ensure TrialService implements the interface.
var _ driving.TrialService = (*TrialService)(nil)

// TrialService searches the registries and normalises what they return.
type TrialService struct {
	retriever  *Retriever
	normaliser driven.TrialNormaliser
}

// NewTrialService creates a new trial service.
func NewTrialService(retriever *Retriever, normaliser driven.TrialNormaliser) *TrialService {
	return &TrialService{
		retriever:  retriever,
		normaliser: normaliser,
	}
}

// Search runs the fallback chain for criteria and returns canonical trials.
func (s *TrialService) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Trial, error) {
	ctx = ensureRequestID(ctx)
	params := criteria.Params()

	logger.With(ctx).Debug("search",
		"query", params.Query,
		"condition", params.Condition,
		"country", params.Country,
		"max", params.Max,
		"city_search", params.IsCitySearch(),
	)

	raw, err := s.retriever.Retrieve(ctx, params)
	if err != nil {
		return nil, err
	}

	trials := s.normaliser.Normalise(raw)
	logger.With(ctx).Debug("search complete", "trials", len(trials))
	return trials, nil
}

// GetDetails looks a trial up by its exact identifier.
func (s *TrialService) GetDetails(ctx context.Context, id string) (*domain.Trial, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: trial id is required", domain.ErrInvalidInput)
	}
	ctx = ensureRequestID(ctx)

	logger.With(ctx).Debug("details", "trial_id", id)

	raw, err := s.retriever.Retrieve(ctx, domain.IDParams(id))
	if err != nil {
		return nil, err
	}

	trials := s.normaliser.Normalise(raw)
	if len(trials) == 0 {
		return nil, fmt.Errorf("trial %s: %w", id, domain.ErrNotFound)
	}
	return &trials[0], nil
}

func ensureRequestID(ctx context.Context) context.Context {
	if logger.RequestID(ctx) != "" {
		return ctx
	}
	return logger.WithRequestID(ctx, logger.NewRequestID())
}
