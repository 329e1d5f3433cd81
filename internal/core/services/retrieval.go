package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/clinical-trials-mcp/internal/logger"
)

// ErrMissingRegistry is returned when a retriever is built without both registries.
var ErrMissingRegistry = errors.New("retrieval: primary and secondary registries are required")

// retrievalState is a step of the registry fallback chain.
type retrievalState int

const (
	stateStart retrievalState = iota
	stateTryBCity
	stateTryA
	stateTryANoCountry
	stateTryAFallback
	stateTryBFinal
	stateDone
	stateFailed
)

func (s retrievalState) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateTryBCity:
		return "secondary_city"
	case stateTryA:
		return "primary"
	case stateTryANoCountry:
		return "primary_no_country"
	case stateTryAFallback:
		return "primary_fallback"
	case stateTryBFinal:
		return "secondary_final"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// attemptOutcome classifies a single registry call.
type attemptOutcome int

const (
	outcomeOK attemptOutcome = iota
	outcomeNotFound
	outcomeFailed
)

func (o attemptOutcome) String() string {
	switch o {
	case outcomeOK:
		return "ok"
	case outcomeNotFound:
		return "not_found"
	default:
		return "failed"
	}
}

// attemptResult is what one state produced.
type attemptResult struct {
	raw     *domain.RawResult
	err     error
	outcome attemptOutcome
}

func classify(raw *domain.RawResult, err error) attemptResult {
	switch {
	case err == nil:
		return attemptResult{raw: raw, outcome: outcomeOK}
	case domain.IsRegistryNotFound(err):
		return attemptResult{err: err, outcome: outcomeNotFound}
	default:
		return attemptResult{err: err, outcome: outcomeFailed}
	}
}

// transition returns the state that follows state given the attempt outcome.
// p is the caller's original parameter set. The outcome is ignored in stateStart.
func transition(state retrievalState, outcome attemptOutcome, p domain.RegistryParams) retrievalState {
	switch state {
	case stateStart:
		if p.IsCitySearch() {
			return stateTryBCity
		}
		return stateTryA

	case stateTryBCity:
		if outcome == outcomeOK {
			return stateDone
		}
		return stateTryA

	case stateTryA:
		switch {
		case outcome == outcomeOK:
			return stateDone
		case outcome == outcomeNotFound && p.Country != "":
			return stateTryANoCountry
		case outcome == outcomeNotFound:
			return stateTryAFallback
		case p.IsCitySearch():
			return stateTryAFallback
		default:
			return stateFailed
		}

	case stateTryANoCountry, stateTryAFallback:
		if outcome == outcomeOK {
			return stateDone
		}
		return stateTryBFinal

	case stateTryBFinal:
		if outcome == outcomeOK {
			return stateDone
		}
		return stateFailed

	default:
		return stateFailed
	}
}

// RetrieverConfig is the immutable configuration of a Retriever.
type RetrieverConfig struct {
	// Primary is tried first for ordinary searches (ICTRP).
	Primary driven.Registry

	// Secondary handles city searches and the final fallback (ClinicalTrials.gov).
	Secondary driven.Registry

	// Recorder observes every attempt. Optional.
	Recorder driven.RetrievalRecorder
}

// Retriever runs the registry fallback chain.
// It holds no mutable state and is safe for concurrent use.
type Retriever struct {
	cfg RetrieverConfig
}

// NewRetriever creates a retriever.
func NewRetriever(cfg RetrieverConfig) (*Retriever, error) {
	if cfg.Primary == nil || cfg.Secondary == nil {
		return nil, ErrMissingRegistry
	}
	return &Retriever{cfg: cfg}, nil
}

// Retrieve walks the fallback chain for p and returns the first successful
// raw result. Attempts run strictly one after another. When every step
// fails the last registry error is returned wrapped.
func (r *Retriever) Retrieve(ctx context.Context, p domain.RegistryParams) (*domain.RawResult, error) {
	log := logger.With(ctx)
	logger.Section("Retrieval")

	state := transition(stateStart, outcomeOK, p)
	var last attemptResult

	for state != stateDone && state != stateFailed {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("retrieve trials: %w", err)
		}

		registry, params := r.step(state, p)
		start := time.Now()
		last = classify(registry.Search(ctx, params))
		elapsed := time.Since(start)

		if r.cfg.Recorder != nil {
			r.cfg.Recorder.RecordAttempt(registry.Name(), state.String(), last.outcome.String(), elapsed)
		}

		next := transition(state, last.outcome, p)
		log.Debug("registry attempt",
			"registry", registry.Name(),
			"state", state.String(),
			"outcome", last.outcome.String(),
			"next", next.String(),
			"elapsed", elapsed,
		)
		if last.err != nil {
			log.Debug("registry attempt error", "state", state.String(), "error", last.err)
		}
		state = next
	}

	if state == stateFailed {
		return nil, fmt.Errorf("retrieve trials: %w", last.err)
	}
	return last.raw, nil
}

// step returns the registry and parameters a state queries with.
func (r *Retriever) step(state retrievalState, p domain.RegistryParams) (driven.Registry, domain.RegistryParams) {
	switch state {
	case stateTryBCity, stateTryBFinal:
		return r.cfg.Secondary, p
	case stateTryANoCountry:
		return r.cfg.Primary, p.WithoutCountry().WithoutQuery()
	case stateTryAFallback:
		return r.cfg.Primary, p.WithoutQuery()
	default:
		return r.cfg.Primary, p
	}
}
