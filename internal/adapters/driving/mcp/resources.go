package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
	"github.com/custodia-labs/clinical-trials-mcp/internal/logger"
	"github.com/custodia-labs/clinical-trials-mcp/internal/render"
)

const (
	// uriScheme is the custom URI scheme for trial resources.
	uriScheme = "clinical-trials://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "trials/{trialId}",
		Name:        "trial-details",
		Description: "Detailed record of a clinical trial by its registry ID",
		MIMEType:    "text/plain",
	}, s.handleTrialResource)
}

// handleTrialResource returns the rendered record of one trial.
func (s *Server) handleTrialResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	trialID := extractTrialID(req.Params.URI)
	if trialID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	ctx = logger.WithRequestID(ctx, logger.NewRequestID())
	trial, err := s.ports.Trials.GetDetails(ctx, trialID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting trial details: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     render.Trial(*trial),
		}},
	}, nil
}

// extractTrialID extracts the trial ID from a URI like clinical-trials://trials/{trialId}.
func extractTrialID(uri string) string {
	const prefix = uriScheme + "trials/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil || strings.Contains(id, "/") {
		return ""
	}
	return id
}
