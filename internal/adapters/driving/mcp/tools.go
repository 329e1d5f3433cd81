package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
	"github.com/custodia-labs/clinical-trials-mcp/internal/logger"
	"github.com/custodia-labs/clinical-trials-mcp/internal/render"
)

// Tool names.
const (
	toolSearch  = "search-clinical-trials"
	toolDetails = "get-trial-details"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query             string `json:"query,omitempty" jsonschema:"Search query for finding trials by keyword"`
	Condition         string `json:"condition,omitempty" jsonschema:"Medical condition or disease being studied"`
	Country           string `json:"country,omitempty" jsonschema:"Country where the trial is conducted"`
	Sponsor           string `json:"sponsor,omitempty" jsonschema:"Organization sponsoring the trial"`
	Phase             string `json:"phase,omitempty" jsonschema:"Trial phase (e.g., 'Phase 1', 'Phase 2', 'Phase 3')"`
	RecruitmentStatus string `json:"recruitmentStatus,omitempty" jsonschema:"Trial recruitment status (e.g., 'Recruiting', 'Completed')"`
	DateFrom          string `json:"dateFrom,omitempty" jsonschema:"Start date for search range (YYYY-MM-DD)"`
	DateTo            string `json:"dateTo,omitempty" jsonschema:"End date for search range (YYYY-MM-DD)"`
	MaxResults        int    `json:"maxResults,omitempty" jsonschema:"Maximum number of results to return (default 10, at most 50)"`
}

// criteria converts tool input into search criteria.
func (in SearchInput) criteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Query:             in.Query,
		Condition:         in.Condition,
		Country:           in.Country,
		Sponsor:           in.Sponsor,
		Phase:             in.Phase,
		RecruitmentStatus: in.RecruitmentStatus,
		DateFrom:          in.DateFrom,
		DateTo:            in.DateTo,
		MaxResults:        in.MaxResults,
	}
}

// DetailsInput is the input schema for the details tool.
type DetailsInput struct {
	TrialID string `json:"trialId" jsonschema:"The unique identifier for the clinical trial (e.g., NCT identifier or WHO registry ID)"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolSearch,
		Description: "Search for clinical trials using keywords, condition, country, or other parameters",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolDetails,
		Description: "Get detailed information about a specific clinical trial by its ID",
	}, s.handleDetails)
}

// handleSearch handles the search tool invocation.
// Failures are reported as text so the assistant can read the suggestions.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, any, error) {
	ctx = logger.WithRequestID(ctx, logger.NewRequestID())
	criteria := input.criteria()

	trials, err := s.ports.Trials.Search(ctx, criteria)
	if err != nil {
		logger.With(ctx).Warn("search failed", "tool", toolSearch, "error", err)
		return textResult(render.SearchError(err, criteria)), nil, nil
	}
	if len(trials) == 0 {
		return textResult(render.NoResults(criteria)), nil, nil
	}

	return textResult(render.SearchResults(trials)), nil, nil
}

// handleDetails handles the details tool invocation.
func (s *Server) handleDetails(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DetailsInput,
) (*mcp.CallToolResult, any, error) {
	ctx = logger.WithRequestID(ctx, logger.NewRequestID())

	trial, err := s.ports.Trials.GetDetails(ctx, input.TrialID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return textResult(render.NotFound(input.TrialID)), nil, nil
	case err != nil:
		logger.With(ctx).Warn("details failed", "tool", toolDetails, "error", err)
		return textResult(render.DetailsError(err)), nil, nil
	}

	return textResult(render.Trial(*trial)), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
