// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// clinical trials service. It lets AI assistants search the WHO ICTRP and
// ClinicalTrials.gov registries and read individual trial records.
package mcp

import "errors"

// ErrMissingTrialService is returned when the trial service is not provided.
var ErrMissingTrialService = errors.New("mcp: trial service is required")
