// Package render formats canonical trials and retrieval outcomes as the
// plain text returned by the MCP tools and printed by the CLI.
package render
