// Package connectors groups the registry adapters. Each subpackage
// implements driven.Registry for one upstream trial registry and
// returns typed raw results for the normaliser.
//
// Shared HTTP transport lives in registryhttp.
package connectors
