// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Retriever runs the registry fallback chain; TrialService sits on top
// of it and the normaliser.
package services
