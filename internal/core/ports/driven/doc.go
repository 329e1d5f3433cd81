// Package driven defines the ports the core calls out through.
//
// Services depend only on these interfaces; connectors and adapters
// implement them.
//
//   - Registry: one upstream trial registry (ICTRP, ClinicalTrials.gov)
//   - TrialNormaliser: raw registry output to domain.Trial
//   - ConfigStore: read-only configuration
//   - RetrievalRecorder: per-attempt observation, optional
//
// This package imports domain and nothing else from internal/.
package driven
