package driven

import "time"

// RetrievalRecorder observes registry attempts made by the orchestrator.
// Implementations must be safe for concurrent use.
type RetrievalRecorder interface {
	// RecordAttempt reports one finished registry call.
	// state names the fallback step, outcome is "ok", "not_found" or "failed".
	RecordAttempt(registry, state, outcome string, elapsed time.Duration)
}
