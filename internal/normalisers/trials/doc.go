// Package trials normalises raw registry structures into canonical trials.
//
// Both registry connectors emit domain.RawResult. The normaliser applies one
// reconciliation rule to every list field (wrapped values, else direct
// values, else "Not specified") and fills scalar defaults, so every
// returned domain.Trial satisfies the canonical invariants regardless of
// which registry produced it.
package trials
