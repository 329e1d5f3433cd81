// Package normalisers provides implementations of the TrialNormaliser
// interface. A normaliser turns raw registry output into canonical trials.
package normalisers
