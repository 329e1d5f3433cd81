// Package domain holds the clinical trial types shared by every layer:
// the canonical Trial, the SearchCriteria a caller sends, the
// RegistryParams handed to an adapter, the typed RawResult an adapter
// returns and the registry error types.
//
// Nothing in domain imports another internal package or a third-party
// module. Every other package may import domain.
package domain
