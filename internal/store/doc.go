// Package store provides persistence for docket's core data.
//
// It contains concrete implementations of the domain storage interfaces.
// File stores serialise JSON (or YAML for court profiles) on disk and replace
// files atomically; all methods are concurrency-safe via internal locking.
// Stored files typically live under the user's configured home directory.
//
// The package includes stores for:
//   - Evidence sources (EvidenceFileStore)
//   - Drafting sessions and their citations (DraftFileStore)
//   - User-supplied court profiles (CourtProfileDirStore)
//   - The model routing performance log (SQLiteResultLog)
package store
