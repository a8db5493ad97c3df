// Package domain defines core data models and interfaces shared across docket.
// It contains plain types (evidence, court profiles, routing records, README
// reports) and contracts (interfaces) only. The types and interfaces live in
// subpackages and are re-exported here as aliases.
package domain
