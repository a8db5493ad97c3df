// Package crypto exposes the hashing primitives docket uses for evidence.
//
// Contents
//
//   - BLAKE2b-256 digests of evidence files and byte slices (DigestFile,
//     DigestBytes)
//   - Short digest fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Digests are hex-encoded and returned as domain.Digest so they can be stored
// alongside evidence records and compared later to detect modified files.
package crypto
