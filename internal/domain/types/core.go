package types

// EvidenceID uniquely identifies a registered evidence source.
type EvidenceID string

// String returns the string form of the identifier.
func (id EvidenceID) String() string { return string(id) }

// CourtID identifies a court profile, e.g. "hi_family" or "ca9".
type CourtID string

// String returns the string form of the court identifier.
func (id CourtID) String() string { return string(id) }

// SessionName names a drafting session; citations are tracked per session.
type SessionName string

// String returns the string form of the session name.
func (s SessionName) String() string { return string(s) }

// Digest is a hex-encoded content hash of an evidence file.
type Digest string

// String returns the string form of the digest.
func (d Digest) String() string { return string(d) }
