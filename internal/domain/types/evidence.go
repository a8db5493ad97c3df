package types

// EvidenceSource is a piece of evidence that drafted paragraphs may cite.
type EvidenceSource struct {
	ID          EvidenceID `json:"id"`
	Description string     `json:"description"`
	FilePath    string     `json:"file_path,omitempty"`
	Pages       []int      `json:"pages,omitempty"`
	Exhibit     string     `json:"exhibit,omitempty"`
	Digest      Digest     `json:"digest,omitempty"`
	AddedUTC    int64      `json:"added_utc"`
}

// Citation records a drafted paragraph and the evidence backing it.
// Location is the offset in the session's drafted text where the paragraph ends.
type Citation struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	EvidenceIDs []EvidenceID `json:"evidence_ids"`
	Location    int          `json:"location"`
	CreatedUTC  int64        `json:"created_utc"`
}

// DraftSession is the persisted state of one drafting session.
type DraftSession struct {
	Name      SessionName `json:"name"`
	Citations []Citation  `json:"citations"`
	// Length is the running length of all drafted output, separators included.
	Length int `json:"length"`
}

// UncitedClaim is a span of text that looks factual but has no citation nearby.
type UncitedClaim struct {
	Text    string `json:"text"`
	Pattern string `json:"pattern"`
	Offset  int    `json:"offset"`
}
