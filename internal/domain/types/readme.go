package types

// FindingKind classifies a documentation QA finding.
type FindingKind string

const (
	FindingUnclosedFence FindingKind = "unclosed-fence"
	FindingInvalidUTF8   FindingKind = "invalid-utf8"
	FindingMojibake      FindingKind = "mojibake"
	FindingDuplicate     FindingKind = "near-duplicate"
	FindingIllustrative  FindingKind = "illustrative"
)

// Finding is one observation about a README file.
type Finding struct {
	Kind    FindingKind `json:"kind"`
	Path    string      `json:"path"`
	Line    int         `json:"line,omitempty"`
	Message string      `json:"message"`
}

// ReadmeFile summarises one scanned README.
type ReadmeFile struct {
	Path       string `json:"path"`
	Bytes      int    `json:"bytes"`
	Lines      int    `json:"lines"`
	ValidUTF8  bool   `json:"valid_utf8"`
	Mojibake   bool   `json:"mojibake"`
	FenceCount int    `json:"fence_count"`
}

// DuplicatePair is two README files whose content is nearly the same.
type DuplicatePair struct {
	A            string  `json:"a"`
	B            string  `json:"b"`
	Similarity   float64 `json:"similarity"`
	EncodingOnly bool    `json:"encoding_only"`
}

// FileReference is a path mentioned inside a fenced code block.
type FileReference struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// CodeFence is one fenced block in a README.
type CodeFence struct {
	Path       string          `json:"path"`
	Line       int             `json:"line"`
	Info       string          `json:"info,omitempty"`
	Closed     bool            `json:"closed"`
	References []FileReference `json:"references,omitempty"`
}

// Illustrative reports whether none of the fence's references exist.
func (f CodeFence) Illustrative() bool {
	for _, r := range f.References {
		if r.Present {
			return false
		}
	}
	return true
}

// ReadmeReport is the result of a documentation QA scan.
type ReadmeReport struct {
	Root     string          `json:"root"`
	Files    []ReadmeFile    `json:"files"`
	Pairs    []DuplicatePair `json:"pairs"`
	Fences   []CodeFence     `json:"fences"`
	Findings []Finding       `json:"findings"`
}

// Valid reports whether the scan found no structural markdown problems.
func (r ReadmeReport) Valid() bool {
	for _, f := range r.Findings {
		if f.Kind == FindingUnclosedFence || f.Kind == FindingInvalidUTF8 {
			return false
		}
	}
	return true
}
