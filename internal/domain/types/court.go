package types

// CourtLevel places a court in the state/federal hierarchy.
type CourtLevel string

const (
	StateFamily     CourtLevel = "state_family"
	StateDistrict   CourtLevel = "state_district"
	StateSupreme    CourtLevel = "state_supreme"
	FederalDistrict CourtLevel = "federal_district"
	FederalCircuit  CourtLevel = "federal_circuit"
	FederalSupreme  CourtLevel = "federal_supreme"
)

// Valid reports whether l is one of the known levels.
func (l CourtLevel) Valid() bool {
	switch l {
	case StateFamily, StateDistrict, StateSupreme, FederalDistrict, FederalCircuit, FederalSupreme:
		return true
	}
	return false
}

// Margins are page margins in inches.
type Margins struct {
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
}

// FormattingRules are a court's typographic requirements.
type FormattingRules struct {
	FontFamily         string  `json:"font_family" yaml:"font_family"`
	FontSize           int     `json:"font_size" yaml:"font_size"`
	LineSpacing        float64 `json:"line_spacing" yaml:"line_spacing"`
	Margins            Margins `json:"margins" yaml:"margins"`
	PageNumberLocation string  `json:"page_number_location" yaml:"page_number_location"`
}

// CitationRules describe the citation style a court expects.
type CitationRules struct {
	CaseFormat      string            `json:"case_format" yaml:"case_format"`
	StatuteFormat   string            `json:"statute_format" yaml:"statute_format"`
	PinCiteRequired bool              `json:"pin_cite_required" yaml:"pin_cite_required"`
	ShortForms      map[string]string `json:"short_forms,omitempty" yaml:"short_forms,omitempty"`
}

// FilingRules are the filing-level requirements of a court.
// Nil pointers mean "no limit".
type FilingRules struct {
	MaxPages                     *int `json:"max_pages,omitempty" yaml:"max_pages"`
	WordLimit                    *int `json:"word_limit,omitempty" yaml:"word_limit"`
	CertificateOfServiceRequired bool `json:"certificate_of_service_required" yaml:"certificate_of_service_required"`
	VerificationRequired         bool `json:"verification_required" yaml:"verification_required"`
	ExhibitsMustBeLabeled        bool `json:"exhibits_must_be_labeled" yaml:"exhibits_must_be_labeled"`
	TOCRequiredPages             *int `json:"toc_required_pages,omitempty" yaml:"toc_required_pages"`
	TOARequired                  bool `json:"toa_required" yaml:"toa_required"`
}

// CourtProfile is everything docket knows about one court.
type CourtProfile struct {
	ID           CourtID         `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	Level        CourtLevel      `json:"level" yaml:"level"`
	Jurisdiction string          `json:"jurisdiction" yaml:"jurisdiction"`
	Formatting   FormattingRules `json:"formatting" yaml:"formatting"`
	Citations    CitationRules   `json:"citations" yaml:"citations"`
	Filing       FilingRules     `json:"filing" yaml:"filing"`
	Special      map[string]any  `json:"special,omitempty" yaml:"special,omitempty"`
}

// DefaultCourtProfile returns the rules a court has unless its profile says
// otherwise. Profiles read from YAML are decoded on top of it, so a partial
// profile keeps every check it does not mention.
func DefaultCourtProfile() CourtProfile {
	tocPages := 25
	return CourtProfile{
		Formatting: FormattingRules{
			FontFamily:         "Times New Roman",
			FontSize:           12,
			LineSpacing:        2.0,
			Margins:            Margins{Top: 1, Bottom: 1, Left: 1, Right: 1},
			PageNumberLocation: "bottom center",
		},
		Citations: CitationRules{
			CaseFormat:      "Bluebook",
			StatuteFormat:   "Bluebook",
			PinCiteRequired: true,
		},
		Filing: FilingRules{
			CertificateOfServiceRequired: true,
			ExhibitsMustBeLabeled:        true,
			TOCRequiredPages:             &tocPages,
		},
	}
}

// Violation is one failed compliance rule.
type Violation struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ComplianceReport is the outcome of validating a document against a court.
type ComplianceReport struct {
	CourtID    CourtID     `json:"court_id"`
	Compliant  bool        `json:"compliant"`
	Violations []Violation `json:"violations"`
}
