package jurisdiction

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"docket/internal/domain"
	"docket/internal/metrics"
)

// Rule names reported in violations.
const (
	RuleUnknownCourt            = "unknown-court"
	RuleFontFamily              = "font-family"
	RuleFontSize                = "font-size"
	RuleLineSpacing             = "line-spacing"
	RuleCertificateOfService    = "certificate-of-service"
	RuleVerification            = "verification"
	RuleTableOfAuthorities      = "table-of-authorities"
	RuleTableOfContents         = "table-of-contents"
	RuleWordLimit               = "word-limit"
	RuleProSeNotice             = "pro-se-notice"
	RuleCertificateOfCompliance = "certificate-of-compliance"
)

var (
	docClassOptions = regexp.MustCompile(`\\documentclass\[([^\]]*)\]`)
	fontSizeCmd     = regexp.MustCompile(`\\fontsize\{(\d+(?:\.\d+)?)(?:pt)?\}`)
	setStretch      = regexp.MustCompile(`\\setstretch\{(\d+(?:\.\d+)?)\}`)
	latexComment    = regexp.MustCompile(`(?m)(^|[^\\])%.*$`)
	latexCommand    = regexp.MustCompile(`\\[a-zA-Z@]+\*?(\[[^\]]*\])?`)
	latexBraces     = regexp.MustCompile(`[{}]`)
)

// Validate checks text against the court's profile. An unknown court yields a
// non-compliant report with a single unknown-court violation.
func (r *Registry) Validate(
	_ context.Context,
	court domain.CourtID,
	text string,
) (domain.ComplianceReport, error) {
	profile, ok := r.GetCourt(court)
	if !ok {
		// Unknown IDs share one label value so arbitrary input cannot grow the series.
		metrics.ValidationsTotal.WithLabelValues(metrics.OutcomeUnknown, metrics.OutcomeUnknown).Inc()
		return domain.ComplianceReport{
			CourtID: court,
			Violations: []domain.Violation{{
				Rule:    RuleUnknownCourt,
				Message: fmt.Sprintf("Unknown court ID: %s", court),
			}},
		}, nil
	}

	var violations []domain.Violation
	violations = append(violations, checkFormatting(text, profile.Formatting)...)
	violations = append(violations, checkFiling(text, profile.Filing)...)
	violations = append(violations, checkSpecial(text, profile.Special)...)

	report := domain.ComplianceReport{
		CourtID:    court,
		Compliant:  len(violations) == 0,
		Violations: violations,
	}
	if report.Violations == nil {
		report.Violations = []domain.Violation{}
	}

	outcome := metrics.OutcomeCompliant
	if !report.Compliant {
		outcome = metrics.OutcomeViolations
	}
	metrics.ValidationsTotal.WithLabelValues(court.String(), outcome).Inc()
	for _, v := range violations {
		metrics.ViolationsTotal.WithLabelValues(v.Rule).Inc()
	}
	r.logger.Debug().
		Str("court", court.String()).
		Int("violations", len(violations)).
		Msg("document validated")
	return report, nil
}

// ValidateFile reads path and validates its contents. A missing file is
// validated as an empty document.
func (r *Registry) ValidateFile(
	ctx context.Context,
	court domain.CourtID,
	path string,
) (domain.ComplianceReport, error) {
	b, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return domain.ComplianceReport{}, err
	}
	return r.Validate(ctx, court, string(b))
}

func checkFormatting(text string, rules domain.FormattingRules) []domain.Violation {
	var out []domain.Violation

	if rules.FontFamily != "" {
		font := regexp.MustCompile(`\\setmainfont(\[[^\]]*\])?\{` + regexp.QuoteMeta(rules.FontFamily) + `\}`)
		if !font.MatchString(text) {
			out = append(out, domain.Violation{
				Rule:    RuleFontFamily,
				Message: fmt.Sprintf("Required font '%s' not specified", rules.FontFamily),
			})
		}
	}

	if rules.FontSize > 0 {
		declared := declaredFontSizes(text)
		if !fontSizeOK(declared, rules.FontSize) {
			out = append(out, domain.Violation{
				Rule:    RuleFontSize,
				Message: fmt.Sprintf("Required font size %dpt not set", rules.FontSize),
			})
		}
	}

	if rules.LineSpacing > 0 && !lineSpacingSet(text, rules.LineSpacing) {
		out = append(out, domain.Violation{
			Rule:    RuleLineSpacing,
			Message: fmt.Sprintf("Required line spacing %s not set", strconv.FormatFloat(rules.LineSpacing, 'f', 1, 64)),
		})
	}
	return out
}

// declaredFontSizes returns point sizes set via \documentclass options or \fontsize.
func declaredFontSizes(text string) []float64 {
	var sizes []float64
	for _, m := range docClassOptions.FindAllStringSubmatch(text, -1) {
		for _, opt := range strings.Split(m[1], ",") {
			opt = strings.TrimSpace(opt)
			if !strings.HasSuffix(opt, "pt") {
				continue
			}
			if v, err := strconv.ParseFloat(strings.TrimSuffix(opt, "pt"), 64); err == nil {
				sizes = append(sizes, v)
			}
		}
	}
	for _, m := range fontSizeCmd.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			sizes = append(sizes, v)
		}
	}
	return sizes
}

// fontSizeOK accepts an undeclared size only for 12pt, the common default
// of court templates; any declared size must include the required one.
func fontSizeOK(declared []float64, want int) bool {
	if len(declared) == 0 {
		return want == 12
	}
	for _, v := range declared {
		if v == float64(want) {
			return true
		}
	}
	return false
}

func lineSpacingSet(text string, spacing float64) bool {
	switch spacing {
	case 2.0:
		if strings.Contains(text, `\doublespacing`) {
			return true
		}
	case 1.5:
		if strings.Contains(text, `\onehalfspacing`) {
			return true
		}
	case 1.0:
		if strings.Contains(text, `\singlespacing`) {
			return true
		}
	}
	for _, m := range setStretch.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v == spacing {
			return true
		}
	}
	return false
}

func checkFiling(text string, rules domain.FilingRules) []domain.Violation {
	var out []domain.Violation
	lower := strings.ToLower(text)

	if rules.CertificateOfServiceRequired && !strings.Contains(lower, "certificate of service") {
		out = append(out, domain.Violation{
			Rule:    RuleCertificateOfService,
			Message: "Certificate of Service required but not found",
		})
	}
	if rules.VerificationRequired && !strings.Contains(lower, "verification") {
		out = append(out, domain.Violation{
			Rule:    RuleVerification,
			Message: "Verification required but not found",
		})
	}
	if rules.TOARequired && !strings.Contains(lower, "table of authorities") {
		out = append(out, domain.Violation{
			Rule:    RuleTableOfAuthorities,
			Message: "Table of Authorities required but not found",
		})
	}
	// A threshold of one page means every filing needs a table of contents.
	if rules.TOCRequiredPages != nil && *rules.TOCRequiredPages <= 1 &&
		!strings.Contains(lower, "table of contents") && !strings.Contains(text, `\tableofcontents`) {
		out = append(out, domain.Violation{
			Rule:    RuleTableOfContents,
			Message: "Table of Contents required but not found",
		})
	}
	if rules.WordLimit != nil {
		if n := CountWords(text); n > *rules.WordLimit {
			out = append(out, domain.Violation{
				Rule:    RuleWordLimit,
				Message: fmt.Sprintf("Document has %d words, limit is %d", n, *rules.WordLimit),
			})
		}
	}
	return out
}

func checkSpecial(text string, rules map[string]any) []domain.Violation {
	var out []domain.Violation
	lower := strings.ToLower(text)

	if flag(rules, "pro_se_notice_required") && !strings.Contains(lower, "pro se") {
		out = append(out, domain.Violation{
			Rule:    RuleProSeNotice,
			Message: "Pro se notice may be required for self-represented litigants",
		})
	}
	if flag(rules, "certificate_of_compliance_required") && !strings.Contains(lower, "certificate of compliance") {
		out = append(out, domain.Violation{
			Rule:    RuleCertificateOfCompliance,
			Message: "Certificate of Compliance required but not found",
		})
	}
	return out
}

func flag(rules map[string]any, key string) bool {
	v, ok := rules[key].(bool)
	return ok && v
}

// CountWords counts words in LaTeX source, ignoring comments, commands and
// braces.
func CountWords(text string) int {
	text = latexComment.ReplaceAllString(text, "$1")
	text = latexCommand.ReplaceAllString(text, " ")
	text = latexBraces.ReplaceAllString(text, " ")
	n := 0
	for _, f := range strings.Fields(text) {
		if strings.IndexFunc(f, isWordRune) >= 0 {
			n++
		}
	}
	return n
}

func isWordRune(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r > 0x7f
}

// Compile-time assertion that Registry implements domain.JurisdictionService.
var _ domain.JurisdictionService = (*Registry)(nil)
