package docqa

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"docket/internal/domain"
	"docket/internal/log"
)

// DefaultThreshold is the line similarity at which two READMEs are near-duplicates.
const DefaultThreshold = 0.9

const scanConcurrency = 8

var skipDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
	"_examples":    true,
}

// Config controls a Service.
type Config struct {
	// Threshold is the near-duplicate similarity in (0, 1]. Zero means DefaultThreshold.
	Threshold float64
}

// Service scans README files.
type Service struct {
	threshold float64
	logger    zerolog.Logger
}

var _ domain.ReadmeService = (*Service)(nil)

// New constructs a Service.
func New(cfg Config) *Service {
	th := cfg.Threshold
	if th <= 0 || th > 1 {
		th = DefaultThreshold
	}
	return &Service{threshold: th, logger: log.WithComponent("docqa")}
}

// scanned is the per-file intermediate result of a scan.
type scanned struct {
	file     domain.ReadmeFile
	raw      string
	repaired string
	fences   []domain.CodeFence
	findings []domain.Finding
}

// Scan checks every README under root.
func (s *Service) Scan(ctx context.Context, root string) (domain.ReadmeReport, error) {
	info, err := os.Stat(root)
	if err != nil {
		return domain.ReadmeReport{}, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return domain.ReadmeReport{}, fmt.Errorf("%s is not a directory", root)
	}

	readmes, t, err := walk(root)
	if err != nil {
		return domain.ReadmeReport{}, err
	}
	s.logger.Debug().Str("root", root).Int("readmes", len(readmes)).Msg("scanning")

	results := make([]scanned, len(readmes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scanConcurrency)
	for i, rel := range readmes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				return fmt.Errorf("read %s: %w", rel, err)
			}
			results[i] = scanFile(rel, data, t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ReadmeReport{}, err
	}

	report := domain.ReadmeReport{
		Root:     root,
		Files:    []domain.ReadmeFile{},
		Pairs:    []domain.DuplicatePair{},
		Fences:   []domain.CodeFence{},
		Findings: []domain.Finding{},
	}
	for _, r := range results {
		report.Files = append(report.Files, r.file)
		report.Fences = append(report.Fences, r.fences...)
		report.Findings = append(report.Findings, r.findings...)
	}

	for i := 0; i < len(results); i++ {
		for j := i + 1; j < len(results); j++ {
			a, b := results[i], results[j]
			sim := similarity(a.repaired, b.repaired)
			if sim < s.threshold {
				continue
			}
			pair := domain.DuplicatePair{
				A:            a.file.Path,
				B:            b.file.Path,
				Similarity:   sim,
				EncodingOnly: a.repaired == b.repaired && a.raw != b.raw,
			}
			report.Pairs = append(report.Pairs, pair)
			msg := fmt.Sprintf("near-duplicate of %s (similarity %.2f)", b.file.Path, sim)
			if pair.EncodingOnly {
				msg += "; differs only in character encoding"
			}
			report.Findings = append(report.Findings, domain.Finding{
				Kind: domain.FindingDuplicate, Path: a.file.Path, Message: msg,
			})
		}
	}

	sort.SliceStable(report.Findings, func(i, j int) bool {
		fi, fj := report.Findings[i], report.Findings[j]
		if fi.Path != fj.Path {
			return fi.Path < fj.Path
		}
		return fi.Line < fj.Line
	})
	return report, nil
}

// walk lists README files and indexes the repository tree, both relative to
// root with forward slashes. READMEs are returned sorted.
func walk(root string) ([]string, *tree, error) {
	t := newTree()
	var readmes []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if d.IsDir() && skipDirs[d.Name()] {
			return filepath.SkipDir
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		t.add(rel)
		if !d.IsDir() && isReadme(d.Name()) {
			readmes = append(readmes, rel)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(readmes)
	return readmes, t, nil
}

func isReadme(name string) bool {
	lower := strings.ToLower(name)
	if !strings.HasPrefix(lower, "readme") {
		return false
	}
	switch filepath.Ext(lower) {
	case "", ".md", ".markdown":
		return true
	}
	return false
}

func scanFile(rel string, data []byte, t *tree) scanned {
	out := scanned{raw: string(data)}
	valid := utf8.Valid(data)
	text := string(data)
	if !valid {
		text = strings.ToValidUTF8(text, "�")
		out.findings = append(out.findings, domain.Finding{
			Kind: domain.FindingInvalidUTF8, Path: rel, Message: "file is not valid UTF-8",
		})
	}

	repaired, n := repairMojibake(text)
	if n > 0 {
		out.findings = append(out.findings, domain.Finding{
			Kind:    domain.FindingMojibake,
			Path:    rel,
			Message: fmt.Sprintf("%d sequence(s) look like UTF-8 decoded as Windows-1252", n),
		})
	}
	out.repaired = norm.NFC.String(repaired)

	lines := splitLines(repaired)
	fences := parseFences(lines)
	for _, f := range fences {
		cf := domain.CodeFence{
			Path:       rel,
			Line:       f.line,
			Info:       f.info,
			Closed:     f.closed,
			References: resolveReferences(fileReferences(f.body), t),
		}
		out.fences = append(out.fences, cf)
		if !f.closed {
			out.findings = append(out.findings, domain.Finding{
				Kind:    domain.FindingUnclosedFence,
				Path:    rel,
				Line:    f.line,
				Message: "code fence is never closed",
			})
		}
		if len(cf.References) > 0 && cf.Illustrative() {
			names := make([]string, len(cf.References))
			for i, r := range cf.References {
				names[i] = r.Name
			}
			out.findings = append(out.findings, domain.Finding{
				Kind:    domain.FindingIllustrative,
				Path:    rel,
				Line:    f.line,
				Message: "illustrative: references files not in repository: " + strings.Join(names, ", "),
			})
		}
	}

	out.file = domain.ReadmeFile{
		Path:       rel,
		Bytes:      len(data),
		Lines:      len(lines),
		ValidUTF8:  valid,
		Mojibake:   n > 0,
		FenceCount: len(fences),
	}
	return out
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// similarity is the Dice coefficient over the multisets of trimmed non-blank
// lines of a and b.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	count := func(s string) map[string]int {
		m := map[string]int{}
		for _, l := range splitLines(s) {
			if l = strings.TrimSpace(l); l != "" {
				m[l]++
			}
		}
		return m
	}
	ca, cb := count(a), count(b)
	total, common := 0, 0
	for l, n := range ca {
		total += n
		common += min(n, cb[l])
	}
	for _, n := range cb {
		total += n
	}
	if total == 0 {
		return 0
	}
	return 2 * float64(common) / float64(total)
}
