package drafting

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"docket/internal/domain"
	"docket/internal/log"
)

// paragraphSeparator joins drafted paragraphs in a session's running text.
const paragraphSeparator = "\n\n"

var (
	// ErrEvidenceRequired is returned when a paragraph needs a citation but none was given.
	ErrEvidenceRequired = errors.New("evidence required but not provided")
	// ErrUnknownEvidence is returned when a paragraph cites unregistered evidence.
	ErrUnknownEvidence = errors.New("invalid evidence ids")
)

// Service drafts evidence-backed paragraphs into persisted sessions.
type Service struct {
	evidence domain.EvidenceService
	drafts   domain.DraftStore
	logger   zerolog.Logger
	now      func() time.Time

	mu sync.Mutex // serialises load-modify-save of sessions
}

// New returns a drafting service.
func New(evidence domain.EvidenceService, drafts domain.DraftStore) *Service {
	return &Service{
		evidence: evidence,
		drafts:   drafts,
		logger:   log.WithComponent("drafting"),
		now:      time.Now,
	}
}

// DraftParagraph appends content to session with a citation for evidenceIDs
// and returns the formatted paragraph.
//
// When requireCitation is set, at least one ID must be given and every ID
// must be registered. Without it, unknown IDs are silently left out of the
// citation.
func (s *Service) DraftParagraph(
	session domain.SessionName,
	content string,
	evidenceIDs []domain.EvidenceID,
	requireCitation bool,
) (string, error) {
	if requireCitation {
		if len(evidenceIDs) == 0 {
			return "", fmt.Errorf("%w for: %s", ErrEvidenceRequired, snippet(content))
		}
		ok, missing, err := s.evidence.ValidateCitations(evidenceIDs)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("%w: %v. content: %s", ErrUnknownEvidence, missing, snippet(content))
		}
	}

	sources := make([]domain.EvidenceSource, 0, len(evidenceIDs))
	cited := make([]domain.EvidenceID, 0, len(evidenceIDs))
	for _, id := range evidenceIDs {
		src, ok, err := s.evidence.GetEvidence(id)
		if err != nil {
			return "", err
		}
		if ok {
			sources = append(sources, src)
			cited = append(cited, id)
		}
	}
	citation := formatCitations(sources)

	paragraph := content
	if citation != "" {
		paragraph = content + " " + citation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, _, err := s.drafts.LoadDraftSession(session)
	if err != nil {
		return "", err
	}
	sess.Name = session

	start := sess.Length
	if start > 0 {
		start += len(paragraphSeparator)
	}
	if citation != "" {
		sess.Citations = append(sess.Citations, domain.Citation{
			ID:          uuid.NewString(),
			Text:        content,
			EvidenceIDs: cited,
			Location:    start + len(content),
			CreatedUTC:  s.now().UTC().Unix(),
		})
	}
	sess.Length = start + len(paragraph)

	if err := s.drafts.SaveDraftSession(sess); err != nil {
		return "", fmt.Errorf("saving session %s: %w", session, err)
	}
	s.logger.Debug().
		Str("session", session.String()).
		Int("evidence", len(cited)).
		Int("length", sess.Length).
		Msg("paragraph drafted")
	return paragraph, nil
}

// ValidateDocument returns the factual-looking spans of document that have no
// citation recorded in session within ProximityWindow bytes.
func (s *Service) ValidateDocument(
	session domain.SessionName,
	document string,
) ([]domain.UncitedClaim, error) {
	sess, _, err := s.drafts.LoadDraftSession(session)
	if err != nil {
		return nil, err
	}
	return findUncited(document, sess.Citations), nil
}

// ExhibitList renders the LaTeX list of every exhibit cited in session,
// sorted by exhibit label.
func (s *Service) ExhibitList(session domain.SessionName) (string, error) {
	sess, _, err := s.drafts.LoadDraftSession(session)
	if err != nil {
		return "", err
	}

	exhibits := map[string]domain.EvidenceSource{}
	for _, c := range sess.Citations {
		for _, id := range c.EvidenceIDs {
			src, ok, err := s.evidence.GetEvidence(id)
			if err != nil {
				return "", err
			}
			if ok && src.Exhibit != "" {
				exhibits[src.Exhibit] = src
			}
		}
	}
	labels := make([]string, 0, len(exhibits))
	for label := range exhibits {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	lines := []string{`\section*{Exhibits}`, `\begin{enumerate}`}
	for _, label := range labels {
		lines = append(lines, fmt.Sprintf(`  \item Exhibit %s: %s`, label, exhibits[label].Description))
	}
	lines = append(lines, `\end{enumerate}`)
	return strings.Join(lines, "\n"), nil
}

// ResetSession discards everything drafted in session.
func (s *Service) ResetSession(session domain.SessionName) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drafts.DeleteDraftSession(session)
}

// Compile-time assertion that Service implements domain.DraftingService.
var _ domain.DraftingService = (*Service)(nil)
