package evidence

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"docket/internal/crypto"
	"docket/internal/domain"
	"docket/internal/log"
)

var (
	// ErrInvalidEvidence is returned when an evidence source has no ID.
	ErrInvalidEvidence = errors.New("evidence must have an id")
	// ErrNotFound is returned when an evidence ID is not registered.
	ErrNotFound = errors.New("evidence not found")
	// ErrNoFile is returned when verifying evidence that has no backing file.
	ErrNoFile = errors.New("evidence has no file to verify")
)

// Service is the evidence registry backed by a domain.EvidenceStore.
type Service struct {
	store  domain.EvidenceStore
	logger zerolog.Logger
	now    func() time.Time
}

// New returns an evidence service backed by the given store.
func New(s domain.EvidenceStore) *Service {
	return &Service{
		store:  s,
		logger: log.WithComponent("evidence"),
		now:    time.Now,
	}
}

// RegisterEvidence validates, fingerprints and stores src. Registering an
// existing ID replaces it. A relative FilePath is stored as an absolute path
// so verification does not depend on the working directory.
func (s *Service) RegisterEvidence(src domain.EvidenceSource) (domain.EvidenceSource, error) {
	if src.ID == "" {
		return domain.EvidenceSource{}, ErrInvalidEvidence
	}
	for _, p := range src.Pages {
		if p <= 0 {
			return domain.EvidenceSource{}, fmt.Errorf("%w: page %d of %s", ErrInvalidEvidence, p, src.ID)
		}
	}

	src.Digest = ""
	if src.FilePath != "" {
		abs, err := filepath.Abs(src.FilePath)
		if err != nil {
			return domain.EvidenceSource{}, fmt.Errorf("resolving %s: %w", src.FilePath, err)
		}
		src.FilePath = abs
		digest, err := crypto.DigestFile(src.FilePath)
		if err != nil {
			// A missing exhibit file is allowed; it may be collected later.
			s.logger.Warn().
				Err(err).
				Str("evidence_id", src.ID.String()).
				Str("path", src.FilePath).
				Msg("evidence file not hashed")
		} else {
			src.Digest = digest
		}
	}
	if src.AddedUTC == 0 {
		src.AddedUTC = s.now().UTC().Unix()
	}

	if err := s.store.SaveEvidence(src); err != nil {
		return domain.EvidenceSource{}, fmt.Errorf("saving evidence %s: %w", src.ID, err)
	}
	s.logger.Info().
		Str("evidence_id", src.ID.String()).
		Str("exhibit", src.Exhibit).
		Msg("evidence registered")
	return src, nil
}

// GetEvidence retrieves evidence by ID.
func (s *Service) GetEvidence(id domain.EvidenceID) (domain.EvidenceSource, bool, error) {
	return s.store.LoadEvidence(id)
}

// ListEvidence returns all evidence ordered by exhibit label, then ID.
// Evidence without an exhibit sorts last.
func (s *Service) ListEvidence() ([]domain.EvidenceSource, error) {
	all, err := s.store.ListEvidence()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if (a.Exhibit == "") != (b.Exhibit == "") {
			return a.Exhibit != ""
		}
		if a.Exhibit != b.Exhibit {
			return a.Exhibit < b.Exhibit
		}
		return a.ID < b.ID
	})
	return all, nil
}

// ValidateCitations reports whether every ID is registered. Missing IDs are
// returned in input order.
func (s *Service) ValidateCitations(ids []domain.EvidenceID) (bool, []domain.EvidenceID, error) {
	var missing []domain.EvidenceID
	for _, id := range ids {
		_, ok, err := s.store.LoadEvidence(id)
		if err != nil {
			return false, nil, err
		}
		if !ok {
			missing = append(missing, id)
		}
	}
	return len(missing) == 0, missing, nil
}

// VerifyEvidence re-hashes the evidence file and compares it with the digest
// recorded at registration.
func (s *Service) VerifyEvidence(id domain.EvidenceID) (bool, error) {
	src, ok, err := s.store.LoadEvidence(id)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if src.FilePath == "" || src.Digest == "" {
		return false, fmt.Errorf("%w: %s", ErrNoFile, id)
	}
	digest, err := crypto.DigestFile(src.FilePath)
	if err != nil {
		return false, err
	}
	return digest == src.Digest, nil
}

// Compile-time assertion that Service implements domain.EvidenceService.
var _ domain.EvidenceService = (*Service)(nil)
