package store

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"docket/internal/domain"
)

const evidenceFilename = "evidence.json"

// EvidenceFileStore persists the evidence registry to a single JSON file.
type EvidenceFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewEvidenceFileStore returns an EvidenceFileStore rooted at dir.
func NewEvidenceFileStore(dir string) *EvidenceFileStore {
	return &EvidenceFileStore{dir: dir}
}

// SaveEvidence stores or replaces src keyed by its ID.
func (s *EvidenceFileStore) SaveEvidence(src domain.EvidenceSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, evidenceFilename)
	all := map[domain.EvidenceID]domain.EvidenceSource{}
	if err := readJSON(path, &all); err != nil {
		return fmt.Errorf("reading %s: %w", evidenceFilename, err)
	}
	all[src.ID] = src
	return writeJSON(path, all, 0o600)
}

// LoadEvidence retrieves the evidence with the given ID.
func (s *EvidenceFileStore) LoadEvidence(id domain.EvidenceID) (domain.EvidenceSource, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := map[domain.EvidenceID]domain.EvidenceSource{}
	if err := readJSON(filepath.Join(s.dir, evidenceFilename), &all); err != nil {
		return domain.EvidenceSource{}, false, err
	}
	src, ok := all[id]
	return src, ok, nil
}

// ListEvidence returns every stored evidence source sorted by ID.
func (s *EvidenceFileStore) ListEvidence() ([]domain.EvidenceSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := map[domain.EvidenceID]domain.EvidenceSource{}
	if err := readJSON(filepath.Join(s.dir, evidenceFilename), &all); err != nil {
		return nil, err
	}
	out := make([]domain.EvidenceSource, 0, len(all))
	for _, src := range all {
		out = append(out, src)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Compile-time assertion that EvidenceFileStore implements domain.EvidenceStore.
var _ domain.EvidenceStore = (*EvidenceFileStore)(nil)
