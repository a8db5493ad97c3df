package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"docket/internal/domain"
)

// CourtProfileDirStore reads and writes court profiles as one YAML file per
// court (<id>.yaml) in a directory. A missing directory holds no profiles.
type CourtProfileDirStore struct {
	dir string
	mu  sync.Mutex
}

// NewCourtProfileDirStore returns a store over dir.
func NewCourtProfileDirStore(dir string) *CourtProfileDirStore {
	return &CourtProfileDirStore{dir: dir}
}

// Dir returns the directory the store reads from.
func (s *CourtProfileDirStore) Dir() string { return s.dir }

// LoadCourtProfiles parses every *.yaml / *.yml file, sorted by file name.
// Each file is decoded over domain.DefaultCourtProfile.
func (s *CourtProfileDirStore) LoadCourtProfiles() ([]domain.CourtProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]domain.CourtProfile, 0, len(names))
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, err
		}
		p := domain.DefaultCourtProfile()
		if err := yaml.Unmarshal(b, &p); err != nil {
			return nil, fmt.Errorf("parsing court profile %s: %w", name, err)
		}
		if p.ID == "" {
			p.ID = domain.CourtID(strings.TrimSuffix(name, filepath.Ext(name)))
		}
		out = append(out, p)
	}
	return out, nil
}

// SaveCourtProfile writes profile to <dir>/<id>.yaml.
func (s *CourtProfileDirStore) SaveCourtProfile(profile domain.CourtProfile) error {
	id := profile.ID.String()
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return fmt.Errorf("invalid court id %q", id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	b, err := yaml.Marshal(profile)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, id+".yaml"), b, 0o600)
}

// Compile-time assertion that CourtProfileDirStore implements domain.CourtProfileStore.
var _ domain.CourtProfileStore = (*CourtProfileDirStore)(nil)
