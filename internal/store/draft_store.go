package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"docket/internal/domain"
)

const draftsDirname = "drafts"

// ErrInvalidSessionName is returned for names that cannot be used as file names.
var ErrInvalidSessionName = errors.New("invalid session name")

// DraftFileStore keeps one JSON file per drafting session under dir/drafts.
type DraftFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewDraftFileStore returns a DraftFileStore rooted at dir.
func NewDraftFileStore(dir string) *DraftFileStore {
	return &DraftFileStore{dir: dir}
}

// SaveDraftSession writes the session, creating the drafts directory if needed.
func (s *DraftFileStore) SaveDraftSession(session domain.DraftSession) error {
	path, err := s.sessionPath(session.Name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return writeJSON(path, session, 0o600)
}

// LoadDraftSession reads a session; ok is false if it was never saved.
func (s *DraftFileStore) LoadDraftSession(name domain.SessionName) (domain.DraftSession, bool, error) {
	path, err := s.sessionPath(name)
	if err != nil {
		return domain.DraftSession{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(path)
	if err != nil || b == nil {
		return domain.DraftSession{}, false, err
	}
	var session domain.DraftSession
	if err := json.Unmarshal(b, &session); err != nil {
		return domain.DraftSession{}, false, err
	}
	return session, true, nil
}

// DeleteDraftSession removes a session; deleting a missing session is a no-op.
func (s *DraftFileStore) DeleteDraftSession(name domain.SessionName) error {
	path, err := s.sessionPath(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *DraftFileStore) sessionPath(name domain.SessionName) (string, error) {
	n := name.String()
	if n == "" || n == "." || n == ".." || strings.ContainsAny(n, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSessionName, n)
	}
	return filepath.Join(s.dir, draftsDirname, n+".json"), nil
}

// Compile-time assertion that DraftFileStore implements domain.DraftStore.
var _ domain.DraftStore = (*DraftFileStore)(nil)
