package store

import (
	"context"
	"sync"

	"docket/internal/domain"
)

// MemoryResultLog is a ResultLog that lives only for the process lifetime.
type MemoryResultLog struct {
	mu      sync.Mutex
	results []domain.TaskResult
}

// NewMemoryResultLog returns an empty in-memory log.
func NewMemoryResultLog() *MemoryResultLog { return &MemoryResultLog{} }

// AppendResult adds r to the log.
func (l *MemoryResultLog) AppendResult(_ context.Context, r domain.TaskResult) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.results = append(l.results, r)
	return nil
}

// ListResults returns a copy of the log.
func (l *MemoryResultLog) ListResults(_ context.Context) ([]domain.TaskResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.TaskResult(nil), l.results...), nil
}

var _ domain.ResultLog = (*MemoryResultLog)(nil)
