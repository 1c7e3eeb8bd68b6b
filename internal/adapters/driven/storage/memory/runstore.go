package memory

import (
	"context"
	"sync"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driven"
)

// Ensure SyncRunStore implements the interface.
var _ driven.SyncRunStore = (*SyncRunStore)(nil)

// SyncRunStore is an in-memory implementation of driven.SyncRunStore.
type SyncRunStore struct {
	mu   sync.RWMutex
	runs []domain.SyncRun
}

// NewSyncRunStore creates a new in-memory sync run store.
func NewSyncRunStore() *SyncRunStore {
	return &SyncRunStore{}
}

// RecordRun appends a finished run.
func (s *SyncRunStore) RecordRun(_ context.Context, run domain.SyncRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	return nil
}

// LastRun returns the most recently recorded run of an instance.
func (s *SyncRunStore) LastRun(_ context.Context, instanceCode string) (*domain.SyncRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.runs) - 1; i >= 0; i-- {
		if s.runs[i].InstanceCode == instanceCode {
			run := s.runs[i]
			return &run, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Runs returns every recorded run in insertion order.
func (s *SyncRunStore) Runs() []domain.SyncRun {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.SyncRun(nil), s.runs...)
}
