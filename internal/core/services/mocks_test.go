package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driven"
)

// --- Mock implementations shared by the service tests ---

// mockAssignmentSource implements driven.AssignmentSource.
type mockAssignmentSource struct {
	assignments []domain.RemoteAssignment
	err         error
	calls       int
	courseID    int64
}

func (m *mockAssignmentSource) ListAssignments(_ context.Context, courseID int64) ([]domain.RemoteAssignment, error) {
	m.calls++
	m.courseID = courseID
	if m.err != nil {
		return nil, m.err
	}
	return m.assignments, nil
}

// recordingStore implements driven.AssignmentStore, failing on chosen
// internal names and remembering every call.
type recordingStore struct {
	failOn map[string]error
	saved  []domain.StoredAssignment
	calls  []string
}

var _ driven.AssignmentStore = (*recordingStore)(nil)

func newRecordingStore() *recordingStore {
	return &recordingStore{failOn: make(map[string]error)}
}

func (s *recordingStore) Save(_ context.Context, a domain.StoredAssignment) error {
	s.calls = append(s.calls, a.InternalName)
	if err, ok := s.failOn[a.InternalName]; ok {
		return err
	}
	s.saved = append(s.saved, a)
	return nil
}

func (s *recordingStore) Get(_ context.Context, _, name string) (*domain.StoredAssignment, error) {
	for i := range s.saved {
		if s.saved[i].InternalName == name {
			return &s.saved[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *recordingStore) List(_ context.Context, _ string) ([]domain.StoredAssignment, error) {
	return s.saved, nil
}

// scriptedDecisions implements driven.DecisionSource by replaying answers
// in order. Running out of answers aborts.
type scriptedDecisions struct {
	kinds      []domain.KindAnswer
	counts     []domain.FileCountAnswer
	kindAsked  []string
	countAsked []string
}

func (d *scriptedDecisions) Kind(_ context.Context, a domain.RemoteAssignment) (domain.KindAnswer, error) {
	d.kindAsked = append(d.kindAsked, a.Name)
	if len(d.kinds) == 0 {
		return domain.KindAnswer{}, fmt.Errorf("%w: script exhausted", domain.ErrDecisionAborted)
	}
	answer := d.kinds[0]
	d.kinds = d.kinds[1:]
	return answer, nil
}

func (d *scriptedDecisions) FileCount(_ context.Context, a domain.RemoteAssignment) (domain.FileCountAnswer, error) {
	d.countAsked = append(d.countAsked, a.Name)
	if len(d.counts) == 0 {
		return domain.FileCountAnswer{}, fmt.Errorf("%w: script exhausted", domain.ErrDecisionAborted)
	}
	answer := d.counts[0]
	d.counts = d.counts[1:]
	return answer, nil
}

// failingRunStore implements driven.SyncRunStore and always fails.
type failingRunStore struct{}

func (failingRunStore) RecordRun(_ context.Context, _ domain.SyncRun) error {
	return errors.New("disk full")
}

func (failingRunStore) LastRun(_ context.Context, _ string) (*domain.SyncRun, error) {
	return nil, errors.New("disk full")
}

func remoteAssignments(names ...string) []domain.RemoteAssignment {
	out := make([]domain.RemoteAssignment, 0, len(names))
	for i, n := range names {
		out = append(out, domain.RemoteAssignment{ID: int64(100 + i), Name: n})
	}
	return out
}
