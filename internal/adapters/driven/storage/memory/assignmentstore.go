package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driven"
)

// Ensure AssignmentStore implements the interface.
var _ driven.AssignmentStore = (*AssignmentStore)(nil)

// assignmentKey is the idempotency key of a stored assignment.
type assignmentKey struct {
	instanceCode string
	internalName string
}

// AssignmentStore is an in-memory implementation of driven.AssignmentStore.
type AssignmentStore struct {
	mu          sync.RWMutex
	assignments map[assignmentKey]domain.StoredAssignment
}

// NewAssignmentStore creates a new in-memory assignment store.
func NewAssignmentStore() *AssignmentStore {
	return &AssignmentStore{
		assignments: make(map[assignmentKey]domain.StoredAssignment),
	}
}

// Save stores or updates an assignment.
func (s *AssignmentStore) Save(_ context.Context, assignment domain.StoredAssignment) error {
	if assignment.InternalName == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments[assignmentKey{assignment.InstanceCode, assignment.InternalName}] = assignment
	return nil
}

// Get retrieves an assignment by internal name.
func (s *AssignmentStore) Get(_ context.Context, instanceCode, internalName string) (*domain.StoredAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assignment, ok := s.assignments[assignmentKey{instanceCode, internalName}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &assignment, nil
}

// List returns all assignments of an instance ordered by due date.
// Assignments without a due date sort last.
func (s *AssignmentStore) List(_ context.Context, instanceCode string) ([]domain.StoredAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.StoredAssignment, 0, len(s.assignments))
	for key, assignment := range s.assignments {
		if key.instanceCode == instanceCode {
			result = append(result, assignment)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].DueAt, result[j].DueAt
		switch {
		case a == nil && b == nil:
			return result[i].InternalName < result[j].InternalName
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return result[i].InternalName < result[j].InternalName
		default:
			return a.Before(*b)
		}
	})
	return result, nil
}

// Count returns the number of stored assignments across all instances.
func (s *AssignmentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.assignments)
}
