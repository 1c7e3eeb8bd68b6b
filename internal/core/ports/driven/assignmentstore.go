package driven

import (
	"context"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
)

// AssignmentStore persists assignment windows.
type AssignmentStore interface {
	// Save stores an assignment. A row with the same instance code and
	// internal name is updated in place, never duplicated.
	Save(ctx context.Context, assignment domain.StoredAssignment) error

	// Get retrieves an assignment by its internal name.
	// Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, instanceCode, internalName string) (*domain.StoredAssignment, error)

	// List returns all assignments of an instance ordered by due date.
	List(ctx context.Context, instanceCode string) ([]domain.StoredAssignment, error)
}

// SyncRunStore records the outcome of sync runs.
type SyncRunStore interface {
	// RecordRun persists a finished run.
	RecordRun(ctx context.Context, run domain.SyncRun) error

	// LastRun returns the most recent run of an instance.
	// Returns domain.ErrNotFound if no run was recorded.
	LastRun(ctx context.Context, instanceCode string) (*domain.SyncRun, error)
}
