package driving

import (
	"context"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
)

// AssignmentSync pulls assignment windows from the LMS into the store.
type AssignmentSync interface {
	// Sync runs one fetch, filter, resolve and persist pass for a course.
	// A returned error means the run failed as a whole; per-assignment
	// persistence failures are reported in SyncReport.Failures instead.
	Sync(ctx context.Context, req domain.SyncRequest) (*domain.SyncReport, error)
}
