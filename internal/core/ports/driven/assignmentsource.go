package driven

import (
	"context"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
)

// AssignmentSource fetches assignments from a learning management system.
type AssignmentSource interface {
	// ListAssignments returns every assignment of a course in the order
	// the LMS reports them. Implementations handle pagination internally
	// and either return the complete list or an error, never a partial list.
	ListAssignments(ctx context.Context, courseID int64) ([]domain.RemoteAssignment, error)
}
