package driving

import (
	"context"
	"io"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
)

// AssignmentCatalogue reads back what previous syncs stored.
type AssignmentCatalogue interface {
	// List returns the stored assignments of the configured instance.
	List(ctx context.Context) ([]domain.StoredAssignment, error)

	// ExportCSV writes the stored assignments as CSV.
	ExportCSV(ctx context.Context, w io.Writer) error

	// LastRun returns the most recent recorded sync run.
	LastRun(ctx context.Context) (*domain.SyncRun, error)
}
