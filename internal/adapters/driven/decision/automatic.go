package decision

import (
	"context"
	"fmt"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driven"
)

// Ensure Automatic implements the interface.
var _ driven.DecisionSource = (*Automatic)(nil)

// Automatic answers every question with a fixed value marked apply-to-all,
// so it is asked at most once per run. An unset field aborts the run,
// since nobody is around to answer.
type Automatic struct {
	// kind is the kind of every assignment. Empty means unset.
	kind domain.AssignmentKind

	// fileCount is the file count of every assignment. Negative means unset.
	fileCount int
}

// NewAutomatic creates an automatic decision source.
func NewAutomatic(kind domain.AssignmentKind, fileCount int) *Automatic {
	return &Automatic{kind: kind, fileCount: fileCount}
}

// Kind returns the configured kind.
func (a *Automatic) Kind(ctx context.Context, _ domain.RemoteAssignment) (domain.KindAnswer, error) {
	if err := ctx.Err(); err != nil {
		return domain.KindAnswer{}, fmt.Errorf("%w: %w", domain.ErrDecisionAborted, err)
	}
	if a.kind == "" {
		return domain.KindAnswer{}, fmt.Errorf("%w: assignment type not set and no terminal to ask on",
			domain.ErrDecisionAborted)
	}
	if !a.kind.IsValid() {
		return domain.KindAnswer{}, fmt.Errorf("%w: %q", domain.ErrInvalidKind, a.kind)
	}
	return domain.KindAnswer{Kind: a.kind, ApplyToAll: true}, nil
}

// FileCount returns the configured file count.
func (a *Automatic) FileCount(ctx context.Context, _ domain.RemoteAssignment) (domain.FileCountAnswer, error) {
	if err := ctx.Err(); err != nil {
		return domain.FileCountAnswer{}, fmt.Errorf("%w: %w", domain.ErrDecisionAborted, err)
	}
	if a.fileCount < 0 {
		return domain.FileCountAnswer{}, fmt.Errorf("%w: file count not set and no terminal to ask on",
			domain.ErrDecisionAborted)
	}
	return domain.FileCountAnswer{FileCount: a.fileCount, ApplyToAll: true}, nil
}
