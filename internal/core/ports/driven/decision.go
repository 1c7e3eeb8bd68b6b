package driven

import (
	"context"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
)

// DecisionSource answers the metadata questions asked about each assignment.
// Implementations may block (e.g. waiting for an operator) but must return
// domain.ErrDecisionAborted once no answer can ever arrive.
type DecisionSource interface {
	// Kind decides the assignment kind.
	Kind(ctx context.Context, assignment domain.RemoteAssignment) (domain.KindAnswer, error)

	// FileCount decides how many files a submission should contain.
	FileCount(ctx context.Context, assignment domain.RemoteAssignment) (domain.FileCountAnswer, error)
}
