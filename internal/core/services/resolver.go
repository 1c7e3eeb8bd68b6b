package services

import (
	"context"
	"fmt"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driven"
	"github.com/mizzou-cs-core/assignment-window/internal/logger"
)

// MetadataResolver decides the kind and file count of each assignment in a run.
// Answers marked apply-to-all become sticky and are reused without asking.
// A resolver is scoped to one run; create a new one per sync.
type MetadataResolver struct {
	decisions driven.DecisionSource
	state     domain.Resolution
}

// NewMetadataResolver creates a resolver starting from seed.
// Seeded fields are sticky from the first assignment.
func NewMetadataResolver(decisions driven.DecisionSource, seed domain.Resolution) *MetadataResolver {
	return &MetadataResolver{
		decisions: decisions,
		state:     seed,
	}
}

// Resolve returns the kind and file count for one assignment.
func (r *MetadataResolver) Resolve(
	ctx context.Context, assignment domain.RemoteAssignment,
) (domain.AssignmentKind, int, error) {
	kind, err := r.resolveKind(ctx, assignment)
	if err != nil {
		return "", 0, err
	}
	count, err := r.resolveFileCount(ctx, assignment)
	if err != nil {
		return "", 0, err
	}
	return kind, count, nil
}

// State returns a copy of the sticky answers so far.
func (r *MetadataResolver) State() domain.Resolution {
	return r.state
}

func (r *MetadataResolver) resolveKind(
	ctx context.Context, assignment domain.RemoteAssignment,
) (domain.AssignmentKind, error) {
	if r.state.Kind != nil {
		return *r.state.Kind, nil
	}
	if r.decisions == nil {
		return "", fmt.Errorf("%w: no decision source for assignment kind", domain.ErrDecisionAborted)
	}

	answer, err := r.decisions.Kind(ctx, assignment)
	if err != nil {
		return "", fmt.Errorf("decide kind for %q: %w", assignment.Name, err)
	}
	if !answer.Kind.IsValid() {
		return "", fmt.Errorf("decide kind for %q: %w: %q", assignment.Name, domain.ErrInvalidKind, answer.Kind)
	}
	if answer.ApplyToAll {
		k := answer.Kind
		r.state.Kind = &k
		logger.Info("All remaining assignments will be %s type", k)
	}
	return answer.Kind, nil
}

func (r *MetadataResolver) resolveFileCount(
	ctx context.Context, assignment domain.RemoteAssignment,
) (int, error) {
	if r.state.FileCount != nil {
		return *r.state.FileCount, nil
	}
	if r.decisions == nil {
		return 0, fmt.Errorf("%w: no decision source for file count", domain.ErrDecisionAborted)
	}

	answer, err := r.decisions.FileCount(ctx, assignment)
	if err != nil {
		return 0, fmt.Errorf("decide file count for %q: %w", assignment.Name, err)
	}
	if answer.FileCount < 0 {
		return 0, fmt.Errorf("decide file count for %q: %w: %d", assignment.Name, domain.ErrInvalidInput, answer.FileCount)
	}
	if answer.ApplyToAll {
		n := answer.FileCount
		r.state.FileCount = &n
		logger.Info("All remaining assignments will need %d files", n)
	}
	return answer.FileCount, nil
}
