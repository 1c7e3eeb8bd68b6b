package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driven"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driving"
	"github.com/mizzou-cs-core/assignment-window/internal/logger"
)

// Ensure SyncOrchestrator implements the interface.
var _ driving.AssignmentSync = (*SyncOrchestrator)(nil)

// SyncOrchestrator coordinates assignment synchronisation.
// Runs are sequential: one fetch, then one resolve and one write per
// assignment, in fetch order.
type SyncOrchestrator struct {
	source       driven.AssignmentSource
	store        driven.AssignmentStore
	runStore     driven.SyncRunStore
	decisions    driven.DecisionSource
	seed         domain.Resolution
	instanceCode string

	now func() time.Time
}

// NewSyncOrchestrator creates a new sync orchestrator.
// The runStore is optional - if nil, run history is not recorded.
// The seed pre-answers metadata questions for every run.
func NewSyncOrchestrator(
	source driven.AssignmentSource,
	store driven.AssignmentStore,
	runStore driven.SyncRunStore,
	decisions driven.DecisionSource,
	seed domain.Resolution,
	instanceCode string,
) *SyncOrchestrator {
	return &SyncOrchestrator{
		source:       source,
		store:        store,
		runStore:     runStore,
		decisions:    decisions,
		seed:         seed,
		instanceCode: instanceCode,
		now:          time.Now,
	}
}

// Sync fetches, filters, resolves and persists the assignments of a course.
//
//nolint:gocyclo // Orchestration function with necessary sequential steps
func (o *SyncOrchestrator) Sync(ctx context.Context, req domain.SyncRequest) (*domain.SyncReport, error) {
	if o.source == nil {
		return nil, fmt.Errorf("fetch assignments: assignment source not configured")
	}
	if o.store == nil && !req.DryRun {
		return nil, fmt.Errorf("store assignments: assignment store not configured")
	}

	report := &domain.SyncReport{
		RunID:     uuid.NewString(),
		CourseID:  req.CourseID,
		StartedAt: o.now().UTC(),
		DryRun:    req.DryRun,
	}

	// 1. Fetch. Any failure aborts the run before anything is written.
	logger.Section("Fetch")
	logger.Debug("Retrieving assignments for course %d", req.CourseID)
	remote, err := o.source.ListAssignments(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("%w: course %d: %w", domain.ErrFetchFailed, req.CourseID, err)
	}
	report.Fetched = len(remote)
	logger.Debug("Assignment count from LMS: %d", len(remote))

	// 2. Filter
	retained := req.Filter.Apply(remote)
	report.Retained = len(retained)
	logger.Info("%d of %d assignments match predicate %q", len(retained), len(remote), req.Filter.Predicate)

	// 3. Normalise, resolve and persist each assignment independently.
	logger.Section("Store")
	resolver := NewMetadataResolver(o.decisions, o.seed)
	for _, assignment := range retained {
		if err := ctx.Err(); err != nil {
			o.abort(ctx, report, err)
			return report, err
		}

		kind, fileCount, err := resolver.Resolve(ctx, assignment)
		if err != nil {
			o.abort(ctx, report, err)
			return report, err
		}

		row := domain.NewStoredAssignment(o.instanceCode, assignment, kind, fileCount)
		row.UpdatedAt = o.now().UTC()
		report.Assignments = append(report.Assignments, row)
		logger.Debug("Internal assignment name %s assigned to %q", row.InternalName, row.OriginalName)

		if req.DryRun {
			continue
		}

		if err := o.store.Save(ctx, row); err != nil {
			report.Failures = append(report.Failures, domain.RecordFailure{
				RemoteID:     row.RemoteID,
				OriginalName: row.OriginalName,
				InternalName: row.InternalName,
				Err:          err,
			})
			logger.Error("Failed to add %s (canvas id %d) to DB: %v", row.InternalName, row.RemoteID, err)
			continue
		}
		report.Stored++
		logger.Info("Added %s to DB", row.InternalName)
	}

	report.FinishedAt = o.now().UTC()
	o.recordRun(ctx, report)

	logger.Info("Sync complete: %d stored, %d failed", report.Stored, report.Failed())
	return report, nil
}

// abort records a run that stopped part way. Rows written before the
// abort stay in the store, so the run still belongs in the history.
func (o *SyncOrchestrator) abort(ctx context.Context, report *domain.SyncReport, err error) {
	report.FinishedAt = o.now().UTC()
	logger.Warn("Sync aborted after %d stored: %v", report.Stored, err)
	o.recordRun(context.WithoutCancel(ctx), report)
}

// recordRun persists the run summary. Failures here never fail the run.
func (o *SyncOrchestrator) recordRun(ctx context.Context, report *domain.SyncReport) {
	if o.runStore == nil || report.DryRun {
		return
	}
	if err := o.runStore.RecordRun(ctx, report.Summary(o.instanceCode)); err != nil {
		logger.Warn("Failed to record sync run %s: %v", report.RunID, err)
	}
}
