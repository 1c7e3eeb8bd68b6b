package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driven"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driving"
)

// Ensure CatalogueService implements the interface.
var _ driving.AssignmentCatalogue = (*CatalogueService)(nil)

// csvHeader is the column layout of exported assignment windows.
var csvHeader = []string{
	"name", "canvas_id", "original_name", "open_at", "due_at", "assignment_type", "file_count",
}

// CatalogueService reads back stored assignment windows for one instance.
type CatalogueService struct {
	store        driven.AssignmentStore
	runStore     driven.SyncRunStore
	instanceCode string
}

// NewCatalogueService creates a new catalogue service.
// The runStore is optional.
func NewCatalogueService(
	store driven.AssignmentStore, runStore driven.SyncRunStore, instanceCode string,
) *CatalogueService {
	return &CatalogueService{
		store:        store,
		runStore:     runStore,
		instanceCode: instanceCode,
	}
}

// List returns the stored assignments of the instance.
func (s *CatalogueService) List(ctx context.Context) ([]domain.StoredAssignment, error) {
	assignments, err := s.store.List(ctx, s.instanceCode)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

// ExportCSV writes the stored assignments as CSV, one row per assignment.
func (s *CatalogueService) ExportCSV(ctx context.Context, w io.Writer) error {
	assignments, err := s.List(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, a := range assignments {
		record := []string{
			a.InternalName,
			strconv.FormatInt(a.RemoteID, 10),
			a.OriginalName,
			formatTime(a.OpenAt),
			formatTime(a.DueAt),
			a.Kind.String(),
			strconv.Itoa(a.FileCount),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", a.InternalName, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// LastRun returns the most recent recorded sync run.
func (s *CatalogueService) LastRun(ctx context.Context) (*domain.SyncRun, error) {
	if s.runStore == nil {
		return nil, domain.ErrNotFound
	}
	return s.runStore.LastRun(ctx, s.instanceCode)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
