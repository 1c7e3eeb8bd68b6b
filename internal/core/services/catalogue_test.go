package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizzou-cs-core/assignment-window/internal/adapters/driven/storage/memory"
	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
)

func TestCatalogueService_ExportCSV(t *testing.T) {
	store := memory.NewAssignmentStore()
	ctx := context.Background()
	open := time.Date(2025, 2, 1, 14, 0, 0, 0, time.UTC)
	due := time.Date(2025, 2, 8, 5, 59, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, domain.StoredAssignment{
		InstanceCode: "inst", InternalName: "lab1", RemoteID: 9001, OriginalName: "Lab 1, Intro",
		OpenAt: &open, DueAt: &due, Kind: domain.KindC, FileCount: 2,
	}))
	require.NoError(t, store.Save(ctx, domain.StoredAssignment{
		InstanceCode: "inst", InternalName: "reading", RemoteID: 9002, OriginalName: "Reading",
		Kind: domain.KindNone,
	}))

	svc := NewCatalogueService(store, nil, "inst")
	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{
		"lab1", "9001", "Lab 1, Intro", "2025-02-01T14:00:00Z", "2025-02-08T05:59:00Z", "c", "2",
	}, rows[1])
	assert.Equal(t, []string{"reading", "9002", "Reading", "", "", "none", "0"}, rows[2])
}

func TestCatalogueService_LastRun(t *testing.T) {
	ctx := context.Background()

	withoutRuns := NewCatalogueService(memory.NewAssignmentStore(), nil, "inst")
	_, err := withoutRuns.LastRun(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	runs := memory.NewSyncRunStore()
	require.NoError(t, runs.RecordRun(ctx, domain.SyncRun{ID: "r1", InstanceCode: "inst", Stored: 4}))
	svc := NewCatalogueService(memory.NewAssignmentStore(), runs, "inst")

	last, err := svc.LastRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, last.Stored)
}
