package domain

import "time"

// SyncRequest describes one sync run.
type SyncRequest struct {
	CourseID int64
	Filter   FilterSpec

	// DryRun resolves metadata but skips persistence.
	DryRun bool
}

// RecordFailure describes one assignment that could not be persisted.
type RecordFailure struct {
	RemoteID     int64
	OriginalName string
	InternalName string
	Err          error
}

// SyncReport is the structured outcome of a sync run.
type SyncReport struct {
	RunID      string
	CourseID   int64
	StartedAt  time.Time
	FinishedAt time.Time
	DryRun     bool

	// Fetched is the number of assignments returned by the LMS.
	Fetched int

	// Retained is the number that passed the filter.
	Retained int

	// Stored is the number persisted successfully.
	Stored int

	// Assignments are the resolved rows in fetch order, including failures.
	Assignments []StoredAssignment

	// Failures are the rows the store rejected.
	Failures []RecordFailure
}

// Failed returns the number of rows the store rejected.
func (r *SyncReport) Failed() int {
	return len(r.Failures)
}

// SyncRun is the persisted summary of a SyncReport.
type SyncRun struct {
	ID           string
	InstanceCode string
	CourseID     int64
	StartedAt    time.Time
	FinishedAt   time.Time
	Fetched      int
	Retained     int
	Stored       int
	Failed       int
}

// Summary converts a report into its persisted form.
func (r *SyncReport) Summary(instanceCode string) SyncRun {
	return SyncRun{
		ID:           r.RunID,
		InstanceCode: instanceCode,
		CourseID:     r.CourseID,
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
		Fetched:      r.Fetched,
		Retained:     r.Retained,
		Stored:       r.Stored,
		Failed:       r.Failed(),
	}
}
