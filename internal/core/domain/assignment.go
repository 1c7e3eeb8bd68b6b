package domain

import (
	"fmt"
	"strings"
	"time"
)

// AssignmentKind classifies what language a submission is graded as.
type AssignmentKind string

// Available assignment kinds.
const (
	// KindC is a C submission.
	KindC AssignmentKind = "c"

	// KindCPP is a C++ submission.
	KindCPP AssignmentKind = "cpp"

	// KindNone is an assignment with no compiled submission.
	KindNone AssignmentKind = "none"
)

// AllAssignmentKinds returns every valid kind in prompt order.
func AllAssignmentKinds() []AssignmentKind {
	return []AssignmentKind{KindC, KindCPP, KindNone}
}

// IsValid returns true if the kind is recognised.
func (k AssignmentKind) IsValid() bool {
	switch k {
	case KindC, KindCPP, KindNone:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k AssignmentKind) String() string {
	return string(k)
}

// ParseAssignmentKind parses a kind, ignoring case and surrounding space.
func ParseAssignmentKind(s string) (AssignmentKind, error) {
	k := AssignmentKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
	return k, nil
}

// RemoteAssignment is an assignment record as returned by the LMS.
// It lives only for the duration of one fetch.
type RemoteAssignment struct {
	// ID is the stable identifier assigned by the LMS.
	ID int64

	// Name is the display name, exactly as the LMS returned it.
	Name string

	// OpenAt is when the assignment unlocks. Nil if never locked.
	OpenAt *time.Time

	// DueAt is when the assignment is due. Nil if no due date.
	DueAt *time.Time
}

// StoredAssignment is an assignment window persisted for a grading instance.
// InstanceCode and InternalName together form the idempotency key.
type StoredAssignment struct {
	// InternalName is NormalizeName(OriginalName).
	InternalName string

	// InstanceCode identifies the grading instance the row belongs to.
	InstanceCode string

	// RemoteID is the LMS assignment ID.
	RemoteID int64

	// OriginalName is the display name before normalisation.
	OriginalName string

	// OpenAt is when the assignment unlocks (UTC).
	OpenAt *time.Time

	// DueAt is when the assignment is due (UTC).
	DueAt *time.Time

	// Kind is the submission language.
	Kind AssignmentKind

	// FileCount is the number of files a submission is expected to contain.
	FileCount int

	// UpdatedAt is when the row was last written.
	UpdatedAt time.Time
}

// NewStoredAssignment folds a remote record and its resolved metadata into
// a row ready for persistence.
func NewStoredAssignment(
	instanceCode string, remote RemoteAssignment, kind AssignmentKind, fileCount int,
) StoredAssignment {
	return StoredAssignment{
		InternalName: NormalizeName(remote.Name),
		InstanceCode: instanceCode,
		RemoteID:     remote.ID,
		OriginalName: remote.Name,
		OpenAt:       utcPtr(remote.OpenAt),
		DueAt:        utcPtr(remote.DueAt),
		Kind:         kind,
		FileCount:    fileCount,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
