package domain

// KindAnswer is one answer to "what kind of assignment is this?".
type KindAnswer struct {
	Kind AssignmentKind

	// ApplyToAll makes Kind sticky for the remaining assignments of the run.
	ApplyToAll bool
}

// FileCountAnswer is one answer to "how many files should a submission have?".
type FileCountAnswer struct {
	FileCount int

	// ApplyToAll makes FileCount sticky for the remaining assignments of the run.
	ApplyToAll bool
}

// Resolution holds the sticky answers for one sync run.
// A nil field means the next assignment must be asked about.
type Resolution struct {
	Kind      *AssignmentKind
	FileCount *int
}

// NewResolution returns a Resolution pre-seeded with any known answers.
// A blank kind or negative file count leaves the field unset.
func NewResolution(kind AssignmentKind, fileCount int) Resolution {
	var r Resolution
	if kind != "" {
		k := kind
		r.Kind = &k
	}
	if fileCount >= 0 {
		n := fileCount
		r.FileCount = &n
	}
	return r
}

// Complete reports whether both fields are sticky, i.e. no more questions
// will be asked this run.
func (r Resolution) Complete() bool {
	return r.Kind != nil && r.FileCount != nil
}
