package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Run Errors.

	// ErrSetupRequired indicates the configuration document did not exist
	// and a template was written in its place. The operator must edit it
	// before a real run.
	ErrSetupRequired = errors.New("setup required")

	// ErrInvalidConfig indicates the configuration document is incomplete
	// or malformed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFetchFailed indicates the remote assignment list could not be
	// retrieved. It is fatal to the current run.
	ErrFetchFailed = errors.New("fetch assignments failed")

	// ErrDecisionAborted indicates no answer can be obtained for an
	// assignment, e.g. because input was closed.
	ErrDecisionAborted = errors.New("decision aborted")

	// ErrInvalidKind indicates an assignment kind outside c, cpp, none.
	ErrInvalidKind = errors.New("invalid assignment kind")
)
