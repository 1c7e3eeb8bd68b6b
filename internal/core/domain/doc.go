// Package domain defines the core business entities for assignment-window.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RemoteAssignment: An assignment as returned by the LMS
//   - StoredAssignment: An assignment window persisted for the grading instance
//   - FilterSpec: The name predicate and phrase blacklist for one run
//   - Resolution: Sticky kind and file count answers for one run
//   - SyncReport: The outcome of one sync run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
