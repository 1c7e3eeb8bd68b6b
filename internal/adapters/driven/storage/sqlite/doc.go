// Package sqlite provides a SQLite-based implementation of the assignment
// persistence ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements multiple store interfaces
// through a single database connection:
//
//   - AssignmentStore: assignment window persistence
//   - SyncRunStore: sync run history
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// The database lives at the paths.sqlite3_path of the configuration, which is
// normally the grading instance's own database file.
package sqlite
