package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/mizzou-cs-core/assignment-window/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driven"
)

// Store is a SQLite-based storage that provides access to the assignment
// store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the SQLite database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("%w: empty database path", domain.ErrInvalidInput)
	}

	// Ensure directory exists
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// AssignmentStore returns an AssignmentStore interface backed by this store.
func (s *Store) AssignmentStore() driven.AssignmentStore {
	return &assignmentStore{store: s}
}

// SyncRunStore returns a SyncRunStore interface backed by this store.
func (s *Store) SyncRunStore() driven.SyncRunStore {
	return &syncRunStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Assignment Store ====================

// assignmentStore implements driven.AssignmentStore.
type assignmentStore struct {
	store *Store
}

var _ driven.AssignmentStore = (*assignmentStore)(nil)

const assignmentColumns = `instance_code, name, canvas_id, original_name, open_at, due_at,
	assignment_type, file_count, updated_at`

// Save stores or updates an assignment keyed by instance code and name.
func (s *assignmentStore) Save(ctx context.Context, a domain.StoredAssignment) error {
	if a.InternalName == "" {
		return fmt.Errorf("%w: empty assignment name", domain.ErrInvalidInput)
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO assignments (`+assignmentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(instance_code, name) DO UPDATE SET
			canvas_id = excluded.canvas_id,
			original_name = excluded.original_name,
			open_at = excluded.open_at,
			due_at = excluded.due_at,
			assignment_type = excluded.assignment_type,
			file_count = excluded.file_count,
			updated_at = excluded.updated_at
	`, a.InstanceCode, a.InternalName, a.RemoteID, a.OriginalName,
		nullTime(a.OpenAt), nullTime(a.DueAt),
		string(a.Kind), a.FileCount, a.UpdatedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving assignment %s: %w", a.InternalName, err)
	}
	return nil
}

// Get retrieves an assignment by instance code and internal name.
func (s *assignmentStore) Get(
	ctx context.Context, instanceCode, internalName string,
) (*domain.StoredAssignment, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT `+assignmentColumns+`
		FROM assignments WHERE instance_code = ? AND name = ?
	`, instanceCode, internalName)

	a, err := scanAssignment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// List returns the assignments of an instance ordered by due date, undated last.
func (s *assignmentStore) List(ctx context.Context, instanceCode string) ([]domain.StoredAssignment, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+assignmentColumns+`
		FROM assignments WHERE instance_code = ?
		ORDER BY due_at IS NULL, due_at, name
	`, instanceCode)
	if err != nil {
		return nil, fmt.Errorf("querying assignments: %w", err)
	}
	defer rows.Close()

	var assignments []domain.StoredAssignment //nolint:prealloc // size unknown from query
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}

	return assignments, nil
}

// ==================== Sync Run Store ====================

// syncRunStore implements driven.SyncRunStore.
type syncRunStore struct {
	store *Store
}

var _ driven.SyncRunStore = (*syncRunStore)(nil)

// RecordRun stores a finished run.
func (s *syncRunStore) RecordRun(ctx context.Context, run domain.SyncRun) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO sync_runs (id, instance_code, course_id, started_at, finished_at,
			fetched, retained, stored, failed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.InstanceCode, run.CourseID, run.StartedAt.UTC(), run.FinishedAt.UTC(),
		run.Fetched, run.Retained, run.Stored, run.Failed)

	if err != nil {
		return fmt.Errorf("saving sync run: %w", err)
	}
	return nil
}

// LastRun returns the most recently started run of an instance.
func (s *syncRunStore) LastRun(ctx context.Context, instanceCode string) (*domain.SyncRun, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, instance_code, course_id, started_at, finished_at,
			fetched, retained, stored, failed
		FROM sync_runs WHERE instance_code = ?
		ORDER BY started_at DESC
		LIMIT 1
	`, instanceCode)

	var run domain.SyncRun
	var startedAt, finishedAt sql.NullTime
	if err := row.Scan(&run.ID, &run.InstanceCode, &run.CourseID, &startedAt, &finishedAt,
		&run.Fetched, &run.Retained, &run.Stored, &run.Failed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning sync run: %w", err)
	}

	if startedAt.Valid {
		run.StartedAt = startedAt.Time.UTC()
	}
	if finishedAt.Valid {
		run.FinishedAt = finishedAt.Time.UTC()
	}

	return &run, nil
}

// ==================== Helper Functions ====================

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAssignment(row scanner) (*domain.StoredAssignment, error) {
	var a domain.StoredAssignment
	var kind string
	var openAt, dueAt, updatedAt sql.NullTime
	if err := row.Scan(&a.InstanceCode, &a.InternalName, &a.RemoteID, &a.OriginalName,
		&openAt, &dueAt, &kind, &a.FileCount, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning assignment: %w", err)
	}

	a.Kind = domain.AssignmentKind(kind)
	a.OpenAt = timePtr(openAt)
	a.DueAt = timePtr(dueAt)
	if updatedAt.Valid {
		a.UpdatedAt = updatedAt.Time.UTC()
	}
	return &a, nil
}

// nullTime converts an optional time to a driver value (UTC or NULL).
func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	u := t.Time.UTC()
	return &u
}
