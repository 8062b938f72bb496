package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/prelayn/prelayn/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.JobStore = (*Store)(nil)

// Store is the SQLite-backed job history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.prelayn/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".prelayn", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

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

func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

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
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Save stores a finished job record.
func (s *Store) Save(ctx context.Context, record domain.JobRecord) error {
	layers, err := json.Marshal(record.Job.Layers)
	if err != nil {
		return fmt.Errorf("marshaling layers: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO jobs (
			id, backend, prefix, in_file, out_file, layers,
			status, error, layers_renamed, layers_skipped,
			created_at, finished_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.Job.ID,
		record.Job.Backend,
		record.Job.Prefix.String(),
		record.Job.InFile,
		record.Job.OutFile,
		string(layers),
		string(record.Status),
		record.Error,
		record.LayersRenamed,
		record.LayersSkipped,
		record.Job.CreatedAt.UTC(),
		record.FinishedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving job %s: %w", record.Job.ID, err)
	}
	return nil
}

// Get retrieves a record by job ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.JobRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, backend, prefix, in_file, out_file, layers,
		       status, error, layers_renamed, layers_skipped,
		       created_at, finished_at
		FROM jobs WHERE id = ?
	`, id)

	record, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting job %s: %w", id, err)
	}
	return record, nil
}

// List returns records ordered by finish time, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]domain.JobRecord, error) {
	query := `
		SELECT id, backend, prefix, in_file, out_file, layers,
		       status, error, layers_renamed, layers_skipped,
		       created_at, finished_at
		FROM jobs ORDER BY finished_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	var records []domain.JobRecord
	for rows.Next() {
		record, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating jobs: %w", err)
	}
	return records, nil
}

// Clear deletes all records.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM jobs"); err != nil {
		return fmt.Errorf("clearing jobs: %w", err)
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanJob(sc scanner) (*domain.JobRecord, error) {
	var (
		record     domain.JobRecord
		prefix     string
		layers     string
		status     string
		createdAt  time.Time
		finishedAt time.Time
	)

	err := sc.Scan(
		&record.Job.ID,
		&record.Job.Backend,
		&prefix,
		&record.Job.InFile,
		&record.Job.OutFile,
		&layers,
		&status,
		&record.Error,
		&record.LayersRenamed,
		&record.LayersSkipped,
		&createdAt,
		&finishedAt,
	)
	if err != nil {
		return nil, err
	}

	// The prefix was validated before it was stored.
	record.Job.Prefix = domain.Prefix(prefix)
	record.Status = domain.JobStatus(status)
	record.Job.CreatedAt = createdAt
	record.FinishedAt = finishedAt

	if err := json.Unmarshal([]byte(layers), &record.Job.Layers); err != nil {
		return nil, fmt.Errorf("unmarshaling layers: %w", err)
	}
	return &record, nil
}
