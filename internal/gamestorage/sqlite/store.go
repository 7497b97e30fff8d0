// Package sqlite provides SQLite-backed persistence for synthesized
// projects and optimization reports.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/gameforge/internal/gamestorage"
	"github.com/louisbranch/gameforge/internal/gamestorage/sqlite/migrations"
	"github.com/louisbranch/gameforge/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for game records.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// DB returns the underlying sql.DB instance.
func (s *Store) DB() *sql.DB {
	if s == nil {
		return nil
	}
	return s.sqlDB
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// PutProject persists a project record, replacing any record with the same
// title.
func (s *Store) PutProject(ctx context.Context, record gamestorage.ProjectRecord) error {
	title := strings.TrimSpace(record.Title)
	if title == "" {
		return fmt.Errorf("project title is required")
	}
	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO projects (title, spec_json, project_json, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(title) DO UPDATE SET
    spec_json = excluded.spec_json,
    project_json = excluded.project_json,
    updated_at = excluded.updated_at
`, title, record.SpecJSON, record.ProjectJSON, toMillis(record.CreatedAt), toMillis(record.UpdatedAt))
	if err != nil {
		return fmt.Errorf("put project: %w", err)
	}
	return nil
}

// GetProject returns the project record stored under the given title.
func (s *Store) GetProject(ctx context.Context, title string) (gamestorage.ProjectRecord, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT title, spec_json, project_json, created_at, updated_at
FROM projects WHERE title = ?
`, strings.TrimSpace(title))

	var (
		record    gamestorage.ProjectRecord
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&record.Title, &record.SpecJSON, &record.ProjectJSON, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return gamestorage.ProjectRecord{}, gamestorage.ErrNotFound
		}
		return gamestorage.ProjectRecord{}, fmt.Errorf("get project: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

// PutReport persists a report record, replacing any record with the same
// title.
func (s *Store) PutReport(ctx context.Context, record gamestorage.ReportRecord) error {
	title := strings.TrimSpace(record.Title)
	if title == "" {
		return fmt.Errorf("report title is required")
	}
	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO reports (title, game_json, report_json, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(title) DO UPDATE SET
    game_json = excluded.game_json,
    report_json = excluded.report_json,
    updated_at = excluded.updated_at
`, title, record.GameJSON, record.ReportJSON, toMillis(record.CreatedAt), toMillis(record.UpdatedAt))
	if err != nil {
		return fmt.Errorf("put report: %w", err)
	}
	return nil
}

// GetReport returns the report record stored under the given title.
func (s *Store) GetReport(ctx context.Context, title string) (gamestorage.ReportRecord, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT title, game_json, report_json, created_at, updated_at
FROM reports WHERE title = ?
`, strings.TrimSpace(title))

	var (
		record    gamestorage.ReportRecord
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&record.Title, &record.GameJSON, &record.ReportJSON, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return gamestorage.ReportRecord{}, gamestorage.ErrNotFound
		}
		return gamestorage.ReportRecord{}, fmt.Errorf("get report: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}
