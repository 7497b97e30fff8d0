// Package gamestorage defines the persistence contract for synthesized
// projects and optimization reports. Records are keyed by game title so
// repeat runs against the same game overwrite rather than accumulate.
package gamestorage

import (
	"context"
	"time"

	"github.com/louisbranch/gameforge/internal/platform/errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New(errors.CodeNotFound, "record not found")

// ProjectRecord stores a synthesized project together with the
// specification that produced it. Both payloads are serialized JSON.
type ProjectRecord struct {
	Title       string
	SpecJSON    string
	ProjectJSON string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReportRecord stores an optimization report for a reviewed game.
type ReportRecord struct {
	Title      string
	GameJSON   string
	ReportJSON string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Store persists projects and reports.
type Store interface {
	PutProject(ctx context.Context, record ProjectRecord) error
	GetProject(ctx context.Context, title string) (ProjectRecord, error)
	PutReport(ctx context.Context, record ReportRecord) error
	GetReport(ctx context.Context, title string) (ReportRecord, error)
	Close() error
}
