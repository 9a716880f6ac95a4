// Package storage defines the persistence contracts the domain services
// depend on. The abstractions allow swapping storage backends (SQLite,
// PostgreSQL, etc.) without changing the service layer.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/plateplanner/backend/internal/models"
)

var (
	// ErrNotFound is returned when no record exists for the given key.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned by create-only writes when a record
	// already exists for the key. The existing record is left untouched.
	ErrAlreadyExists = errors.New("record already exists")
)

// ProfileRecord is the flat field mapping a profile is persisted as,
// keyed by Username. It is deliberately dumb: re-validation happens in
// the profile service when a record is loaded back.
type ProfileRecord struct {
	Username    string
	Description string
	Weight      float64
	Height      float64
	Allergies   []string
	Calories    float64
	Activity    string
}

// ProfileStore is the key-value persistence collaborator for profiles.
type ProfileStore interface {
	// GetProfile retrieves the record stored under username.
	// Returns ErrNotFound if no record exists.
	GetProfile(ctx context.Context, username string) (*ProfileRecord, error)

	// CreateProfile stores a new record under rec.Username. The write is
	// create-only: if a record already exists the call fails with
	// ErrAlreadyExists and the stored record is unchanged. The existence
	// check and the insert are a single atomic operation.
	CreateProfile(ctx context.Context, rec *ProfileRecord) error
}

// CalorieLog is the persistence collaborator for the calorie journal.
type CalorieLog interface {
	// AddEntry appends an entry to username's journal and returns it
	// with the assigned ID.
	AddEntry(ctx context.Context, username string, amount int, at time.Time) (*models.CalorieEntry, error)

	// TotalForDay sums all entry amounts for username on the given day.
	// A day with no entries totals zero.
	TotalForDay(ctx context.Context, username string, day time.Time) (int, error)

	// EntriesForDay lists username's entries for the given day, newest
	// first.
	EntriesForDay(ctx context.Context, username string, day time.Time) ([]models.CalorieEntry, error)

	// History returns per-day totals for the last days calendar days,
	// newest first. Days without entries are omitted.
	History(ctx context.Context, username string, days int) ([]models.DailyTotal, error)

	// DeleteEntry removes an entry by ID. Returns ErrNotFound if no
	// such entry exists.
	DeleteEntry(ctx context.Context, id string) error
}

// Store combines every persistence contract plus resource cleanup, for
// callers that hold one concrete backend.
type Store interface {
	ProfileStore
	CalorieLog

	// Close releases any resources held by the store.
	Close() error
}
