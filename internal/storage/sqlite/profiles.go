package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/plateplanner/backend/internal/storage"
)

// GetProfile retrieves the profile record stored under username.
func (s *SQLiteStore) GetProfile(ctx context.Context, username string) (*storage.ProfileRecord, error) {
	query := `
		SELECT username, description, weight, height, allergies, calories, activity
		FROM profiles
		WHERE username = ?
	`

	rec := &storage.ProfileRecord{}
	var allergies string
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&rec.Username,
		&rec.Description,
		&rec.Weight,
		&rec.Height,
		&allergies,
		&rec.Calories,
		&rec.Activity,
	)

	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := json.Unmarshal([]byte(allergies), &rec.Allergies); err != nil {
		return nil, fmt.Errorf("failed to decode allergies for %q: %w", username, err)
	}

	return rec, nil
}

// CreateProfile stores a new profile record. The write is create-only:
// INSERT OR IGNORE plus a rows-affected check makes the existence probe
// and the insert one atomic statement, so concurrent saves for the same
// username cannot both succeed.
func (s *SQLiteStore) CreateProfile(ctx context.Context, rec *storage.ProfileRecord) error {
	allergies, err := json.Marshal(rec.Allergies)
	if err != nil {
		return fmt.Errorf("failed to encode allergies: %w", err)
	}

	query := `
		INSERT OR IGNORE INTO profiles (username, description, weight, height, allergies, calories, activity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		rec.Username,
		rec.Description,
		rec.Weight,
		rec.Height,
		string(allergies),
		rec.Calories,
		rec.Activity,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check insert result: %w", err)
	}
	if affected == 0 {
		return storage.ErrAlreadyExists
	}

	return nil
}
