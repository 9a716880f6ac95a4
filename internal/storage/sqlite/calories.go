package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plateplanner/backend/internal/models"
	"github.com/plateplanner/backend/internal/storage"
)

// Day bucketing uses sqlite's date() over the stored unix timestamps,
// so all journal queries agree on UTC calendar days.

// AddEntry appends a calorie entry to username's journal.
func (s *SQLiteStore) AddEntry(ctx context.Context, username string, amount int, at time.Time) (*models.CalorieEntry, error) {
	entry := &models.CalorieEntry{
		ID:        uuid.New().String(),
		Username:  username,
		Amount:    amount,
		Timestamp: at.Unix(),
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO calorie_entries (id, username, amount, timestamp) VALUES (?, ?, ?, ?)",
		entry.ID, entry.Username, entry.Amount, entry.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert calorie entry: %w", err)
	}

	return entry, nil
}

// TotalForDay sums username's entry amounts on the given calendar day.
func (s *SQLiteStore) TotalForDay(ctx context.Context, username string, day time.Time) (int, error) {
	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0)
		 FROM calorie_entries
		 WHERE username = ? AND date(timestamp, 'unixepoch') = ?`,
		username, day.UTC().Format("2006-01-02"),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to get daily total: %w", err)
	}
	return total, nil
}

// EntriesForDay lists username's entries for the given calendar day,
// newest first.
func (s *SQLiteStore) EntriesForDay(ctx context.Context, username string, day time.Time) ([]models.CalorieEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, amount, timestamp
		 FROM calorie_entries
		 WHERE username = ? AND date(timestamp, 'unixepoch') = ?
		 ORDER BY timestamp DESC`,
		username, day.UTC().Format("2006-01-02"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}
	defer rows.Close()

	var entries []models.CalorieEntry
	for rows.Next() {
		var e models.CalorieEntry
		if err := rows.Scan(&e.ID, &e.Username, &e.Amount, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

// History returns username's per-day totals over the past days calendar
// days, newest first. Days without entries are omitted.
func (s *SQLiteStore) History(ctx context.Context, username string, days int) ([]models.DailyTotal, error) {
	if days <= 0 {
		return nil, nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -(days - 1)).Format("2006-01-02")

	rows, err := s.db.QueryContext(ctx,
		`SELECT date(timestamp, 'unixepoch') AS day, COALESCE(SUM(amount), 0)
		 FROM calorie_entries
		 WHERE username = ? AND date(timestamp, 'unixepoch') >= ?
		 GROUP BY day
		 ORDER BY day DESC
		 LIMIT ?`,
		username, cutoff, days,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	var totals []models.DailyTotal
	for rows.Next() {
		var t models.DailyTotal
		if err := rows.Scan(&t.Date, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan daily total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return totals, nil
}

// DeleteEntry removes a journal entry by ID.
func (s *SQLiteStore) DeleteEntry(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM calorie_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
