package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/plateplanner/backend/internal/models"
	"github.com/plateplanner/backend/internal/storage"
	"github.com/plateplanner/backend/pkg/metrics"
)

// Journal persists per-user calorie entries and answers daily-total and
// history queries over them.
type Journal struct {
	log    storage.CalorieLog
	logger *slog.Logger
}

// NewJournal creates a journal backed by log.
func NewJournal(log storage.CalorieLog, logger *slog.Logger) *Journal {
	return &Journal{log: log, logger: logger}
}

// Log appends an entry for username at the current time.
func (j *Journal) Log(ctx context.Context, username string, amount int) (*models.CalorieEntry, error) {
	entry, err := j.log.AddEntry(ctx, username, amount, time.Now())
	if err != nil {
		return nil, err
	}

	metrics.CalorieEntriesLogged.Inc()
	j.logger.Info("Calorie entry logged", "username", username, "amount", amount, "entry_id", entry.ID)
	return entry, nil
}

// TodayTotal returns username's total for the current calendar day.
func (j *Journal) TodayTotal(ctx context.Context, username string) (int, error) {
	return j.log.TotalForDay(ctx, username, time.Now())
}

// TodayEntries lists username's entries for the current calendar day,
// newest first.
func (j *Journal) TodayEntries(ctx context.Context, username string) ([]models.CalorieEntry, error) {
	return j.log.EntriesForDay(ctx, username, time.Now())
}

// History returns per-day totals over the past days calendar days,
// newest first.
func (j *Journal) History(ctx context.Context, username string, days int) ([]models.DailyTotal, error) {
	return j.log.History(ctx, username, days)
}

// Delete removes an entry by ID. Returns storage.ErrNotFound if no such
// entry exists.
func (j *Journal) Delete(ctx context.Context, id string) error {
	if err := j.log.DeleteEntry(ctx, id); err != nil {
		return err
	}
	j.logger.Info("Calorie entry deleted", "entry_id", id)
	return nil
}
