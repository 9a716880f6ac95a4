// Command plateplanner is a small local utility over the Plate Planner
// core: it opens the SQLite store, optionally logs a calorie entry, and
// reports the user's daily total and weekly summary. There is no
// network surface; everything runs in-process.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/plateplanner/backend/internal/config"
	"github.com/plateplanner/backend/internal/profile"
	"github.com/plateplanner/backend/internal/storage"
	"github.com/plateplanner/backend/internal/storage/sqlite"
	"github.com/plateplanner/backend/internal/summary"
	"github.com/plateplanner/backend/internal/tracker"
	"github.com/plateplanner/backend/pkg/logging"
)

func main() {
	var (
		configPath = flag.String("config", "plateplanner.yaml", "path to config file")
		username   = flag.String("user", "", "username to report on")
		add        = flag.Int("add", 0, "calorie amount to log before reporting")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.SetupWithLevel(logging.ParseLevel(cfg.Log.Level))

	if *username == "" {
		slog.Error("Missing required -user flag")
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Database.Path)

	ctx := context.Background()
	journal := tracker.NewJournal(store, slog.Default())
	profiles := profile.NewService(store, slog.Default())

	if *add != 0 {
		if _, err := journal.Log(ctx, *username, *add); err != nil {
			slog.Error("Failed to log calories", "error", err)
			os.Exit(1)
		}
	}

	total, err := journal.TodayTotal(ctx, *username)
	if err != nil {
		slog.Error("Failed to get daily total", "error", err)
		os.Exit(1)
	}
	slog.Info("Today", "username", *username, "calories", total)

	goal := 2000.0
	p, err := profiles.Load(ctx, *username)
	switch {
	case err == nil:
		goal = p.Calories
		if bmi, err := summary.BMI(p.Height, p.Weight); err == nil {
			slog.Info("Profile", "username", p.Username, "bmi", bmi, "category", summary.BMICategory(bmi))
		}
	case errors.Is(err, storage.ErrNotFound):
		slog.Warn("No stored profile, using default goal", "username", *username, "goal", goal)
	default:
		slog.Error("Failed to load profile", "error", err)
		os.Exit(1)
	}

	history, err := journal.History(ctx, *username, 7)
	if err != nil {
		slog.Error("Failed to get history", "error", err)
		os.Exit(1)
	}

	week := summary.Summarize(history, goal)
	slog.Info("Weekly summary",
		"total", week.Total,
		"average", week.Average,
		"days_logged", week.DaysLogged,
		"days_on_target", week.DaysOnTarget,
	)
}
