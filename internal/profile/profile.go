// Package profile implements the validated user profile entity and its
// persistence against a create-only key-value collaborator.
package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/plateplanner/backend/internal/models"
	"github.com/plateplanner/backend/internal/pipeline"
	"github.com/plateplanner/backend/internal/storage"
	"github.com/plateplanner/backend/internal/validate"
	"github.com/plateplanner/backend/pkg/metrics"
)

// checks is the profile's validator list. The order is contractual:
// when several fields are invalid at once, the first failing check in
// this list is the one reported.
var checks = []pipeline.Check{
	{Field: "username", Run: func(r pipeline.Record) error { return validate.Username(r["username"]) }},
	{Field: "description", Run: func(r pipeline.Record) error { return validate.ProfileDescription(r["description"]) }},
	{Field: "weight", Run: func(r pipeline.Record) error { return validate.Weight(r["weight"]) }},
	{Field: "height", Run: func(r pipeline.Record) error { return validate.Height(r["height"]) }},
	{Field: "allergies", Run: func(r pipeline.Record) error { return validate.Allergies(r["allergies"]) }},
	{Field: "calories", Run: func(r pipeline.Record) error { return validate.ProfileCalories(r["calories"]) }},
}

// Construct validates rec and builds an immutable profile from it.
// The error, when non-nil, is the *validate.ValidationError of the
// first field that failed.
func Construct(rec pipeline.Record) (*models.Profile, error) {
	p, err := pipeline.Run(rec, checks, build)
	if err != nil {
		metrics.ProfileRejections.Inc()
		return nil, err
	}
	metrics.ProfileConstructions.Inc()
	return p, nil
}

// build assumes rec has passed every check; the assertions here cannot
// fail for a validated record.
func build(rec pipeline.Record) *models.Profile {
	activity, _ := rec["activity"].(string) // unvalidated passthrough

	return &models.Profile{
		Username:    rec["username"].(string),
		Description: rec["description"].(string),
		Weight:      rec["weight"].(float64),
		Height:      rec["height"].(float64),
		Allergies:   allergiesFrom(rec["allergies"]),
		Calories:    rec["calories"].(float64),
		Activity:    activity,
	}
}

func allergiesFrom(v any) []string {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []any:
		out := make([]string, len(list))
		for i, e := range list {
			out[i] = e.(string)
		}
		return out
	default:
		return nil
	}
}

// Service persists profiles against a create-only key-value store.
type Service struct {
	store  storage.ProfileStore
	logger *slog.Logger
}

// NewService creates a profile service backed by store.
func NewService(store storage.ProfileStore, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Load fetches the record stored under username and reconstructs the
// profile through the full validator list, so a corrupted persisted
// record fails validation instead of resurfacing as a bad entity.
// Returns storage.ErrNotFound if no record exists.
func (s *Service) Load(ctx context.Context, username string) (*models.Profile, error) {
	rec, err := s.store.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	p, err := Construct(pipeline.Record{
		"username":    rec.Username,
		"description": rec.Description,
		"weight":      rec.Weight,
		"height":      rec.Height,
		"allergies":   rec.Allergies,
		"calories":    rec.Calories,
		"activity":    rec.Activity,
	})
	if err != nil {
		s.logger.Warn("Stored profile failed re-validation", "username", username, "error", err)
		return nil, fmt.Errorf("stored profile for %q is invalid: %w", username, err)
	}

	return p, nil
}

// Save writes the profile's field mapping under its username. The write
// is create-only: saving over an existing username fails with
// storage.ErrAlreadyExists and leaves the stored record unchanged.
func (s *Service) Save(ctx context.Context, p *models.Profile) error {
	err := s.store.CreateProfile(ctx, &storage.ProfileRecord{
		Username:    p.Username,
		Description: p.Description,
		Weight:      p.Weight,
		Height:      p.Height,
		Allergies:   p.Allergies,
		Calories:    p.Calories,
		Activity:    p.Activity,
	})
	if err != nil {
		return err
	}

	s.logger.Info("Profile saved", "username", p.Username)
	return nil
}
