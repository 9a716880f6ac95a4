// Package recipes implements in-memory recipe storage. Recipes are
// keyed by title and re-adding a title overwrites the prior entry
// (last-write-wins) — deliberately the opposite contract from profile
// persistence, which is create-only.
package recipes

import (
	"log/slog"

	"github.com/plateplanner/backend/internal/models"
	"github.com/plateplanner/backend/internal/validate"
)

const (
	// MsgSaved is the status of a successful add.
	MsgSaved = "Recipe saved successfully"

	// MsgNotFound is the sentinel status Get returns for an unknown
	// title. Lookups never fail hard.
	MsgNotFound = "Recipe not found"
)

// Storage stores recipes keyed by title. Not safe for concurrent use;
// each instance belongs to one caller.
type Storage struct {
	recipes map[string]models.Recipe
	logger  *slog.Logger
}

// NewStorage creates an empty recipe storage.
func NewStorage(logger *slog.Logger) *Storage {
	return &Storage{
		recipes: make(map[string]models.Recipe),
		logger:  logger,
	}
}

// Add validates and stores a recipe with preparation instructions.
// Checks run in order (title, instructions, image, category) and the
// first failure's message is returned. On success the entry is stored
// under its title, replacing any prior entry.
func (s *Storage) Add(title, instructions, image, category any) string {
	if err := firstError(
		validate.RecipeTitle(title),
		validate.RecipeInstructions(instructions),
		validate.RecipeImage(image),
		validate.RecipeCategory(category),
	); err != nil {
		return err.Reason
	}

	s.store(models.Recipe{
		Title:        title.(string),
		Instructions: instructions.(string),
		Image:        image.(string),
		Category:     category.(string),
	})
	return MsgSaved
}

// AddWithCalories validates and stores a recipe carrying a per-serving
// calorie count instead of instructions.
func (s *Storage) AddWithCalories(title, calories, image, category any) string {
	if err := firstError(
		validate.RecipeTitle(title),
		validate.RecipeCalories(calories),
		validate.RecipeImage(image),
		validate.RecipeCategory(category),
	); err != nil {
		return err.Reason
	}

	s.store(models.Recipe{
		Title:    title.(string),
		Calories: calories.(int),
		Image:    image.(string),
		Category: category.(string),
	})
	return MsgSaved
}

// Get returns the recipe stored under title, or a nil recipe with the
// MsgNotFound status.
func (s *Storage) Get(title string) (*models.Recipe, string) {
	r, ok := s.recipes[title]
	if !ok {
		return nil, MsgNotFound
	}
	return &r, ""
}

// Len returns the number of stored recipes.
func (s *Storage) Len() int {
	return len(s.recipes)
}

func (s *Storage) store(r models.Recipe) {
	if _, exists := s.recipes[r.Title]; exists {
		s.logger.Info("Recipe overwritten", "title", r.Title)
	}
	s.recipes[r.Title] = r
}

// firstError returns the first non-nil validation error.
func firstError(errs ...error) *validate.ValidationError {
	for _, err := range errs {
		if err != nil {
			return err.(*validate.ValidationError)
		}
	}
	return nil
}
