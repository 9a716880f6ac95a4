// Package models defines the core domain entities for Plate Planner.
//
// # Entities
//
//   - Profile: a user's validated fitness profile
//   - Post: a community feed post
//   - Recipe: a stored recipe, keyed by title
//   - CalorieEntry / DailyTotal: the persistent calorie journal
//
// # Design Principles
//
// 1. **No partially-valid entities**: every entity is constructed only
// after all of its fields have passed validation (see internal/validate
// and internal/pipeline). A Profile, Post, or Recipe value in the wild
// has already cleared its full validator list.
//
// 2. **Immutable after construction**: entities are value objects;
// changing a field means constructing (and re-validating) a new one.
//
// 3. **Structural equality**: Profile.Equal compares every field, so a
// round trip through persistence yields an equal value.
package models
