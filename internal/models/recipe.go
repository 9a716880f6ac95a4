package models

// Recipe represents a stored recipe. Exactly one of Instructions or
// Calories is populated, depending on which add variant created it.
type Recipe struct {
	// Title is the unique key the recipe is stored under.
	Title string

	// Instructions is the preparation text (instructions variant).
	Instructions string

	// Calories is the per-serving calorie count (calorie-count variant).
	Calories int

	// Image is the recipe photo filename (jpg, jpeg or png).
	Image string

	// Category is one of validate.RecipeCategories.
	Category string
}
