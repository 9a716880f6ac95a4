package validate

import "strings"

// RecipeCategories is the closed set of categories a recipe may belong to.
var RecipeCategories = []string{"Main Course", "Dessert", "Appetizer"}

var recipeImageExtensions = []string{".jpg", ".jpeg", ".png"}

// RecipeTitle accepts a string with at least one non-whitespace character.
func RecipeTitle(v any) error {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return &ValidationError{Field: "title", Reason: "Please enter recipe title"}
	}
	return nil
}

// RecipeInstructions accepts a string with at least one non-whitespace
// character.
func RecipeInstructions(v any) error {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return &ValidationError{Field: "instructions", Reason: "Please add instructions"}
	}
	return nil
}

// RecipeCalories accepts an integer calorie count.
func RecipeCalories(v any) error {
	if _, ok := v.(int); !ok {
		return &ValidationError{Field: "calories", Reason: "Please enter a calorie count"}
	}
	return nil
}

// RecipeImage accepts a filename with a recognized image extension
// (case-insensitive). Animated formats are not accepted for recipes.
func RecipeImage(v any) error {
	s, ok := v.(string)
	if !ok {
		return &ValidationError{Field: "image", Reason: "Invalid image format"}
	}
	lower := strings.ToLower(s)
	for _, ext := range recipeImageExtensions {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}
	return &ValidationError{Field: "image", Reason: "Invalid image format", Value: s}
}

// RecipeCategory accepts only members of RecipeCategories.
func RecipeCategory(v any) error {
	s, ok := v.(string)
	if ok {
		for _, c := range RecipeCategories {
			if s == c {
				return nil
			}
		}
	}
	return &ValidationError{Field: "category", Reason: "Please select a category"}
}
