package models

// Profile represents a user's validated fitness profile.
// All fields have passed their validators before a Profile exists;
// construct one through the profile service, never literally.
type Profile struct {
	// Username is the unique key the profile is persisted under.
	// 3-20 characters, alphanumerics and underscores only.
	Username string

	// Description is free-form printable ASCII, at most 200 characters.
	Description string

	// Weight in kilograms, between 3 and 300.
	Weight float64

	// Height in centimeters, between 50 and 250.
	Height float64

	// Allergies is the user's allergy list. May be empty, never nil
	// after construction.
	Allergies []string

	// Calories is the daily calorie target, between 800 and 5000.
	Calories float64

	// Activity is an optional free-form activity level. It is a
	// passthrough: no validator guards it, and empty means unset.
	Activity string
}

// Equal reports whether two profiles hold identical fields. Allergy
// lists compare element-wise in order.
func (p *Profile) Equal(other *Profile) bool {
	if other == nil {
		return false
	}
	if p.Username != other.Username ||
		p.Description != other.Description ||
		p.Weight != other.Weight ||
		p.Height != other.Height ||
		p.Calories != other.Calories ||
		p.Activity != other.Activity {
		return false
	}
	if len(p.Allergies) != len(other.Allergies) {
		return false
	}
	for i := range p.Allergies {
		if p.Allergies[i] != other.Allergies[i] {
			return false
		}
	}
	return true
}

// Fields returns the profile as a flat field mapping, the serialization
// surface used by persistence. The returned map is a fresh copy; mutating
// it does not touch the profile.
func (p *Profile) Fields() map[string]any {
	allergies := make([]string, len(p.Allergies))
	copy(allergies, p.Allergies)
	return map[string]any{
		"username":    p.Username,
		"description": p.Description,
		"weight":      p.Weight,
		"height":      p.Height,
		"allergies":   allergies,
		"calories":    p.Calories,
		"activity":    p.Activity,
	}
}
