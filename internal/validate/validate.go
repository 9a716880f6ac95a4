// Package validate provides the field validators that gate entity
// construction. Every validator is a pure function over a raw value:
// it never mutates its input, checks the value's type before any range
// or format rule, and reports failures as a *ValidationError.
package validate

import (
	"fmt"
	"regexp"
)

// ValidationError reports a single field that failed validation.
//
// Field identifies the field, Reason is the human-readable explanation
// surfaced to callers, and Value optionally describes the offending
// input. Validators return the first violated rule only.
type ValidationError struct {
	Field  string
	Reason string
	Value  string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s (got %s)", e.Field, e.Reason, e.Value)
}

// typeError is the short-circuit used when a value has the wrong type;
// it fires before any range or format rule is consulted.
func typeError(field, reason string, v any) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Value: fmt.Sprintf("%T value", v)}
}

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Username accepts 3-20 character strings of alphanumerics and underscores.
func Username(v any) error {
	s, ok := v.(string)
	if !ok {
		return typeError("username", "can only be a string", v)
	}
	if len(s) < 3 || len(s) > 20 {
		return &ValidationError{Field: "username", Reason: "length must be between 3 and 20 characters", Value: s}
	}
	if !usernamePattern.MatchString(s) {
		return &ValidationError{Field: "username", Reason: "may contain only alphanumeric and underscore characters", Value: s}
	}
	return nil
}

// ProfileDescription accepts strings of at most 200 printable ASCII
// characters (codes 32-126).
func ProfileDescription(v any) error {
	s, ok := v.(string)
	if !ok {
		return typeError("description", "can only be a string", v)
	}
	if len(s) > 200 {
		return &ValidationError{Field: "description", Reason: "must not exceed 200 characters"}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 32 || s[i] > 126 {
			return &ValidationError{Field: "description", Reason: "may contain only printable ASCII characters"}
		}
	}
	return nil
}

// Weight accepts floating-point kilograms between 3 and 300 inclusive.
func Weight(v any) error {
	f, ok := v.(float64)
	if !ok {
		return typeError("weight", "can only be a float", v)
	}
	if f < 3.0 || f > 300.0 {
		return &ValidationError{Field: "weight", Reason: "must be between 3 and 300 kg", Value: fmt.Sprintf("%v", f)}
	}
	return nil
}

// Height accepts floating-point centimeters between 50 and 250 inclusive.
func Height(v any) error {
	f, ok := v.(float64)
	if !ok {
		return typeError("height", "can only be a float", v)
	}
	if f < 50.0 || f > 250.0 {
		return &ValidationError{Field: "height", Reason: "must be between 50 and 250 cm", Value: fmt.Sprintf("%v", f)}
	}
	return nil
}

// Allergies accepts a sequence of strings; the empty sequence is valid.
// Both []string and []any with all-string elements are accepted, since
// callers build records from untyped input.
func Allergies(v any) error {
	switch list := v.(type) {
	case []string:
		return nil
	case []any:
		for _, e := range list {
			if _, ok := e.(string); !ok {
				return typeError("allergies", "must be a list of strings", e)
			}
		}
		return nil
	default:
		return typeError("allergies", "must be a list of strings", v)
	}
}

// ProfileCalories accepts a floating-point daily target between 800 and
// 5000 inclusive.
func ProfileCalories(v any) error {
	f, ok := v.(float64)
	if !ok {
		return typeError("calories", "can only be a float", v)
	}
	if f < 800.0 || f > 5000.0 {
		return &ValidationError{Field: "calories", Reason: "must be between 800 and 5000", Value: fmt.Sprintf("%v", f)}
	}
	return nil
}
