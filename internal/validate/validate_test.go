package validate

import (
	"errors"
	"strings"
	"testing"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"valid", "John_D4", false},
		{"min length", "abc", false},
		{"max length", strings.Repeat("a", 20), false},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 21), true},
		{"punctuation", "J0hn!4", true},
		{"space", "John D", true},
		{"not a string", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Username(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Username(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestUsernameTypeCheckPrecedesRange(t *testing.T) {
	// A non-string that would also fail the length rule must surface
	// the type message, not the range message.
	err := Username(42)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Username(42) = %v, want *ValidationError", err)
	}
	if !strings.Contains(verr.Reason, "string") {
		t.Errorf("Reason = %q, want type message", verr.Reason)
	}
	if verr.Field != "username" {
		t.Errorf("Field = %q, want %q", verr.Field, "username")
	}
}

func TestProfileDescription(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"valid", "Student who enjoys fitness and cooking", false},
		{"empty is fine", "", false},
		{"punctuation", `!"#$%&'()*+,-./:;<=>?@[\]^_` + "`{|}~", false},
		{"exactly 200", strings.Repeat("x", 200), false},
		{"201 characters", strings.Repeat("x", 201), true},
		{"control character", "line\nbreak", true},
		{"non-ascii", "café", true},
		{"not a string", 3.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ProfileDescription(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ProfileDescription(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"valid", 55.0, false},
		{"lower bound", 3.0, false},
		{"upper bound", 300.0, false},
		{"below", 2.9, true},
		{"above", 300.1, true},
		{"negative", -20.0, true},
		{"integer rejected", 55, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Weight(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Weight(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestHeight(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"valid", 165.0, false},
		{"lower bound", 50.0, false},
		{"upper bound", 250.0, false},
		{"too tall", 255.0, true},
		{"too short", 49.9, true},
		{"integer rejected", 165, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Height(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Height(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestAllergies(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"string slice", []string{"peanut", "milk"}, false},
		{"empty slice", []string{}, false},
		{"any slice of strings", []any{"Vegetarian"}, false},
		{"empty any slice", []any{}, false},
		{"mixed any slice", []any{"peanut", 3}, true},
		{"bare string", "", true},
		{"nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Allergies(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Allergies(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestProfileCalories(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"valid", 2000.0, false},
		{"lower bound", 800.0, false},
		{"upper bound", 5000.0, false},
		{"below", 700.0, true},
		{"above", 5001.0, true},
		{"integer rejected", 2000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ProfileCalories(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ProfileCalories(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
