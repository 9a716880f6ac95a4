package validate

import "strings"

// noImageSentinel is the placeholder the UI submits when the picker was
// never opened; it must be treated the same as an empty selection.
const noImageSentinel = "No image selected"

var postImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// PostImage accepts a non-empty filename with a recognized image
// extension (case-insensitive). The picker sentinel counts as no
// selection, not as a bad format.
func PostImage(v any) error {
	s, ok := v.(string)
	if !ok || s == "" || s == noImageSentinel {
		return &ValidationError{Field: "image", Reason: "No image chosen"}
	}
	lower := strings.ToLower(s)
	for _, ext := range postImageExtensions {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}
	return &ValidationError{Field: "image", Reason: "Must be an image", Value: s}
}

// PostDescription accepts a non-empty string of at most 150 characters.
func PostDescription(v any) error {
	s, ok := v.(string)
	if !ok || s == "" {
		return &ValidationError{Field: "description", Reason: "No post description written"}
	}
	if len(s) > 150 {
		return &ValidationError{Field: "description", Reason: "Post is too long"}
	}
	return nil
}

// ImageCount accepts an integer between 1 and 5 inclusive. Zero (and any
// non-integer value) reads as no selection; more than five is its own
// failure.
func ImageCount(v any) error {
	n, ok := v.(int)
	if !ok || n <= 0 {
		return &ValidationError{Field: "imageCount", Reason: "No image chosen"}
	}
	if n > 5 {
		return &ValidationError{Field: "imageCount", Reason: "Too many photos selected"}
	}
	return nil
}

// LikeCount accepts a numeric value between 0 and 50 inclusive.
func LikeCount(v any) error {
	var n float64
	switch cnt := v.(type) {
	case int:
		n = float64(cnt)
	case float64:
		n = cnt
	default:
		return &ValidationError{Field: "likeCount", Reason: "Like count is inaccurate"}
	}
	if n < 0 || n > 50 {
		return &ValidationError{Field: "likeCount", Reason: "Like count is inaccurate"}
	}
	return nil
}

// LikeButton checks that the like affordance is lit exactly when the
// caller clicked it. A non-bool button value reads as unlit.
func LikeButton(likeButton any, clicked bool) error {
	lit, _ := likeButton.(bool)
	if clicked && !lit {
		return &ValidationError{Field: "likeButton", Reason: "Like button does not light when clicked"}
	}
	if !clicked && lit {
		return &ValidationError{Field: "likeButton", Reason: "Like button lights up without being clicked"}
	}
	return nil
}

// LikeConsistency rejects a recorded like that left the count at zero:
// if the button was clicked and lit, the count must have moved.
func LikeConsistency(likeButton, likeCount any, clicked bool) error {
	lit, _ := likeButton.(bool)
	zero := false
	switch n := likeCount.(type) {
	case int:
		zero = n == 0
	case float64:
		zero = n == 0
	}
	if clicked && lit && zero {
		return &ValidationError{Field: "likeCount", Reason: "Like count remains the same"}
	}
	return nil
}
