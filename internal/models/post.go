package models

// Post represents a community feed post that passed the creation
// pipeline.
type Post struct {
	// Image is the attached image filename (jpg, jpeg, png or gif).
	Image string

	// Description is the post body, 1-150 characters.
	Description string

	// LikeButton records whether the like affordance was lit when the
	// post was captured.
	LikeButton bool

	// LikeCount is the number of likes, 0-50.
	LikeCount int

	// ImageCount is how many photos were selected, 1-5.
	ImageCount int
}
