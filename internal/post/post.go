// Package post implements community post creation. A post only exists
// once its record has cleared the full check list; failures come back
// as a status message, never as a fault.
package post

import (
	"errors"

	"github.com/plateplanner/backend/internal/models"
	"github.com/plateplanner/backend/internal/pipeline"
	"github.com/plateplanner/backend/internal/validate"
	"github.com/plateplanner/backend/pkg/metrics"
)

// StatusPosted is the status of an accepted post.
const StatusPosted = "Posted!"

// Result is the outcome of a creation attempt. Post is nil exactly when
// the record was rejected, and Status then carries the message of the
// first failing check.
type Result struct {
	Status string
	Post   *models.Post
}

// Accepted reports whether the attempt produced a post.
func (r Result) Accepted() bool {
	return r.Post != nil
}

// checks is the post's validator list, in contractual order: image,
// description, image count, like button, like count, like consistency.
var checks = []pipeline.Check{
	{Field: "image", Run: func(r pipeline.Record) error { return validate.PostImage(r["image"]) }},
	{Field: "description", Run: func(r pipeline.Record) error { return validate.PostDescription(r["description"]) }},
	{Field: "imageCount", Run: func(r pipeline.Record) error { return validate.ImageCount(r["imageCount"]) }},
	{Field: "likeButton", Run: func(r pipeline.Record) error { return validate.LikeButton(r["likeButton"], clicked(r)) }},
	{Field: "likeCount", Run: func(r pipeline.Record) error { return validate.LikeCount(r["likeCount"]) }},
	{Field: "likeConsistency", Run: func(r pipeline.Record) error {
		return validate.LikeConsistency(r["likeButton"], r["likeCount"], clicked(r))
	}},
}

// clicked reads the caller's like intent; absent means clicked.
func clicked(r pipeline.Record) bool {
	if v, ok := r["clicked"].(bool); ok {
		return v
	}
	return true
}

// Create runs the pipeline over rec and returns the outcome.
func Create(rec pipeline.Record) Result {
	p, err := pipeline.Run(rec, checks, build)
	if err != nil {
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			metrics.PostsRejected.WithLabelValues(verr.Field).Inc()
			return Result{Status: verr.Reason}
		}
		return Result{Status: err.Error()}
	}

	metrics.PostsAccepted.Inc()
	return Result{Status: StatusPosted, Post: p}
}

// build assumes rec has passed every check.
func build(rec pipeline.Record) *models.Post {
	likeButton, _ := rec["likeButton"].(bool)
	likeCount := 0
	switch n := rec["likeCount"].(type) {
	case int:
		likeCount = n
	case float64:
		likeCount = int(n)
	}

	return &models.Post{
		Image:       rec["image"].(string),
		Description: rec["description"].(string),
		LikeButton:  likeButton,
		LikeCount:   likeCount,
		ImageCount:  rec["imageCount"].(int),
	}
}
