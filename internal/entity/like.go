package entity

import "time"

// MediaLike records that a display name liked a media post. The
// (media_post_id, user_name) pair is unique; uniqueness is enforced by a
// service-layer pre-check rather than a storage constraint.
type MediaLike struct {
	ID          string    `json:"id"`
	MediaPostID string    `json:"media_post_id"`
	UserName    string    `json:"user_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// CommentLike is the comment-level counterpart of MediaLike, unique per
// (comment_id, user_name).
type CommentLike struct {
	ID        string    `json:"id"`
	CommentID string    `json:"comment_id"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}
