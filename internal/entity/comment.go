package entity

import "time"

// Comment is a flat record; threading is realized purely through
// ParentCommentID and recomputed on every read. Nesting is limited to
// one level: a reply's parent is always a top-level comment.
type Comment struct {
	ID              string    `json:"id"`
	MediaPostID     string    `json:"media_post_id"`
	ParentCommentID *string   `json:"parent_comment_id,omitempty"`
	UserName        string    `json:"user_name"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsReply reports whether the comment is nested under another comment.
func (c *Comment) IsReply() bool {
	return c.ParentCommentID != nil && *c.ParentCommentID != ""
}
