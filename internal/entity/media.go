package entity

import "time"

type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

// MediaPost is one published photo or video in the feed. Rows only exist
// for public media; private media never reaches the backend, so
// Published is true for every persisted post.
type MediaPost struct {
	ID               string    `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	MediaType        MediaType `json:"media_type"`
	Caption          string    `json:"caption"`
	Emojis           string    `json:"emojis"` // JSON-serialized list, e.g. `["🔥","😍"]`
	Timestamp        int64     `json:"timestamp"` // epoch milliseconds
	Published        bool      `json:"published"`
	FilePath         string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
