package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deletion in this schema is physical — no soft-delete columns. Removing
// a media post cascades to its comments and likes.
type MediaPostModel struct {
	ID               string    `gorm:"type:uuid;primary_key" json:"id"`
	Filename         string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"filename"`
	OriginalFilename string    `gorm:"type:varchar(255)" json:"original_filename"`
	MediaType        string    `gorm:"type:varchar(10);not null" json:"media_type"`
	Caption          string    `gorm:"type:text" json:"caption"`
	Emojis           string    `gorm:"type:text" json:"emojis"`
	Timestamp        int64     `gorm:"not null;index" json:"timestamp"`
	Published        bool      `gorm:"not null;default:true;index" json:"published"`
	FilePath         string    `gorm:"type:varchar(500)" json:"file_path"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Comments []CommentModel   `gorm:"foreignKey:MediaPostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Likes    []MediaLikeModel `gorm:"foreignKey:MediaPostID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
}

func (MediaPostModel) TableName() string {
	return "media_posts"
}

func (m *MediaPostModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
