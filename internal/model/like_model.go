package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaLikeModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	MediaPostID string    `gorm:"type:uuid;not null;index" json:"media_post_id"`
	UserName    string    `gorm:"type:varchar(100);not null" json:"user_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func (MediaLikeModel) TableName() string {
	return "media_likes"
}

func (l *MediaLikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type CommentLikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	CommentID string    `gorm:"type:uuid;not null;index" json:"comment_id"`
	UserName  string    `gorm:"type:varchar(100);not null" json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (CommentLikeModel) TableName() string {
	return "comment_likes"
}

func (l *CommentLikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
