package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID              string    `gorm:"type:uuid;primary_key" json:"id"`
	MediaPostID     string    `gorm:"type:uuid;not null;index" json:"media_post_id"`
	ParentCommentID *string   `gorm:"type:uuid;index" json:"parent_comment_id"`
	UserName        string    `gorm:"type:varchar(100);not null;default:'Anonymous'" json:"user_name"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Likes   []CommentLikeModel `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
	Replies []CommentModel     `gorm:"foreignKey:ParentCommentID;constraint:OnDelete:CASCADE" json:"replies,omitempty"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
