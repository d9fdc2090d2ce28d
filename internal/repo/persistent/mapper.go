package persistent

import (
	"snapfeed/internal/entity"
	"snapfeed/internal/model"
)

func ToMediaPostEntity(m *model.MediaPostModel) *entity.MediaPost {
	if m == nil {
		return nil
	}

	return &entity.MediaPost{
		ID:               m.ID,
		Filename:         m.Filename,
		OriginalFilename: m.OriginalFilename,
		MediaType:        entity.MediaType(m.MediaType),
		Caption:          m.Caption,
		Emojis:           m.Emojis,
		Timestamp:        m.Timestamp,
		Published:        m.Published,
		FilePath:         m.FilePath,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToMediaPostModel(e *entity.MediaPost) *model.MediaPostModel {
	if e == nil {
		return nil
	}

	return &model.MediaPostModel{
		ID:               e.ID,
		Filename:         e.Filename,
		OriginalFilename: e.OriginalFilename,
		MediaType:        string(e.MediaType),
		Caption:          e.Caption,
		Emojis:           e.Emojis,
		Timestamp:        e.Timestamp,
		Published:        e.Published,
		FilePath:         e.FilePath,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:              m.ID,
		MediaPostID:     m.MediaPostID,
		ParentCommentID: m.ParentCommentID,
		UserName:        m.UserName,
		Content:         m.Content,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:              e.ID,
		MediaPostID:     e.MediaPostID,
		ParentCommentID: e.ParentCommentID,
		UserName:        e.UserName,
		Content:         e.Content,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToMediaLikeEntity(m *model.MediaLikeModel) *entity.MediaLike {
	if m == nil {
		return nil
	}

	return &entity.MediaLike{
		ID:          m.ID,
		MediaPostID: m.MediaPostID,
		UserName:    m.UserName,
		CreatedAt:   m.CreatedAt,
	}
}

func ToCommentLikeEntity(m *model.CommentLikeModel) *entity.CommentLike {
	if m == nil {
		return nil
	}

	return &entity.CommentLike{
		ID:        m.ID,
		CommentID: m.CommentID,
		UserName:  m.UserName,
		CreatedAt: m.CreatedAt,
	}
}
