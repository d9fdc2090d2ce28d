package persistent

import (
	"snapfeed/internal/entity"
	"snapfeed/internal/model"

	"gorm.io/gorm"
)

type LikeRepository interface {
	CreateMediaLike(mediaPostID, userName string) (*entity.MediaLike, error)
	DeleteMediaLike(mediaPostID, userName string) (int64, error)
	MediaLikeExists(mediaPostID, userName string) (bool, error)
	ListMediaLikes(mediaPostID string) ([]*entity.MediaLike, error)
	CountMediaLikes(mediaPostID string) (int64, error)

	CreateCommentLike(commentID, userName string) (*entity.CommentLike, error)
	DeleteCommentLike(commentID, userName string) (int64, error)
	CommentLikeExists(commentID, userName string) (bool, error)
	ListCommentLikes(commentID string) ([]*entity.CommentLike, error)
	CountCommentLikes(commentID string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) CreateMediaLike(mediaPostID, userName string) (*entity.MediaLike, error) {
	likeModel := &model.MediaLikeModel{
		MediaPostID: mediaPostID,
		UserName:    userName,
	}
	if err := r.db.Create(likeModel).Error; err != nil {
		return nil, err
	}
	return ToMediaLikeEntity(likeModel), nil
}

func (r *likeRepository) DeleteMediaLike(mediaPostID, userName string) (int64, error) {
	res := r.db.Where("media_post_id = ? AND user_name = ?", mediaPostID, userName).
		Delete(&model.MediaLikeModel{})
	return res.RowsAffected, res.Error
}

func (r *likeRepository) MediaLikeExists(mediaPostID, userName string) (bool, error) {
	var count int64
	err := r.db.Model(&model.MediaLikeModel{}).
		Where("media_post_id = ? AND user_name = ?", mediaPostID, userName).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) ListMediaLikes(mediaPostID string) ([]*entity.MediaLike, error) {
	var likeModels []model.MediaLikeModel
	if err := r.db.Where("media_post_id = ?", mediaPostID).Find(&likeModels).Error; err != nil {
		return nil, err
	}

	likes := make([]*entity.MediaLike, len(likeModels))
	for i := range likeModels {
		likes[i] = ToMediaLikeEntity(&likeModels[i])
	}
	return likes, nil
}

func (r *likeRepository) CountMediaLikes(mediaPostID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.MediaLikeModel{}).Where("media_post_id = ?", mediaPostID).Count(&count).Error
	return count, err
}

func (r *likeRepository) CreateCommentLike(commentID, userName string) (*entity.CommentLike, error) {
	likeModel := &model.CommentLikeModel{
		CommentID: commentID,
		UserName:  userName,
	}
	if err := r.db.Create(likeModel).Error; err != nil {
		return nil, err
	}
	return ToCommentLikeEntity(likeModel), nil
}

func (r *likeRepository) DeleteCommentLike(commentID, userName string) (int64, error) {
	res := r.db.Where("comment_id = ? AND user_name = ?", commentID, userName).
		Delete(&model.CommentLikeModel{})
	return res.RowsAffected, res.Error
}

func (r *likeRepository) CommentLikeExists(commentID, userName string) (bool, error) {
	var count int64
	err := r.db.Model(&model.CommentLikeModel{}).
		Where("comment_id = ? AND user_name = ?", commentID, userName).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) ListCommentLikes(commentID string) ([]*entity.CommentLike, error) {
	var likeModels []model.CommentLikeModel
	if err := r.db.Where("comment_id = ?", commentID).Find(&likeModels).Error; err != nil {
		return nil, err
	}

	likes := make([]*entity.CommentLike, len(likeModels))
	for i := range likeModels {
		likes[i] = ToCommentLikeEntity(&likeModels[i])
	}
	return likes, nil
}

func (r *likeRepository) CountCommentLikes(commentID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.CommentLikeModel{}).Where("comment_id = ?", commentID).Count(&count).Error
	return count, err
}
