package persistent

import (
	"snapfeed/internal/entity"
	"snapfeed/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	ListTopLevel(mediaPostID string, skip, limit int) ([]*entity.Comment, error)
	ListReplies(parentID string) ([]*entity.Comment, error)
	CountReplies(parentID string) (int64, error)
	UpdateContent(id, content string) error
	DeleteTree(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

// ListTopLevel returns comments without a parent, newest first.
func (r *commentRepository) ListTopLevel(mediaPostID string, skip, limit int) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	query := r.db.Where("media_post_id = ? AND parent_comment_id IS NULL", mediaPostID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if skip > 0 {
		query = query.Offset(skip)
	}
	if err := query.Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

// ListReplies returns a comment's direct replies, oldest first and
// unpaginated — threads are one level deep.
func (r *commentRepository) ListReplies(parentID string) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := r.db.Where("parent_comment_id = ?", parentID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *commentRepository) CountReplies(parentID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.CommentModel{}).Where("parent_comment_id = ?", parentID).Count(&count).Error
	return count, err
}

func (r *commentRepository) UpdateContent(id, content string) error {
	res := r.db.Model(&model.CommentModel{}).Where("id = ?", id).Update("content", content)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteTree removes the comment, its replies and every like attached to
// any of them, in one transaction.
func (r *commentRepository) DeleteTree(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		replyIDs := tx.Model(&model.CommentModel{}).Select("id").Where("parent_comment_id = ?", id)
		if err := tx.Where("comment_id IN (?)", replyIDs).Delete(&model.CommentLikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("parent_comment_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id = ?", id).Delete(&model.CommentLikeModel{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&model.CommentModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
