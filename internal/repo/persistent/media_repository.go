package persistent

import (
	"snapfeed/internal/entity"
	"snapfeed/internal/model"

	"gorm.io/gorm"
)

type MediaRepository interface {
	Create(post *entity.MediaPost) error
	GetByID(id string) (*entity.MediaPost, error)
	ListPublished(skip, limit int) ([]*entity.MediaPost, error)
	Exists(id string) (bool, error)
	Delete(id string) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(post *entity.MediaPost) error {
	postModel := ToMediaPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToMediaPostEntity(postModel)
	return nil
}

func (r *mediaRepository) GetByID(id string) (*entity.MediaPost, error) {
	var postModel model.MediaPostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToMediaPostEntity(&postModel), nil
}

// ListPublished returns the feed: published rows only, newest first.
func (r *mediaRepository) ListPublished(skip, limit int) ([]*entity.MediaPost, error) {
	var postModels []model.MediaPostModel
	query := r.db.Where("published = ?", true).Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if skip > 0 {
		query = query.Offset(skip)
	}
	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.MediaPost, len(postModels))
	for i := range postModels {
		posts[i] = ToMediaPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *mediaRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.MediaPostModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Delete removes the post and everything hanging off it — comments,
// replies, comment likes and media likes — in a single transaction.
func (r *mediaRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		commentIDs := tx.Model(&model.CommentModel{}).Select("id").Where("media_post_id = ?", id)
		if err := tx.Where("comment_id IN (?)", commentIDs).Delete(&model.CommentLikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("media_post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("media_post_id = ?", id).Delete(&model.MediaLikeModel{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&model.MediaPostModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
