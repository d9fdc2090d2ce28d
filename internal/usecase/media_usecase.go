package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"snapfeed/internal/entity"
	"snapfeed/internal/repo/persistent"
	"snapfeed/pkg/blob"
	"snapfeed/pkg/logger"
	"snapfeed/pkg/queue"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type MediaUseCase interface {
	Upload(src io.Reader, originalFilename, mediaType, caption, emojis string, published bool) (*entity.MediaPost, error)
	List(skip, limit int) ([]*entity.MediaPost, error)
	GetByID(id string) (*entity.MediaPost, error)
	Delete(id string) error
}

type mediaUseCase struct {
	mediaRepo   persistent.MediaRepository
	blobs       blob.Store
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewMediaUseCase(
	mediaRepo persistent.MediaRepository,
	blobs blob.Store,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) MediaUseCase {
	return &mediaUseCase{
		mediaRepo:   mediaRepo,
		blobs:       blobs,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

// Upload saves the blob first and the metadata row second. If the row
// insert fails, the orphaned blob is removed so the two stores cannot
// drift apart.
func (uc *mediaUseCase) Upload(src io.Reader, originalFilename, mediaType, caption, emojis string, published bool) (*entity.MediaPost, error) {
	if mediaType != string(entity.MediaTypePhoto) && mediaType != string(entity.MediaTypeVideo) {
		return nil, ErrInvalidMediaType
	}
	if emojis == "" {
		emojis = "[]"
	}

	timestamp := time.Now().UnixMilli()
	ext := strings.ToLower(path.Ext(originalFilename))
	filename := fmt.Sprintf("%s_%d%s", mediaType, timestamp, ext)

	storedPath, err := uc.blobs.Save(filename, src, ContentTypeForFile(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to store media file: %w", err)
	}

	post := &entity.MediaPost{
		Filename:         filename,
		OriginalFilename: originalFilename,
		MediaType:        entity.MediaType(mediaType),
		Caption:          caption,
		Emojis:           emojis,
		Timestamp:        timestamp,
		Published:        published,
		FilePath:         storedPath,
	}

	if err := uc.mediaRepo.Create(post); err != nil {
		if rmErr := uc.blobs.Remove(filename); rmErr != nil && !errors.Is(rmErr, blob.ErrNotExist) {
			uc.logger.Error("Failed to remove orphaned blob %s: %v", filename, rmErr)
		}
		return nil, fmt.Errorf("failed to create media post: %w", err)
	}

	if uc.queueClient != nil {
		go uc.publishActivity(map[string]interface{}{
			"type":       "new_media",
			"media_id":   post.ID,
			"media_type": string(post.MediaType),
			"filename":   post.Filename,
		})
	}

	return post, nil
}

func (uc *mediaUseCase) List(skip, limit int) ([]*entity.MediaPost, error) {
	return uc.mediaRepo.ListPublished(skip, limit)
}

func (uc *mediaUseCase) GetByID(id string) (*entity.MediaPost, error) {
	post, err := uc.mediaRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return post, nil
}

// Delete removes the blob first, then the row with its cascade. A blob
// that is already gone is a no-op; any other blob failure aborts before
// the row is touched, so the post stays queryable.
func (uc *mediaUseCase) Delete(id string) error {
	post, err := uc.GetByID(id)
	if err != nil {
		return err
	}

	if err := uc.blobs.Remove(post.Filename); err != nil && !errors.Is(err, blob.ErrNotExist) {
		return fmt.Errorf("failed to remove media file: %w", err)
	}

	if err := uc.mediaRepo.Delete(post.ID); err != nil {
		return fmt.Errorf("failed to delete media post: %w", err)
	}

	if uc.redisClient != nil {
		ctx := context.Background()
		uc.redisClient.Del(ctx, mediaLikeCountKey(post.ID))
	}

	return nil
}

func (uc *mediaUseCase) publishActivity(task map[string]interface{}) {
	if err := uc.queueClient.PublishActivity(task); err != nil {
		uc.logger.Error("Failed to publish activity task: %v", err)
	}
}
