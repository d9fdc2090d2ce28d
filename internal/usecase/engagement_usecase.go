package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"snapfeed/internal/entity"
	"snapfeed/internal/repo/persistent"
	"snapfeed/pkg/logger"
	"snapfeed/pkg/queue"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const anonymousUser = "Anonymous"

// CommentView is a comment annotated with aggregates recomputed on every
// read: its likes, like count, reply count and (for top-level comments)
// its replies.
type CommentView struct {
	Comment    *entity.Comment
	LikeCount  int64
	ReplyCount int64
	Likes      []*entity.CommentLike
	Replies    []*CommentView
}

type EngagementUseCase interface {
	CreateComment(mediaPostID string, parentCommentID *string, userName, content string) (*CommentView, error)
	ListComments(mediaPostID string, skip, limit int) ([]*CommentView, error)
	GetComment(id string) (*CommentView, error)
	UpdateComment(id, content string) (*CommentView, error)
	DeleteComment(id string) error

	LikeMedia(mediaPostID, userName string) (*entity.MediaLike, error)
	UnlikeMedia(mediaPostID, userName string) error
	ListMediaLikes(mediaPostID string) ([]*entity.MediaLike, error)
	MediaLikeCount(mediaPostID string) (int64, error)

	LikeComment(commentID, userName string) (*entity.CommentLike, error)
	UnlikeComment(commentID, userName string) error
	ListCommentLikes(commentID string) ([]*entity.CommentLike, error)
}

type engagementUseCase struct {
	commentRepo persistent.CommentRepository
	likeRepo    persistent.LikeRepository
	mediaRepo   persistent.MediaRepository
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewEngagementUseCase(
	commentRepo persistent.CommentRepository,
	likeRepo persistent.LikeRepository,
	mediaRepo persistent.MediaRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) EngagementUseCase {
	return &engagementUseCase{
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		mediaRepo:   mediaRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

func mediaLikeCountKey(mediaPostID string) string {
	return fmt.Sprintf("media:likes:%s", mediaPostID)
}

func (uc *engagementUseCase) requireMedia(mediaPostID string) error {
	exists, err := uc.mediaRepo.Exists(mediaPostID)
	if err != nil {
		return fmt.Errorf("failed to check media post: %w", err)
	}
	if !exists {
		return ErrMediaNotFound
	}
	return nil
}

func (uc *engagementUseCase) CreateComment(mediaPostID string, parentCommentID *string, userName, content string) (*CommentView, error) {
	if err := uc.requireMedia(mediaPostID); err != nil {
		return nil, err
	}

	if parentCommentID != nil && *parentCommentID != "" {
		parent, err := uc.commentRepo.GetByID(*parentCommentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCommentNotFound
			}
			return nil, err
		}
		// A parent on another post is treated as missing, not as a
		// validation failure.
		if parent.MediaPostID != mediaPostID {
			return nil, ErrCommentNotFound
		}
		if parent.IsReply() {
			return nil, ErrReplyDepth
		}
	} else {
		parentCommentID = nil
	}

	if userName == "" {
		userName = anonymousUser
	}

	comment := &entity.Comment{
		MediaPostID:     mediaPostID,
		ParentCommentID: parentCommentID,
		UserName:        userName,
		Content:         content,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if uc.queueClient != nil {
		go uc.publishActivity(map[string]interface{}{
			"type":       "new_comment",
			"media_id":   mediaPostID,
			"comment_id": comment.ID,
			"user_name":  userName,
		})
	}

	return &CommentView{
		Comment: comment,
		Likes:   []*entity.CommentLike{},
		Replies: []*CommentView{},
	}, nil
}

func (uc *engagementUseCase) ListComments(mediaPostID string, skip, limit int) ([]*CommentView, error) {
	if err := uc.requireMedia(mediaPostID); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListTopLevel(mediaPostID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	views := make([]*CommentView, len(comments))
	for i, comment := range comments {
		view, err := uc.commentView(comment, true)
		if err != nil {
			return nil, err
		}
		views[i] = view
	}
	return views, nil
}

func (uc *engagementUseCase) GetComment(id string) (*CommentView, error) {
	comment, err := uc.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return uc.commentView(comment, true)
}

func (uc *engagementUseCase) UpdateComment(id, content string) (*CommentView, error) {
	if err := uc.commentRepo.UpdateContent(id, content); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return uc.GetComment(id)
}

func (uc *engagementUseCase) DeleteComment(id string) error {
	if err := uc.commentRepo.DeleteTree(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (uc *engagementUseCase) LikeMedia(mediaPostID, userName string) (*entity.MediaLike, error) {
	if err := uc.requireMedia(mediaPostID); err != nil {
		return nil, err
	}
	if userName == "" {
		userName = anonymousUser
	}

	liked, err := uc.likeRepo.MediaLikeExists(mediaPostID, userName)
	if err != nil {
		return nil, fmt.Errorf("failed to check like status: %w", err)
	}
	if liked {
		return nil, ErrLikeExists
	}

	like, err := uc.likeRepo.CreateMediaLike(mediaPostID, userName)
	if err != nil {
		return nil, fmt.Errorf("failed to create like: %w", err)
	}

	uc.invalidateMediaLikeCount(mediaPostID)

	if uc.queueClient != nil {
		go uc.publishActivity(map[string]interface{}{
			"type":      "media_like",
			"media_id":  mediaPostID,
			"user_name": userName,
		})
	}

	return like, nil
}

func (uc *engagementUseCase) UnlikeMedia(mediaPostID, userName string) error {
	if err := uc.requireMedia(mediaPostID); err != nil {
		return err
	}
	if userName == "" {
		userName = anonymousUser
	}

	rows, err := uc.likeRepo.DeleteMediaLike(mediaPostID, userName)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if rows == 0 {
		return ErrLikeNotFound
	}

	uc.invalidateMediaLikeCount(mediaPostID)
	return nil
}

func (uc *engagementUseCase) ListMediaLikes(mediaPostID string) ([]*entity.MediaLike, error) {
	if err := uc.requireMedia(mediaPostID); err != nil {
		return nil, err
	}
	return uc.likeRepo.ListMediaLikes(mediaPostID)
}

// MediaLikeCount serves from the redis cache when possible, falling back
// to a database count. The cache is invalidated, never incremented, on
// mutation, so a stale increment can never drift the count.
func (uc *engagementUseCase) MediaLikeCount(mediaPostID string) (int64, error) {
	ctx := context.Background()

	if uc.redisClient != nil {
		if cached, err := uc.redisClient.Get(ctx, mediaLikeCountKey(mediaPostID)).Result(); err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	count, err := uc.likeRepo.CountMediaLikes(mediaPostID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	if uc.redisClient != nil {
		uc.redisClient.Set(ctx, mediaLikeCountKey(mediaPostID), count, 0)
	}

	return count, nil
}

func (uc *engagementUseCase) LikeComment(commentID, userName string) (*entity.CommentLike, error) {
	if err := uc.requireComment(commentID); err != nil {
		return nil, err
	}
	if userName == "" {
		userName = anonymousUser
	}

	liked, err := uc.likeRepo.CommentLikeExists(commentID, userName)
	if err != nil {
		return nil, fmt.Errorf("failed to check like status: %w", err)
	}
	if liked {
		return nil, ErrLikeExists
	}

	like, err := uc.likeRepo.CreateCommentLike(commentID, userName)
	if err != nil {
		return nil, fmt.Errorf("failed to create like: %w", err)
	}

	if uc.queueClient != nil {
		go uc.publishActivity(map[string]interface{}{
			"type":       "comment_like",
			"comment_id": commentID,
			"user_name":  userName,
		})
	}

	return like, nil
}

func (uc *engagementUseCase) UnlikeComment(commentID, userName string) error {
	if err := uc.requireComment(commentID); err != nil {
		return err
	}
	if userName == "" {
		userName = anonymousUser
	}

	rows, err := uc.likeRepo.DeleteCommentLike(commentID, userName)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if rows == 0 {
		return ErrLikeNotFound
	}
	return nil
}

func (uc *engagementUseCase) ListCommentLikes(commentID string) ([]*entity.CommentLike, error) {
	if err := uc.requireComment(commentID); err != nil {
		return nil, err
	}
	return uc.likeRepo.ListCommentLikes(commentID)
}

func (uc *engagementUseCase) requireComment(commentID string) error {
	if _, err := uc.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to check comment: %w", err)
	}
	return nil
}

func (uc *engagementUseCase) commentView(comment *entity.Comment, withReplies bool) (*CommentView, error) {
	likes, err := uc.likeRepo.ListCommentLikes(comment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comment likes: %w", err)
	}

	view := &CommentView{
		Comment:   comment,
		Likes:     likes,
		LikeCount: int64(len(likes)),
		Replies:   []*CommentView{},
	}

	if withReplies && !comment.IsReply() {
		replies, err := uc.commentRepo.ListReplies(comment.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list replies: %w", err)
		}
		view.ReplyCount = int64(len(replies))
		view.Replies = make([]*CommentView, len(replies))
		for i, reply := range replies {
			replyView, err := uc.commentView(reply, false)
			if err != nil {
				return nil, err
			}
			view.Replies[i] = replyView
		}
	} else {
		count, err := uc.commentRepo.CountReplies(comment.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count replies: %w", err)
		}
		view.ReplyCount = count
	}

	return view, nil
}

func (uc *engagementUseCase) invalidateMediaLikeCount(mediaPostID string) {
	if uc.redisClient == nil {
		return
	}
	uc.redisClient.Del(context.Background(), mediaLikeCountKey(mediaPostID))
}

func (uc *engagementUseCase) publishActivity(task map[string]interface{}) {
	if err := uc.queueClient.PublishActivity(task); err != nil {
		uc.logger.Error("Failed to publish activity task: %v", err)
	}
}
