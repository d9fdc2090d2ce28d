package http

import (
	"errors"
	"net/http"

	"snapfeed/internal/entity"
	"snapfeed/internal/usecase"
	"snapfeed/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	engagementUseCase usecase.EngagementUseCase
	logger            *logger.Logger
}

func NewCommentHandler(engagementUseCase usecase.EngagementUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		engagementUseCase: engagementUseCase,
		logger:            logger,
	}
}

func formatCommentLike(like *entity.CommentLike) map[string]interface{} {
	return map[string]interface{}{
		"id":         like.ID,
		"comment_id": like.CommentID,
		"user_name":  like.UserName,
		"created_at": like.CreatedAt,
	}
}

func formatCommentView(view *usecase.CommentView) map[string]interface{} {
	likes := make([]map[string]interface{}, len(view.Likes))
	for i, like := range view.Likes {
		likes[i] = formatCommentLike(like)
	}

	replies := make([]map[string]interface{}, len(view.Replies))
	for i, reply := range view.Replies {
		replies[i] = formatCommentView(reply)
	}

	return map[string]interface{}{
		"id":                view.Comment.ID,
		"media_post_id":     view.Comment.MediaPostID,
		"parent_comment_id": view.Comment.ParentCommentID,
		"user_name":         view.Comment.UserName,
		"content":           view.Comment.Content,
		"created_at":        view.Comment.CreatedAt,
		"updated_at":        view.Comment.UpdatedAt,
		"like_count":        view.LikeCount,
		"reply_count":       view.ReplyCount,
		"likes":             likes,
		"replies":           replies,
	}
}

type CreateCommentRequest struct {
	Content         string  `json:"content" binding:"required"`
	UserName        string  `json:"user_name"`
	ParentCommentID *string `json:"parent_comment_id"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateComment godoc
// @Summary      Comment on media
// @Description  Creates a top-level comment, or a reply when parent_comment_id is set. Replies to replies are rejected.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Media post ID"
// @Param        request body CreateCommentRequest true "Comment payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /media/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	mediaID := c.Param("id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment content is required"})
		return
	}

	view, err := h.engagementUseCase.CreateComment(mediaID, req.ParentCommentID, req.UserName, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMediaNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		case errors.Is(err, usecase.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Parent comment not found"})
		case errors.Is(err, usecase.ErrReplyDepth):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Replies cannot be nested"})
		default:
			h.logger.Error("Failed to create comment: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		}
		return
	}

	c.JSON(http.StatusOK, formatCommentView(view))
}

// ListComments godoc
// @Summary      List comments for media
// @Description  Top-level comments newest first, each carrying its likes and replies.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Media post ID"
// @Param        skip query int false "Rows to skip (default 0)"
// @Param        limit query int false "Max rows to return (default 100)"
// @Success      200  {array}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /media/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	mediaID := c.Param("id")
	skip, limit := paginationParams(c)

	views, err := h.engagementUseCase.ListComments(mediaID, skip, limit)
	if err != nil {
		if errors.Is(err, usecase.ErrMediaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
			return
		}
		h.logger.Error("Failed to list comments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	response := make([]map[string]interface{}, len(views))
	for i, view := range views {
		response[i] = formatCommentView(view)
	}

	c.JSON(http.StatusOK, response)
}

// GetComment godoc
// @Summary      Get a comment by ID
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	commentID := c.Param("id")

	view, err := h.engagementUseCase.GetComment(commentID)
	if err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		h.logger.Error("Failed to get comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comment"})
		return
	}

	c.JSON(http.StatusOK, formatCommentView(view))
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Description  Replaces the comment text. Authorship, parent and likes are untouched.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Comment ID"
// @Param        request body UpdateCommentRequest true "New content"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID := c.Param("id")

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment content is required"})
		return
	}

	view, err := h.engagementUseCase.UpdateComment(commentID, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		h.logger.Error("Failed to update comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
		return
	}

	c.JSON(http.StatusOK, formatCommentView(view))
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Deleting a top-level comment also removes its replies and all of their likes.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID := c.Param("id")

	if err := h.engagementUseCase.DeleteComment(commentID); err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		h.logger.Error("Failed to delete comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
