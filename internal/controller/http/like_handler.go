package http

import (
	"errors"
	"net/http"

	"snapfeed/internal/entity"
	"snapfeed/internal/usecase"
	"snapfeed/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	engagementUseCase usecase.EngagementUseCase
	logger            *logger.Logger
}

func NewLikeHandler(engagementUseCase usecase.EngagementUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		engagementUseCase: engagementUseCase,
		logger:            logger,
	}
}

type LikeRequest struct {
	UserName string `json:"user_name"`
}

func formatMediaLike(like *entity.MediaLike) map[string]interface{} {
	return map[string]interface{}{
		"id":            like.ID,
		"media_post_id": like.MediaPostID,
		"user_name":     like.UserName,
		"created_at":    like.CreatedAt,
	}
}

// likeUserName pulls the optional user_name out of the JSON body. An
// empty or absent body is fine; it falls through to the default user.
func likeUserName(c *gin.Context) string {
	if c.Request.ContentLength <= 0 {
		return ""
	}
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return ""
	}
	return req.UserName
}

// LikeMedia godoc
// @Summary      Like media
// @Description  One like per user per post. Liking twice is a conflict, not a toggle.
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        id path string true "Media post ID"
// @Param        request body LikeRequest false "Optional user name"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /media/{id}/like [post]
func (h *LikeHandler) LikeMedia(c *gin.Context) {
	mediaID := c.Param("id")

	like, err := h.engagementUseCase.LikeMedia(mediaID, likeUserName(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMediaNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		case errors.Is(err, usecase.ErrLikeExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already liked"})
		default:
			h.logger.Error("Failed to like media: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like media"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Media liked", "like": formatMediaLike(like)})
}

// UnlikeMedia godoc
// @Summary      Unlike media
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        id path string true "Media post ID"
// @Param        user_name query string false "User name (defaults to Anonymous)"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /media/{id}/like [delete]
func (h *LikeHandler) UnlikeMedia(c *gin.Context) {
	mediaID := c.Param("id")

	if err := h.engagementUseCase.UnlikeMedia(mediaID, c.Query("user_name")); err != nil {
		switch {
		case errors.Is(err, usecase.ErrMediaNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		case errors.Is(err, usecase.ErrLikeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Like not found"})
		default:
			h.logger.Error("Failed to unlike media: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike media"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Media unliked"})
}

// ListMediaLikes godoc
// @Summary      List likes on media
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        id path string true "Media post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /media/{id}/likes [get]
func (h *LikeHandler) ListMediaLikes(c *gin.Context) {
	mediaID := c.Param("id")

	likes, err := h.engagementUseCase.ListMediaLikes(mediaID)
	if err != nil {
		if errors.Is(err, usecase.ErrMediaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
			return
		}
		h.logger.Error("Failed to list media likes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch likes"})
		return
	}

	response := make([]map[string]interface{}, len(likes))
	for i, like := range likes {
		response[i] = formatMediaLike(like)
	}

	c.JSON(http.StatusOK, gin.H{"likes": response, "count": len(response)})
}

// LikeComment godoc
// @Summary      Like a comment
// @Description  One like per user per comment; replies are likeable too.
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        id path string true "Comment ID"
// @Param        request body LikeRequest false "Optional user name"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id}/like [post]
func (h *LikeHandler) LikeComment(c *gin.Context) {
	commentID := c.Param("id")

	like, err := h.engagementUseCase.LikeComment(commentID, likeUserName(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		case errors.Is(err, usecase.ErrLikeExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already liked"})
		default:
			h.logger.Error("Failed to like comment: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like comment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment liked", "like": formatCommentLike(like)})
}

// UnlikeComment godoc
// @Summary      Unlike a comment
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        id path string true "Comment ID"
// @Param        user_name query string false "User name (defaults to Anonymous)"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id}/like [delete]
func (h *LikeHandler) UnlikeComment(c *gin.Context) {
	commentID := c.Param("id")

	if err := h.engagementUseCase.UnlikeComment(commentID, c.Query("user_name")); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		case errors.Is(err, usecase.ErrLikeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Like not found"})
		default:
			h.logger.Error("Failed to unlike comment: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike comment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment unliked"})
}

// ListCommentLikes godoc
// @Summary      List likes on a comment
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id}/likes [get]
func (h *LikeHandler) ListCommentLikes(c *gin.Context) {
	commentID := c.Param("id")

	likes, err := h.engagementUseCase.ListCommentLikes(commentID)
	if err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		h.logger.Error("Failed to list comment likes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch likes"})
		return
	}

	response := make([]map[string]interface{}, len(likes))
	for i, like := range likes {
		response[i] = formatCommentLike(like)
	}

	c.JSON(http.StatusOK, gin.H{"likes": response, "count": len(response)})
}
