package http

import (
	"errors"
	"net/http"
	"strconv"

	"snapfeed/internal/entity"
	"snapfeed/internal/usecase"
	"snapfeed/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

type MediaHandler struct {
	mediaUseCase      usecase.MediaUseCase
	engagementUseCase usecase.EngagementUseCase
	logger            *logger.Logger
}

func NewMediaHandler(mediaUseCase usecase.MediaUseCase, engagementUseCase usecase.EngagementUseCase, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUseCase:      mediaUseCase,
		engagementUseCase: engagementUseCase,
		logger:            logger,
	}
}

func (h *MediaHandler) formatMediaResponse(post *entity.MediaPost, likeCount int64) map[string]interface{} {
	return map[string]interface{}{
		"id":          post.ID,
		"filename":    post.Filename,
		"media_type":  post.MediaType,
		"caption":     post.Caption,
		"emojis":      post.Emojis,
		"timestamp":   post.Timestamp,
		"published":   post.Published,
		"url":         "/media/" + post.Filename,
		"likes_count": likeCount,
	}
}

type UploadMediaRequest struct {
	MediaType string `form:"media_type" binding:"required,oneof=photo video"`
	Caption   string `form:"caption"`
	Emojis    string `form:"emojis"`
	Published *bool  `form:"published"`
}

// UploadMedia godoc
// @Summary      Upload media
// @Description  Upload a photo or video. Only public media should be sent here; the published flag defaults to true.
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Media file"
// @Param        media_type formData string true "Media type" Enums(photo, video)
// @Param        caption formData string false "Caption"
// @Param        emojis formData string false "JSON-serialized emoji list"
// @Param        published formData bool false "Published flag (defaults to true)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /media [post]
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	var req UploadMediaRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media type"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Media file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read media file"})
		return
	}
	defer src.Close()

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	post, err := h.mediaUseCase.Upload(src, file.Filename, req.MediaType, req.Caption, req.Emojis, published)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidMediaType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media type"})
			return
		}
		h.logger.Error("Failed to upload media: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload media"})
		return
	}

	c.JSON(http.StatusOK, h.formatMediaResponse(post, 0))
}

// ListMedia godoc
// @Summary      List the feed
// @Description  Published media posts, newest first, with live like counts.
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        skip query int false "Rows to skip (default 0)"
// @Param        limit query int false "Max rows to return (default 100)"
// @Success      200  {array}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /media [get]
func (h *MediaHandler) ListMedia(c *gin.Context) {
	skip, limit := paginationParams(c)

	posts, err := h.mediaUseCase.List(skip, limit)
	if err != nil {
		h.logger.Error("Failed to list media: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch media"})
		return
	}

	response := make([]map[string]interface{}, len(posts))
	for i, post := range posts {
		likeCount, _ := h.engagementUseCase.MediaLikeCount(post.ID)
		response[i] = h.formatMediaResponse(post, likeCount)
	}

	c.JSON(http.StatusOK, response)
}

// GetMedia godoc
// @Summary      Get media by ID
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        id path string true "Media post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /media/{id} [get]
func (h *MediaHandler) GetMedia(c *gin.Context) {
	mediaID := c.Param("id")

	post, err := h.mediaUseCase.GetByID(mediaID)
	if err != nil {
		if errors.Is(err, usecase.ErrMediaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
			return
		}
		h.logger.Error("Failed to get media: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch media"})
		return
	}

	likeCount, _ := h.engagementUseCase.MediaLikeCount(post.ID)
	c.JSON(http.StatusOK, h.formatMediaResponse(post, likeCount))
}

// DeleteMedia godoc
// @Summary      Delete media
// @Description  Removes the backing file and the row; comments, replies and likes are cascaded.
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        id path string true "Media post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /media/{id} [delete]
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	mediaID := c.Param("id")

	if err := h.mediaUseCase.Delete(mediaID); err != nil {
		if errors.Is(err, usecase.ErrMediaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
			return
		}
		h.logger.Error("Failed to delete media: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Media deleted successfully"})
}

func paginationParams(c *gin.Context) (int, int) {
	skip := defaultSkip
	limit := defaultLimit

	if skipStr := c.Query("skip"); skipStr != "" {
		if s, err := strconv.Atoi(skipStr); err == nil && s >= 0 {
			skip = s
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	return skip, limit
}
