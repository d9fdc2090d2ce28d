package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"snapfeed/internal/usecase"
	"snapfeed/pkg/logger"

	"github.com/gin-gonic/gin"
)

// streamChunkSize is the copy buffer used when writing media bodies.
const streamChunkSize = 8192

type StreamHandler struct {
	streamUseCase usecase.StreamUseCase
	logger        *logger.Logger
}

func NewStreamHandler(streamUseCase usecase.StreamUseCase, logger *logger.Logger) *StreamHandler {
	return &StreamHandler{
		streamUseCase: streamUseCase,
		logger:        logger,
	}
}

// ServeMedia godoc
// @Summary      Serve a media file
// @Description  Streams the stored file by name. Videos honor a single-span Range header and come back as 206 partial content; photos always get the full body.
// @Tags         media
// @Produce      octet-stream
// @Param        filename path string true "Stored filename"
// @Param        Range header string false "Byte range, e.g. bytes=0-1023"
// @Success      200  {file}  binary
// @Success      206  {file}  binary
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /media/{filename} [get]
func (h *StreamHandler) ServeMedia(c *gin.Context) {
	filename := c.Param("filename")

	stream, err := h.streamUseCase.Fetch(filename, c.GetHeader("Range"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		case errors.Is(err, usecase.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid range header"})
		default:
			h.logger.Error("Failed to open media file %s: %v", filename, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serve media"})
		}
		return
	}
	defer stream.Body.Close()

	c.Header("Accept-Ranges", "bytes")
	c.Header("Content-Type", stream.ContentType)
	c.Header("Content-Length", strconv.FormatInt(stream.ContentLength(), 10))

	status := http.StatusOK
	if stream.Partial {
		c.Header("Content-Range", fmt.Sprintf("bytes %d-%d/%d", stream.Start, stream.End, stream.Size))
		status = http.StatusPartialContent
	}

	c.Status(status)

	buf := make([]byte, streamChunkSize)
	if _, err := io.CopyBuffer(c.Writer, stream.Body, buf); err != nil {
		// Headers are gone; all we can do is log. Client disconnects
		// land here routinely during video scrubbing.
		h.logger.Warn("Stream of %s aborted: %v", filename, err)
	}
}
