package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"snapfeed/internal/entity"
	"snapfeed/internal/usecase"
	"snapfeed/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func multipartUpload(t *testing.T, fields map[string]string, fileField, fileName string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		writer.WriteField(k, v)
	}
	part, err := writer.CreateFormFile(fileField, fileName)
	assert.NoError(t, err)
	part.Write(fileData)
	writer.Close()

	return body, writer.FormDataContentType()
}

func TestUploadMedia_Success(t *testing.T) {
	mockMedia := new(MockMediaUseCase)
	mockEngagement := new(MockEngagementUseCase)
	handler := NewMediaHandler(mockMedia, mockEngagement, logger.New())

	router := setupTestRouter()
	router.POST("/media", handler.UploadMedia)

	mockPost := &entity.MediaPost{
		ID:        "media-123",
		Filename:  "photo_1700000000000.jpg",
		MediaType: entity.MediaTypePhoto,
		Caption:   "sunset",
		Emojis:    "[]",
		Published: true,
	}
	mockMedia.On("Upload", mock.Anything, "sunset.jpg", "photo", "sunset", "", true).Return(mockPost, nil)

	body, contentType := multipartUpload(t, map[string]string{
		"media_type": "photo",
		"caption":    "sunset",
	}, "file", "sunset.jpg", []byte("fake image data"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/media", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "media-123", response["id"])
	assert.Equal(t, "/media/photo_1700000000000.jpg", response["url"])

	mockMedia.AssertExpectations(t)
}

func TestUploadMedia_InvalidMediaType(t *testing.T) {
	mockMedia := new(MockMediaUseCase)
	mockEngagement := new(MockEngagementUseCase)
	handler := NewMediaHandler(mockMedia, mockEngagement, logger.New())

	router := setupTestRouter()
	router.POST("/media", handler.UploadMedia)

	body, contentType := multipartUpload(t, map[string]string{
		"media_type": "gif",
	}, "file", "loop.gif", []byte("gif data"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/media", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMedia.AssertNotCalled(t, "Upload")
}

func TestUploadMedia_MissingFile(t *testing.T) {
	mockMedia := new(MockMediaUseCase)
	mockEngagement := new(MockEngagementUseCase)
	handler := NewMediaHandler(mockMedia, mockEngagement, logger.New())

	router := setupTestRouter()
	router.POST("/media", handler.UploadMedia)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("media_type", "photo")
	writer.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/media", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMedia.AssertNotCalled(t, "Upload")
}

func TestListMedia_Defaults(t *testing.T) {
	mockMedia := new(MockMediaUseCase)
	mockEngagement := new(MockEngagementUseCase)
	handler := NewMediaHandler(mockMedia, mockEngagement, logger.New())

	router := setupTestRouter()
	router.GET("/media", handler.ListMedia)

	posts := []*entity.MediaPost{
		{ID: "media-1", Filename: "video_2.mp4", MediaType: entity.MediaTypeVideo, Timestamp: 200},
		{ID: "media-2", Filename: "photo_1.jpg", MediaType: entity.MediaTypePhoto, Timestamp: 100},
	}
	mockMedia.On("List", 0, 100).Return(posts, nil)
	mockEngagement.On("MediaLikeCount", "media-1").Return(int64(3), nil)
	mockEngagement.On("MediaLikeCount", "media-2").Return(int64(0), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/media", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)
	assert.Equal(t, "media-1", response[0]["id"])
	assert.Equal(t, float64(3), response[0]["likes_count"])

	mockMedia.AssertExpectations(t)
	mockEngagement.AssertExpectations(t)
}

func TestListMedia_Pagination(t *testing.T) {
	mockMedia := new(MockMediaUseCase)
	mockEngagement := new(MockEngagementUseCase)
	handler := NewMediaHandler(mockMedia, mockEngagement, logger.New())

	router := setupTestRouter()
	router.GET("/media", handler.ListMedia)

	mockMedia.On("List", 5, 10).Return([]*entity.MediaPost{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/media?skip=5&limit=10", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockMedia.AssertExpectations(t)
}

func TestGetMedia_NotFound(t *testing.T) {
	mockMedia := new(MockMediaUseCase)
	mockEngagement := new(MockEngagementUseCase)
	handler := NewMediaHandler(mockMedia, mockEngagement, logger.New())

	router := setupTestRouter()
	router.GET("/media/:id", handler.GetMedia)

	mockMedia.On("GetByID", "missing").Return(nil, usecase.ErrMediaNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/media/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockMedia.AssertExpectations(t)
}

func TestDeleteMedia_Success(t *testing.T) {
	mockMedia := new(MockMediaUseCase)
	mockEngagement := new(MockEngagementUseCase)
	handler := NewMediaHandler(mockMedia, mockEngagement, logger.New())

	router := setupTestRouter()
	router.DELETE("/media/:id", handler.DeleteMedia)

	mockMedia.On("Delete", "media-123").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/media/media-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Media deleted successfully", response["message"])

	mockMedia.AssertExpectations(t)
}

func TestDeleteMedia_NotFound(t *testing.T) {
	mockMedia := new(MockMediaUseCase)
	mockEngagement := new(MockEngagementUseCase)
	handler := NewMediaHandler(mockMedia, mockEngagement, logger.New())

	router := setupTestRouter()
	router.DELETE("/media/:id", handler.DeleteMedia)

	mockMedia.On("Delete", "missing").Return(usecase.ErrMediaNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/media/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockMedia.AssertExpectations(t)
}

func TestDeleteMedia_InternalError(t *testing.T) {
	mockMedia := new(MockMediaUseCase)
	mockEngagement := new(MockEngagementUseCase)
	handler := NewMediaHandler(mockMedia, mockEngagement, logger.New())

	router := setupTestRouter()
	router.DELETE("/media/:id", handler.DeleteMedia)

	mockMedia.On("Delete", "media-123").Return(errors.New("disk on fire"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/media/media-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockMedia.AssertExpectations(t)
}
