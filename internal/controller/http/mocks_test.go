package http

import (
	"io"

	"snapfeed/internal/entity"
	"snapfeed/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockMediaUseCase is a mock implementation of MediaUseCase
type MockMediaUseCase struct {
	mock.Mock
}

func (m *MockMediaUseCase) Upload(src io.Reader, originalFilename, mediaType, caption, emojis string, published bool) (*entity.MediaPost, error) {
	args := m.Called(src, originalFilename, mediaType, caption, emojis, published)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MediaPost), args.Error(1)
}

func (m *MockMediaUseCase) List(skip, limit int) ([]*entity.MediaPost, error) {
	args := m.Called(skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.MediaPost), args.Error(1)
}

func (m *MockMediaUseCase) GetByID(id string) (*entity.MediaPost, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MediaPost), args.Error(1)
}

func (m *MockMediaUseCase) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ usecase.MediaUseCase = (*MockMediaUseCase)(nil)

// MockEngagementUseCase is a mock implementation of EngagementUseCase
type MockEngagementUseCase struct {
	mock.Mock
}

func (m *MockEngagementUseCase) CreateComment(mediaPostID string, parentCommentID *string, userName, content string) (*usecase.CommentView, error) {
	args := m.Called(mediaPostID, parentCommentID, userName, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CommentView), args.Error(1)
}

func (m *MockEngagementUseCase) ListComments(mediaPostID string, skip, limit int) ([]*usecase.CommentView, error) {
	args := m.Called(mediaPostID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*usecase.CommentView), args.Error(1)
}

func (m *MockEngagementUseCase) GetComment(id string) (*usecase.CommentView, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CommentView), args.Error(1)
}

func (m *MockEngagementUseCase) UpdateComment(id, content string) (*usecase.CommentView, error) {
	args := m.Called(id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CommentView), args.Error(1)
}

func (m *MockEngagementUseCase) DeleteComment(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockEngagementUseCase) LikeMedia(mediaPostID, userName string) (*entity.MediaLike, error) {
	args := m.Called(mediaPostID, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MediaLike), args.Error(1)
}

func (m *MockEngagementUseCase) UnlikeMedia(mediaPostID, userName string) error {
	args := m.Called(mediaPostID, userName)
	return args.Error(0)
}

func (m *MockEngagementUseCase) ListMediaLikes(mediaPostID string) ([]*entity.MediaLike, error) {
	args := m.Called(mediaPostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.MediaLike), args.Error(1)
}

func (m *MockEngagementUseCase) MediaLikeCount(mediaPostID string) (int64, error) {
	args := m.Called(mediaPostID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementUseCase) LikeComment(commentID, userName string) (*entity.CommentLike, error) {
	args := m.Called(commentID, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CommentLike), args.Error(1)
}

func (m *MockEngagementUseCase) UnlikeComment(commentID, userName string) error {
	args := m.Called(commentID, userName)
	return args.Error(0)
}

func (m *MockEngagementUseCase) ListCommentLikes(commentID string) ([]*entity.CommentLike, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CommentLike), args.Error(1)
}

var _ usecase.EngagementUseCase = (*MockEngagementUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
