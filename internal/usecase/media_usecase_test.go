package usecase

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"snapfeed/internal/entity"
	"snapfeed/pkg/blob"
	"snapfeed/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMediaUseCase(t *testing.T) (MediaUseCase, *testRepos, blob.Store) {
	t.Helper()

	repos := newTestRepos(t)
	store, err := blob.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	return NewMediaUseCase(repos.media, store, nil, nil, logger.New()), repos, store
}

func TestUpload_Photo(t *testing.T) {
	uc, _, store := newMediaUseCase(t)

	post, err := uc.Upload(bytes.NewReader([]byte("image data")), "Sunset.JPG", "photo", "golden hour", "", true)
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.Regexp(t, regexp.MustCompile(`^photo_\d+\.jpg$`), post.Filename)
	assert.Equal(t, "Sunset.JPG", post.OriginalFilename)
	assert.Equal(t, entity.MediaTypePhoto, post.MediaType)
	assert.Equal(t, "[]", post.Emojis)
	assert.True(t, post.Published)

	size, err := store.Size(post.Filename)
	require.NoError(t, err)
	assert.Equal(t, int64(len("image data")), size)
}

func TestUpload_InvalidMediaType(t *testing.T) {
	uc, _, _ := newMediaUseCase(t)

	_, err := uc.Upload(bytes.NewReader([]byte("data")), "clip.gif", "gif", "", "", true)
	assert.ErrorIs(t, err, ErrInvalidMediaType)
}

func TestList_PublishedOnlyNewestFirst(t *testing.T) {
	uc, repos, _ := newMediaUseCase(t)

	for _, p := range []*entity.MediaPost{
		{Filename: "photo_1.jpg", MediaType: entity.MediaTypePhoto, Timestamp: 100, Published: true},
		{Filename: "photo_2.jpg", MediaType: entity.MediaTypePhoto, Timestamp: 300, Published: false},
		{Filename: "photo_3.jpg", MediaType: entity.MediaTypePhoto, Timestamp: 200, Published: true},
	} {
		require.NoError(t, repos.media.Create(p))
	}

	posts, err := uc.List(0, 100)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "photo_3.jpg", posts[0].Filename)
	assert.Equal(t, "photo_1.jpg", posts[1].Filename)
}

func TestList_Pagination(t *testing.T) {
	uc, repos, _ := newMediaUseCase(t)

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, repos.media.Create(&entity.MediaPost{
			Filename:  fmt.Sprintf("photo_%d.jpg", i),
			MediaType: entity.MediaTypePhoto,
			Timestamp: i * 10,
			Published: true,
		}))
	}

	posts, err := uc.List(1, 2)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(40), posts[0].Timestamp)
	assert.Equal(t, int64(30), posts[1].Timestamp)
}

func TestGetByID_NotFound(t *testing.T) {
	uc, _, _ := newMediaUseCase(t)

	_, err := uc.GetByID("no-such-id")
	assert.ErrorIs(t, err, ErrMediaNotFound)
}

func TestDelete_CascadesAndRemovesBlob(t *testing.T) {
	uc, repos, store := newMediaUseCase(t)

	post, err := uc.Upload(bytes.NewReader([]byte("video data")), "clip.mp4", "video", "", "", true)
	require.NoError(t, err)

	comment := &entity.Comment{MediaPostID: post.ID, UserName: "alice", Content: "top"}
	require.NoError(t, repos.comment.Create(comment))
	reply := &entity.Comment{MediaPostID: post.ID, ParentCommentID: &comment.ID, UserName: "bob", Content: "reply"}
	require.NoError(t, repos.comment.Create(reply))

	_, err = repos.like.CreateMediaLike(post.ID, "alice")
	require.NoError(t, err)
	_, err = repos.like.CreateCommentLike(reply.ID, "alice")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(post.ID))

	_, err = uc.GetByID(post.ID)
	assert.ErrorIs(t, err, ErrMediaNotFound)

	_, err = store.Size(post.Filename)
	assert.ErrorIs(t, err, blob.ErrNotExist)

	count, err := repos.like.CountMediaLikes(post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repos.like.CountCommentLikes(reply.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repos.comment.GetByID(comment.ID)
	assert.Error(t, err)
}

func TestDelete_MissingBlobIsNoOp(t *testing.T) {
	uc, _, store := newMediaUseCase(t)

	post, err := uc.Upload(bytes.NewReader([]byte("data")), "pic.png", "photo", "", "", true)
	require.NoError(t, err)

	require.NoError(t, store.Remove(post.Filename))
	require.NoError(t, uc.Delete(post.ID))

	_, err = uc.GetByID(post.ID)
	assert.ErrorIs(t, err, ErrMediaNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	uc, _, _ := newMediaUseCase(t)

	err := uc.Delete("no-such-id")
	assert.ErrorIs(t, err, ErrMediaNotFound)
	assert.False(t, errors.Is(err, ErrFileNotFound))
}
