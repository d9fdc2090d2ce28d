package blob

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *LocalStore {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func TestLocalStore_SaveAndOpen(t *testing.T) {
	store := newTestStore(t)
	data := []byte("hello snapfeed")

	path, err := store.Save("photo_1000.jpg", bytes.NewReader(data), "image/jpeg")
	assert.NoError(t, err)
	assert.NotEmpty(t, path)

	rc, size, err := store.Open("photo_1000.jpg")
	assert.NoError(t, err)
	defer rc.Close()

	assert.Equal(t, int64(len(data)), size)

	got, err := io.ReadAll(rc)
	assert.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLocalStore_OpenRange(t *testing.T) {
	store := newTestStore(t)
	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i % 251)
	}

	_, err := store.Save("video_1000.mp4", bytes.NewReader(data), "video/mp4")
	assert.NoError(t, err)

	rc, err := store.OpenRange("video_1000.mp4", 100, 199)
	assert.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	assert.NoError(t, err)
	assert.Equal(t, 100, len(got))
	assert.Equal(t, data[100:200], got)
}

func TestLocalStore_SizeAndRemove(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("photo_2000.png", strings.NewReader("abcdef"), "image/png")
	assert.NoError(t, err)

	size, err := store.Size("photo_2000.png")
	assert.NoError(t, err)
	assert.Equal(t, int64(6), size)

	assert.NoError(t, store.Remove("photo_2000.png"))
	assert.ErrorIs(t, store.Remove("photo_2000.png"), ErrNotExist)

	_, err = store.Size("photo_2000.png")
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestLocalStore_MissingObject(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Open("nope.mp4")
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestLocalStore_RejectsPathTraversal(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"../escape.mp4", "a/b.mp4", ".hidden", ""} {
		_, _, err := store.Open(name)
		assert.ErrorIs(t, err, ErrNotExist, "name %q", name)
	}
}
