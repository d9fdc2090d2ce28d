package usecase

import (
	"testing"

	"snapfeed/internal/model"
	"snapfeed/internal/repo/persistent"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testRepos struct {
	db      *gorm.DB
	media   persistent.MediaRepository
	comment persistent.CommentRepository
	like    persistent.LikeRepository
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.MediaPostModel{},
		&model.CommentModel{},
		&model.MediaLikeModel{},
		&model.CommentLikeModel{},
	))

	return &testRepos{
		db:      db,
		media:   persistent.NewMediaRepository(db),
		comment: persistent.NewCommentRepository(db),
		like:    persistent.NewLikeRepository(db),
	}
}
