package main

import (
	"fmt"
	"net/http"
	"time"

	"snapfeed/internal/repo/persistent"
	"snapfeed/internal/usecase"
	"snapfeed/pkg/blob"
	"snapfeed/pkg/config"
	"snapfeed/pkg/database"
	"snapfeed/pkg/logger"
)

// Seeds the database with demo posts using images from the CATAAS API,
// plus a spread of comments, replies and likes.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	var blobStore blob.Store
	switch cfg.StorageBackend {
	case "s3":
		blobStore, err = blob.NewS3Store(cfg)
	default:
		blobStore, err = blob.NewLocalStore(cfg.MediaDir)
	}
	if err != nil {
		log.Error("Failed to create blob store: %v", err)
		panic(err)
	}

	mediaRepo := persistent.NewMediaRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	likeRepo := persistent.NewLikeRepository(db)

	mediaUseCase := usecase.NewMediaUseCase(mediaRepo, blobStore, nil, nil, log)
	engagementUseCase := usecase.NewEngagementUseCase(commentRepo, likeRepo, mediaRepo, nil, nil, log)

	if err := seed(mediaUseCase, engagementUseCase, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seed(mediaUC usecase.MediaUseCase, engagementUC usecase.EngagementUseCase, log *logger.Logger) error {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	users := []string{"alice_cat", "bob_cat", "charlie_cat", "diana_cat", "eve_cat"}
	captions := []string{
		"Morning stretch",
		"Caught mid-yawn",
		"King of the sofa",
		"Snack time negotiations",
		"Professional napper at work",
	}

	for i, caption := range captions {
		url := "https://cataas.com/cat"
		if i%2 == 0 {
			url += fmt.Sprintf("/says/Hello from %s", users[i%len(users)])
		}

		log.Info("Fetching cat image from %s", url)
		resp, err := httpClient.Get(url)
		if err != nil {
			return fmt.Errorf("failed to fetch cat image: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return fmt.Errorf("cataas API returned status %d", resp.StatusCode)
		}

		post, err := mediaUC.Upload(resp.Body, fmt.Sprintf("seed_%d.jpg", i), "photo", caption, `["😺"]`, true)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to upload seed media: %w", err)
		}
		log.Info("Created post %s: %s", post.ID, caption)

		commenter := users[(i+1)%len(users)]
		view, err := engagementUC.CreateComment(post.ID, nil, commenter, "Adorable!")
		if err != nil {
			log.Error("Failed to create comment: %v", err)
			continue
		}

		replier := users[(i+2)%len(users)]
		if _, err := engagementUC.CreateComment(post.ID, &view.Comment.ID, replier, "Agreed!"); err != nil {
			log.Error("Failed to create reply: %v", err)
		}

		for j := 0; j <= i%3; j++ {
			if _, err := engagementUC.LikeMedia(post.ID, users[(i+j)%len(users)]); err != nil {
				log.Error("Failed to like post: %v", err)
			}
		}
		if _, err := engagementUC.LikeComment(view.Comment.ID, users[i%len(users)]); err != nil {
			log.Error("Failed to like comment: %v", err)
		}

		time.Sleep(200 * time.Millisecond)
	}

	return nil
}
