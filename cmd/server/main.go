package main

import (
	"snapfeed/internal/app"
	"snapfeed/pkg/blob"
	"snapfeed/pkg/cache"
	"snapfeed/pkg/config"
	"snapfeed/pkg/database"
	"snapfeed/pkg/logger"
	"snapfeed/pkg/queue"

	"github.com/redis/go-redis/v9"
)

// @title           Snapfeed Media API
// @version         1.0
// @description     Media sharing backend: photo/video upload, range streaming, comments and likes.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Redis is optional: without it like counts fall back to database
	// counts and the rate limiter is skipped.
	var redisClient *redis.Client
	if rc, err := cache.NewRedisClient(cfg); err != nil {
		log.Warn("Redis unavailable, running without cache: %v", err)
	} else {
		redisClient = rc
	}

	var blobStore blob.Store
	switch cfg.StorageBackend {
	case "s3":
		s3Store, err := blob.NewS3Store(cfg)
		if err != nil {
			log.Error("Failed to create S3 store: %v", err)
			panic(err)
		}
		blobStore = s3Store
	default:
		localStore, err := blob.NewLocalStore(cfg.MediaDir)
		if err != nil {
			log.Error("Failed to create media directory: %v", err)
			panic(err)
		}
		blobStore = localStore
	}

	// RabbitMQ is optional too; activity events are best-effort.
	var queueClient *queue.Client
	if cfg.RabbitMQHost != "" {
		if qc, err := queue.NewRabbitMQClient(cfg, log); err != nil {
			log.Warn("RabbitMQ unavailable, activity events disabled: %v", err)
		} else {
			queueClient = qc
		}
	}

	app.Run(cfg, log, db, blobStore, queueClient, redisClient)
}
