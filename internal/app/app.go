package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	snapHTTP "snapfeed/internal/controller/http"
	"snapfeed/internal/repo/persistent"
	"snapfeed/internal/usecase"
	"snapfeed/pkg/blob"
	"snapfeed/pkg/config"
	"snapfeed/pkg/logger"
	"snapfeed/pkg/middleware"
	"snapfeed/pkg/queue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "snapfeed/docs" // Swagger docs
)

const Version = "1.0.0"

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, blobStore blob.Store, queueClient *queue.Client, redisClient *redis.Client) {
	// Initialize repositories
	mediaRepo := persistent.NewMediaRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	likeRepo := persistent.NewLikeRepository(db)

	// Initialize use cases
	mediaUseCase := usecase.NewMediaUseCase(mediaRepo, blobStore, redisClient, queueClient, log)
	engagementUseCase := usecase.NewEngagementUseCase(commentRepo, likeRepo, mediaRepo, redisClient, queueClient, log)
	streamUseCase := usecase.NewStreamUseCase(blobStore)

	// Initialize HTTP handlers
	mediaHandler := snapHTTP.NewMediaHandler(mediaUseCase, engagementUseCase, log)
	commentHandler := snapHTTP.NewCommentHandler(engagementUseCase, log)
	likeHandler := snapHTTP.NewLikeHandler(engagementUseCase, log)
	streamHandler := snapHTTP.NewStreamHandler(streamUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "Range"},
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "Accept-Ranges"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Service banner
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Snapfeed media API", "version": Version})
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Raw file serving sits outside the API group so range requests skip
	// the rate limiter; video scrubbing fires bursts of them.
	r.GET("/media/:filename", streamHandler.ServeMedia)

	api := r.Group("/api")
	if redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	}

	{
		api.POST("/media", mediaHandler.UploadMedia)
		api.GET("/media", mediaHandler.ListMedia)
		api.GET("/media/:id", mediaHandler.GetMedia)
		api.DELETE("/media/:id", mediaHandler.DeleteMedia)

		api.POST("/media/:id/comments", commentHandler.CreateComment)
		api.GET("/media/:id/comments", commentHandler.ListComments)
		api.GET("/comments/:id", commentHandler.GetComment)
		api.PUT("/comments/:id", commentHandler.UpdateComment)
		api.DELETE("/comments/:id", commentHandler.DeleteComment)

		api.POST("/media/:id/like", likeHandler.LikeMedia)
		api.DELETE("/media/:id/like", likeHandler.UnlikeMedia)
		api.GET("/media/:id/likes", likeHandler.ListMediaLikes)

		api.POST("/comments/:id/like", likeHandler.LikeComment)
		api.DELETE("/comments/:id/like", likeHandler.UnlikeComment)
		api.GET("/comments/:id/likes", likeHandler.ListCommentLikes)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Snapfeed starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Snapfeed exited")
}
