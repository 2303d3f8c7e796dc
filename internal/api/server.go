package api

import (
	"context"
	"fmt"

	_ "werkbon/docs"
	"werkbon/internal/app/config"
	"werkbon/internal/app/dsn"
	"werkbon/internal/app/handler"
	"werkbon/internal/app/middleware"
	"werkbon/internal/app/planning"
	"werkbon/internal/app/redis"
	"werkbon/internal/app/repository"
	"werkbon/internal/app/storage"
	"werkbon/internal/app/workorder"
	"werkbon/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StartServer wires the stores and serves the API until the process is stopped.
func StartServer(ctx context.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		return fmt.Errorf("database is not configured, check DB_HOST")
	}
	repo, err := repository.New(dsnStr)
	if err != nil {
		return fmt.Errorf("failed to init repository: %w", err)
	}
	defer repo.Close()

	redisClient, err := redis.New(ctx, cfg.Redis, cfg.Drafts)
	if err != nil {
		return fmt.Errorf("failed to init redis: %w", err)
	}
	defer redisClient.Close()

	minioClient, err := storage.NewMinIOClient(ctx, cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
	if err != nil {
		return fmt.Errorf("failed to init minio: %w", err)
	}
	logrus.WithField("bucket", cfg.Minio.Bucket).Info("photo storage ready")

	workOrders := workorder.NewService(repo, repo, minioClient, redisClient)
	planner := planning.NewAggregator(repo, cfg.Planning.Location)
	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	h := handler.NewHandler(workOrders, planner, repo, authHandler)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	app := pkg.NewApp(cfg, router, h, middleware.NewAuthMiddleware(redisClient, cfg), repo)
	return app.RunApp(ctx)
}
