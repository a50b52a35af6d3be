package main

import (
	"alcyxob/exercise-tracker/internal/api"
	"alcyxob/exercise-tracker/internal/cache"
	"alcyxob/exercise-tracker/internal/config"
	"alcyxob/exercise-tracker/internal/events"
	"alcyxob/exercise-tracker/internal/logging"
	"alcyxob/exercise-tracker/internal/repository/mongo"
	"alcyxob/exercise-tracker/internal/service"
	"alcyxob/exercise-tracker/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// @title Exercise Tracker API
// @version 1.0
// @description API for registering users, logging exercises and querying exercise logs.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:3000
// @BasePath /api
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("could not load config: %v", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	logger.Info("Starting Exercise Tracker server...")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI, cfg.Database.Timeout)
	if err != nil {
		logger.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		logger.Info("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logger.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logger.WithField("database", cfg.Database.Name).Info("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			logger.WithError(err).Error("index creation failed")
			return
		}
		logger.Info("Index creation process completed.")
	}()

	// --- User Cache ---
	var userCache cache.UserCache
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			logger.WithError(err).Warn("redis unreachable, user lookups will go to MongoDB until it recovers")
		}
		cancel()
		userCache = cache.NewRedisUserCache(redisClient, "", cfg.Redis.TTL)
		logger.WithField("addr", cfg.Redis.Addr).Info("User cache enabled.")
	}

	// --- Event Publisher ---
	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		logger.WithField("topic", cfg.Kafka.Topic).Info("Exercise events enabled.")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.WithError(err).Error("failed to close event publisher")
		}
	}()

	// --- Repositories & Services ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)

	userService := service.NewUserService(userRepo, userCache, logger)
	exerciseService := service.NewExerciseService(userService, exerciseRepo, publisher, logger, nil)
	logService := service.NewLogService(userService, exerciseRepo, cfg.LogQuery.DefaultLimit, nil)

	services := api.Services{
		Users:     userService,
		Exercises: exerciseService,
		Logs:      logService,
	}

	// --- Log Export Storage ---
	if cfg.S3.BucketName != "" {
		initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		fileStorage, err := storage.NewS3Storage(initCtx, cfg.S3)
		cancel()
		if err != nil {
			logger.WithError(err).Fatal("failed to initialize S3 storage")
		}
		services.Exports = service.NewExportService(logService, fileStorage, cfg.S3.URLExpiry, nil)
		logger.WithField("bucket", cfg.S3.BucketName).Info("Log export enabled.")
	}

	// --- HTTP Server ---
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(logger, cfg.CORS.AllowedOrigins, services)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.WithField("address", cfg.Server.Address).Info("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("ListenAndServe failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
	}

	logger.Info("Server exiting.")
}
