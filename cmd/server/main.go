package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/dhananjayaDev/trivity/internal/cache"
	"github.com/dhananjayaDev/trivity/internal/config"
	"github.com/dhananjayaDev/trivity/internal/repository"
	"github.com/dhananjayaDev/trivity/internal/service"
	"github.com/dhananjayaDev/trivity/internal/transport/rest"
)

func main() {
	cfg := config.Load()

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	aiConfig := config.DefaultAIConfig()
	logger.Info("AI config",
		zap.String("analysis_model", aiConfig.Models.Analysis),
		zap.String("sdg_model", aiConfig.Models.SDG),
		zap.String("carbon_model", aiConfig.Models.Carbon),
		zap.Bool("enabled", aiConfig.IsEnabled()))

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("Connected to MongoDB")

	db := mongoClient.Database(cfg.DatabaseName)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal("Failed to ping Redis", zap.Error(err))
	}
	logger.Info("Connected to Redis")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	assessmentRepo := repository.NewAssessmentRepo(db)
	carbonRepo := repository.NewCarbonRepo(db)
	sdgRepo := repository.NewSDGRepo(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)

	// Initialize services
	aiSvc := service.NewAIService(aiConfig, logger)
	authSvc := service.NewAuthService(cfg.JWTSecret, sessionCache)
	userSvc := service.NewUserService(userRepo, authSvc, logger)
	sriSvc := service.NewSRIService(assessmentRepo, userRepo, aiSvc, logger)
	carbonSvc := service.NewCarbonService(carbonRepo, userRepo, aiSvc, logger)
	sdgSvc := service.NewSDGService(sdgRepo, userRepo, sriSvc, aiSvc, logger)

	// Create router with container
	container := &rest.Container{
		AuthService:   authSvc,
		UserService:   userSvc,
		SRIService:    sriSvc,
		CarbonService: carbonSvc,
		SDGService:    sdgSvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
