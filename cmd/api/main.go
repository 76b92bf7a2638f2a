package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edulab/lms-api/internal/api"
	"github.com/edulab/lms-api/internal/core/service"
	"github.com/edulab/lms-api/internal/infrastructure/config"
	memorydb "github.com/edulab/lms-api/internal/infrastructure/db/memory"
	mongodb "github.com/edulab/lms-api/internal/infrastructure/db/mongo"
	redisdb "github.com/edulab/lms-api/internal/infrastructure/db/redis"
	"github.com/edulab/lms-api/pkg/logger"
)

// @title                      LMS Demo API
// @version                    1.0
// @description                Demonstration Learning Management System backend: JWT login, user and course CRUD, filtered and paginated listings.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := api.Deps{
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	}

	// --- Storage backend ---
	var (
		mongoClient *mongo.Client
		mongoDB     *mongo.Database
	)
	switch cfg.StoreDriver {
	case "mongo":
		var err error
		mongoClient, mongoDB, err = mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		userRepo := mongodb.NewUserRepository(mongoDB)
		courseRepo := mongodb.NewCourseRepository(mongoDB)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to create user indexes")
		}
		if err := courseRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to create course indexes")
		}
		deps.UserService = service.NewUserService(userRepo, log)
		deps.CourseService = service.NewCourseService(courseRepo, log)
		deps.Mongo = mongoDB
	default:
		deps.UserService = service.NewUserService(memorydb.NewUserRepository(), log)
		deps.CourseService = service.NewCourseService(memorydb.NewCourseRepository(), log)
	}

	deps.AuthService = service.NewAuthService(service.DemoCredentials(), cfg.JWTSecret, cfg.TokenTTL, log)

	// --- Optional Redis (login rate limiting) ---
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		var err error
		redisClient, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, login rate limiting disabled")
		} else {
			deps.LoginLimiter = redisdb.NewLoginLimiter(redisClient, cfg.LoginRateLimit, cfg.LoginRateWindow)
			deps.Redis = redisClient
		}
	}

	// Demo fixtures make listings browsable right away. Skipped for the
	// mongo backend, where data survives restarts.
	if cfg.StoreDriver != "mongo" {
		seedDemoData(ctx, deps, log)
	}

	e := api.NewRouter(deps)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Str("store", cfg.StoreDriver).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if mongoClient != nil {
		_ = mongoClient.Disconnect(shutdownCtx)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	os.Exit(0)
}
