// Movie Rental API
//
// @title           Movie Rental API
// @version         1.0
// @description     Movie rental and purchase service with role-gated catalog management.
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moviehub/rental-system/internal/api"
	"github.com/moviehub/rental-system/internal/core/ports"
	"github.com/moviehub/rental-system/internal/core/service"
	"github.com/moviehub/rental-system/internal/infrastructure/config"
	"github.com/moviehub/rental-system/internal/infrastructure/db/memory"
	mongodb "github.com/moviehub/rental-system/internal/infrastructure/db/mongo"
	redisdb "github.com/moviehub/rental-system/internal/infrastructure/db/redis"
	"github.com/moviehub/rental-system/internal/pkg/password"
	"github.com/moviehub/rental-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := api.Deps{
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	}

	var (
		users  ports.UserRepository
		movies ports.MovieRepository
	)

	switch cfg.Store {
	case "memory":
		log.Warn().Msg("using in-memory store; data is lost on restart")
		users = memory.NewUserRepository()
		movies = memory.NewMovieRepository()
	default:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect failed")
			}
		}()

		users = mongodb.NewUserRepository(db)
		movies = mongodb.NewMovieRepository(db)
		deps.Mongo = db
	}

	var sessions ports.SessionStore
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		// Sessions are advisory; the service runs without them.
		log.Warn().Err(err).Msg("redis unavailable, session tracking disabled")
	} else {
		defer func() { _ = rdb.Close() }()
		sessions = redisdb.NewSessionStore(rdb)
		deps.Redis = rdb
	}

	hasher := password.NewBcryptHasher(0)
	deps.AuthService = service.NewAuthService(users, hasher, sessions, cfg.JWTSecret, cfg.TokenTTL, log)
	deps.RentalService = service.NewRentalService(movies, users, log)

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("starting movie rental api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped with error")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("movie rental api stopped gracefully")
}
