// @title                       Contact API
// @version                     1.0
// @description                 Users, contact messages and admin authentication.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/portfolio/contact-api/internal/api"
	"github.com/portfolio/contact-api/internal/api/handler"
	"github.com/portfolio/contact-api/internal/api/metrics"
	"github.com/portfolio/contact-api/internal/core/ports"
	"github.com/portfolio/contact-api/internal/core/service"
	"github.com/portfolio/contact-api/internal/infrastructure/config"
	mongodb "github.com/portfolio/contact-api/internal/infrastructure/db/mongo"
	redisdb "github.com/portfolio/contact-api/internal/infrastructure/db/redis"
	"github.com/portfolio/contact-api/internal/infrastructure/queue"
	"github.com/portfolio/contact-api/internal/infrastructure/security"
	"github.com/portfolio/contact-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	opts := logger.ForEnv(cfg.Env, cfg.LogLevel)
	opts.Service = "contact-api"
	lg := logger.Init(opts)

	if err := run(ctx, cfg); err != nil {
		lg.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	lg := logger.Component("main")

	if cfg.LegacyAdminToken != "" {
		lg.Warn().Msg("ADMIN_TOKEN is set but ignored; admin routes require a token from /admin/login")
	}

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()
	lg.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	users := mongodb.NewUserRepository(db)
	messages := mongodb.NewMessageRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := messages.EnsureIndexes(ctx); err != nil {
		return err
	}

	health := map[string]handler.Pinger{"mongodb": handler.MongoPinger{DB: db}}

	var dedup ports.MessageDedup
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		lg.Warn().Err(err).Msg("redis unavailable; contact messages will not be deduplicated")
	} else {
		defer rdb.Close()
		dedup = redisdb.NewMessageDedup(rdb, cfg.MessageDedupWindow)
		health["redis"] = handler.RedisPinger{Client: rdb}
	}

	// --- Security ---
	pool := queue.NewPool(cfg.HashWorkers, logger.Component("hash-pool"))
	pool.Start(ctx)
	hasher := security.NewBcryptHasher(pool)
	tokens := security.NewJWTService(cfg.JWTSecret)

	// --- Services ---
	recorder := metrics.Recorder{}
	userService := service.NewUserService(users, hasher, logger.Component("users")).WithMetrics(recorder)
	messageService := service.NewMessageService(messages, dedup, logger.Component("messages")).WithMetrics(recorder)
	authService := service.NewAuthService(users, hasher, tokens, logger.Component("auth")).WithMetrics(recorder)

	if cfg.Admin.Enabled() {
		if err := authService.BootstrapAdmin(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			return err
		}
	}

	e := api.NewRouter(api.Services{
		Users:    userService,
		Messages: messageService,
		Auth:     authService,
		Tokens:   tokens,
	}, api.Options{
		Log:        logger.Component("http"),
		Production: cfg.IsProduction(),
		Health:     health,
	})

	errCh := make(chan error, 1)
	go func() {
		lg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	lg.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}
