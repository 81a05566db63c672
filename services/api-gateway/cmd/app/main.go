package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"couplepath/internal/platform/logger"
	"couplepath/services/api-gateway/internal/client"
	"couplepath/services/api-gateway/internal/config"
	"couplepath/services/api-gateway/internal/middleware"
	handlers "couplepath/services/api-gateway/internal/transport/http"

	"github.com/redis/go-redis/v9"
)

func main() {
	// 1. Config and logger
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logg.Sync()

	if cfg.JWTSecret == "" {
		logg.Fatal("JWT_SECRET is required")
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logg.Fatal("invalid timezone", "timezone", cfg.Timezone, "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Redis for rate limiting, optional
	var rateLimiter *middleware.RateLimiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logg.Fatal("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
		}
		defer rdb.Close()
		rateLimiter = middleware.NewRateLimiter(rdb)
		logg.Info("connected to redis", "addr", cfg.RedisAddr)
	}

	// 3. gRPC client for the progress service
	progressClient, err := client.NewProgressClient(cfg.ProgressSvcUrl)
	if err != nil {
		logg.Fatal("failed to create progress client", "url", cfg.ProgressSvcUrl, "error", err)
	}
	defer progressClient.Close()

	// 4. Handlers and router
	if cfg.AllowDateOverride {
		logg.Warn("?date= overrides are enabled; do not run this in production")
	}
	handler := handlers.NewHandler(progressClient.Client, loc, cfg.AllowDateOverride, logg)
	router := handlers.NewRouter(handler, middleware.NewTokenVerifier(cfg.JWTSecret, cfg.JWTAudience), rateLimiter, cfg.AllowedOrigins)

	// 5. HTTP server
	srv := &http.Server{Addr: cfg.Port, Handler: router, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logg.Info("api gateway listening", "addr", cfg.Port, "timezone", cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("failed to run server", "error", err)
		}
	}()

	<-ctx.Done()
	logg.Info("shutting down api gateway")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("graceful shutdown failed", "error", err)
	}
}
