package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"homecalc/config"
	httpLayer "homecalc/http"
	"homecalc/logger"
	"homecalc/metrics"
	"homecalc/repository"
	"homecalc/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New(logger.Config{Level: "info"})
		boot.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	cache, closeCache := newCache(cfg, log)
	defer closeCache()

	history, closeHistory, err := newHistory(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open history store")
	}
	defer closeHistory()

	m := metrics.New()
	calcService := service.NewCalculatorService(history, cache, m, log).
		WithHistoryLimit(cfg.HistoryLimit)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	server := httpLayer.New(httpLayer.Config{
		Addr:           cfg.Addr(),
		SiteName:       cfg.SiteName,
		AllowedOrigins: cfg.AllowedOrigins,
		Log:            log,
		Service:        calcService,
		Metrics:        m,
		Limiter:        rateLimiter,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("Error starting server")
		return
	case <-quit:
		log.Info().Msg("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server exited")
}

// newCache uses Redis when configured and reachable, otherwise an in-process cache.
func newCache(cfg *config.Config, log zerolog.Logger) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		return newMemoryCache(cfg)
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL, log)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unavailable, using in-memory cache")
		_ = redisCache.Close()
		return newMemoryCache(cfg)
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis cache")
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing Redis client")
		}
	}
}

func newMemoryCache(cfg *config.Config) (repository.CacheRepository, func()) {
	cache := repository.NewMemoryCache(cfg.CacheTTL, cfg.CacheMaxEntries)
	return cache, cache.Stop
}

func newHistory(cfg *config.Config, log zerolog.Logger) (repository.HistoryRepository, func(), error) {
	if cfg.HistoryDBPath == "" {
		return repository.NewHistoryRepositoryMemory(cfg.HistoryCapacity), func() {}, nil
	}

	store, err := repository.NewHistoryRepositorySQLite(cfg.HistoryDBPath, log)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("path", cfg.HistoryDBPath).Msg("Using SQLite history")
	return store, func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing history store")
		}
	}, nil
}
