package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"codeberg.org/promptforge/server/internal/config"
	"codeberg.org/promptforge/server/internal/history"
	"codeberg.org/promptforge/server/internal/logger"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	server := &Server{
		config:   cfg,
		services: services,
	}

	if cfg.RedisURL != "" {
		client, err := connectRedis(cfg.RedisURL)
		if err != nil {
			return nil, err
		}

		server.redis = client
		server.history = history.NewRedisStore(client)
		logger.Info("using redis for history and rate limits")
	} else {
		server.history = history.NewMemoryStore()
		logger.Info("REDIS_URL not set, using in-memory history and rate limits")
	}

	rateLimit, err := RateLimitMiddleware(cfg, server.redis)
	if err != nil {
		server.Close()
		return nil, err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server.router = router
	RegisterRoutes(router, server, rateLimit)

	return server, nil
}

func connectRedis(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// releases external connections
func (s *Server) Close() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			logger.ErrorErr(err, "failed to close redis connection")
		}
	}
}
