package main

import (
	"context"
	"log"
	"time"

	"curling-registry/config"
	"curling-registry/internal/domain/user"
	"curling-registry/internal/events"
	"curling-registry/internal/handler"
	"curling-registry/internal/redis"
	"curling-registry/internal/server"
	"curling-registry/internal/services"
	"curling-registry/internal/websocket"
	"curling-registry/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	l := logger.New(cfg.AppEnv)
	logger.SetGlobalLogger(l)
	defer l.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := websocket.NewHub()
	go hub.Run(ctx)

	var publisher events.Publisher = events.NewChannelPublisher(hub, events.DirectoryChannel)
	var limiter *redis.RateLimiter

	if cfg.RedisEnabled() {
		client := redis.NewClient(redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		err := redis.Ping(pingCtx, client)
		pingCancel()
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}

		publisher = events.NewChannelPublisher(redis.NewPublisher(client), events.DirectoryChannel)
		limiter = redis.NewRateLimiter(client, redis.RateLimitConfig{
			RegisterLimit:  cfg.RegisterRateLimit,
			RegisterWindow: cfg.RegisterRateWindow,
		})

		bridge := websocket.NewRedisBridge(redis.NewSubscriber(client), hub)
		go func() {
			if err := bridge.Run(ctx, []string{events.DirectoryChannelPattern}); err != nil {
				l.Errorf("Redis bridge stopped: %s", err)
			}
		}()
		l.Infof("Redis enabled at %s:%s", cfg.RedisHost, cfg.RedisPort)
	}

	directory := services.NewUserDirectory(cfg.BaseURL, user.SeedUsers())
	userService := services.NewUserService(directory, publisher, l)

	handlers := &server.Handlers{
		User:      handler.NewUserHandler(userService),
		Root:      handler.NewRootHandler(),
		WebSocket: websocket.NewHandler(hub, l),
	}
	if limiter != nil {
		handlers.RegisterLimiter = limiter
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers)

	if err := srv.Start(); err != nil {
		l.Errorf("Server exited: %s", err)
	}
}
