package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sejongtown/campus-assistant/internal/adapters/cache"
	"github.com/sejongtown/campus-assistant/internal/adapters/catalog"
	"github.com/sejongtown/campus-assistant/internal/api/handlers"
	"github.com/sejongtown/campus-assistant/internal/api/routes"
	"github.com/sejongtown/campus-assistant/internal/application/services"
	"github.com/sejongtown/campus-assistant/internal/domain/providers"
	"github.com/sejongtown/campus-assistant/internal/infrastructure/clients/campusapi"
	redisclient "github.com/sejongtown/campus-assistant/internal/infrastructure/clients/redis"
	"github.com/sejongtown/campus-assistant/internal/infrastructure/observability"
	"github.com/sejongtown/campus-assistant/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, getEnv("ENV", "development"))
	logger := observability.GetLogger()

	ctx := context.Background()

	var metrics *observability.Metrics
	if cfg.OTEL.Enabled {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize OpenTelemetry")
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("failed to shut down OpenTelemetry")
			}
		}()

		metrics, err = observability.InitMetrics()
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize metrics")
		}
	}

	// The assistant works without Redis, just without the shared event
	// list cache.
	var cacheProvider providers.CacheProvider
	redisConn, err := redisclient.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, running without event cache")
	} else {
		defer redisConn.Close()
		cacheProvider = cache.NewRedisAdapter(redisConn)
		logger.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("connected to Redis")
	}

	apiClient := campusapi.NewClient(cfg.Catalog.BaseURL, time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second)
	catalogAdapter := catalog.NewAPIAdapter(apiClient, cacheProvider)

	chatService := services.NewChatService(
		services.NewIntentClassifier(),
		services.NewDateRangeResolver(cfg.Chat.UTCOffsetHours),
		services.NewKeywordExtractor(),
		services.NewRankingService(cfg.Chat.UTCOffsetHours),
		catalogAdapter,
		catalogAdapter,
		catalogAdapter,
		services.ChatOptions{
			MaxResults:           cfg.Chat.MaxResults,
			MaxRegisteredResults: cfg.Chat.MaxRegisteredResults,
			RequireStudentID:     cfg.Chat.RequireStudentID,
		},
	)

	chatHandler := handlers.NewChatHandler(chatService)
	router := routes.SetupRouter(chatHandler, metrics)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Str("catalog", cfg.Catalog.BaseURL).Msg("starting campus assistant")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
	logger.Info().Msg("server stopped")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
