// README: Entry point; loads config, wires the extractor, places client and HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"scout/internal/ai"
	"scout/internal/config"
	httptransport "scout/internal/http"
	"scout/internal/http/handlers"
	"scout/internal/http/middleware"
	"scout/internal/infra"
	"scout/internal/maps"
	"scout/internal/modules/chat"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var extractor ai.PreferenceExtractor
	if cfg.AIConfigured() {
		ext, cleanup, err := newExtractor(ctx, cfg, logger)
		if err != nil {
			logger.Fatal("extractor init", zap.Error(err))
		}
		if cleanup != nil {
			defer cleanup()
		}
		extractor = ext
	} else {
		logger.Warn("AI provider API key is not set, chat is disabled")
	}

	var searcher chat.RestaurantSearcher
	if cfg.PlacesConfigured() {
		placesSvc, err := maps.NewPlacesService(cfg.Places.APIKey)
		if err != nil {
			logger.Fatal("places init", zap.Error(err))
		}
		searcher = placesSvc
	} else {
		logger.Warn("GOOGLE_MAPS_API_KEY is not set, restaurant search is disabled")
	}

	chatSvc := chat.NewService(extractor, searcher, logger)
	chatHandler := handlers.NewChatHandler(chatSvc, cfg.AIConfigured(), cfg.PlacesConfigured())

	var limiter gin.HandlerFunc
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		limiter = middleware.RateLimit(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger)
	}

	router := httptransport.NewRouter(chatHandler, logger, limiter)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(lvl)
	return logCfg.Build()
}

func newExtractor(ctx context.Context, cfg config.Config, logger *zap.Logger) (ai.PreferenceExtractor, func(), error) {
	switch cfg.AI.Provider {
	case "gemini":
		ext, err := ai.NewGeminiExtractor(ctx, cfg.AI.GeminiKey, logger)
		if err != nil {
			return nil, nil, err
		}
		return ext, func() { ext.Close() }, nil
	default:
		ext, err := ai.NewOpenAIExtractor(cfg.AI.OpenAIKey, logger)
		if err != nil {
			return nil, nil, err
		}
		return ext, nil, nil
	}
}
