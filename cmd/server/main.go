package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kiranraikar/parking-chat-backend/internal/app"
	"github.com/kiranraikar/parking-chat-backend/internal/config"
	"github.com/kiranraikar/parking-chat-backend/internal/db"
	"github.com/kiranraikar/parking-chat-backend/internal/pkg/logger"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Init(false)
		logger.L().Fatal("failed to load config", zap.Error(err))
	}

	logger.Init(cfg.IsProduction)
	defer logger.Sync()

	// Connect DB
	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		logger.L().Fatal("failed to connect to db", zap.Error(err))
	}
	defer pool.Close()

	// Assemble modules
	container, err := app.NewContainer(app.Config{
		IsProduction:  cfg.IsProduction,
		ProdOrigins:   cfg.ProdOrigins,
		DBPool:        pool,
		JWTSecret:     cfg.JWTSecret,
		JWTTTL:        cfg.JWTAccessTokenTTL,
		BcryptCost:    cfg.BcryptCost,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		OpenAIModel:   cfg.OpenAIModel,
		LLMTimeout:    cfg.LLMTimeout,
		RedisAddr:     cfg.RedisAddr,
		SessionTTL:    cfg.SessionTTL,
		UploadDir:     cfg.UploadDir,
	})
	if err != nil {
		logger.L().Fatal("failed to assemble application", zap.Error(err))
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.L().Warn("container close failed", zap.Error(err))
		}
	}()

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		logger.L().Info("server running", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	logger.L().Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Warn("server forced to shutdown", zap.Error(err))
	}

	logger.L().Info("server exited gracefully")
}
