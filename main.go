package main

import (
	"aimodel-generator-backend/config"
	"aimodel-generator-backend/internal/api"
	"aimodel-generator-backend/internal/scheduler"
	"aimodel-generator-backend/internal/services"
	"aimodel-generator-backend/pkg/logger"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// @title aimodel-generator-backend API
// @version 1.0
// @description Fabricates demo AI model cards and simulates their training.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	manager := services.NewSessionManager(services.SessionOptions{
		Scheduler: scheduler.NewReal(),
		Generator: services.NewSeededGenerator(cfg.GeneratorSeed),
		Logger:    logger.Log,
		Share: services.ShareConfig{
			BaseURL:        cfg.ShareBaseURL,
			QRCodeEndpoint: cfg.QRCodeEndpoint,
			QRCodeSize:     cfg.QRCodeSize,
		},
		GenerationDelay: cfg.GenerationDelay,
		TickInterval:    cfg.TrainingTickInterval,
		CompletionDelay: cfg.TrainingCompletionDelay,
	}, cfg.SessionIdleTimeout)
	go manager.Start(cfg.SessionSweepInterval)
	defer manager.Stop()

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: api.NewRouter(cfg, manager),
	}

	go func() {
		logger.Log.Info("Server listening", zap.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("failed to run server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Log.Info("Server stopped")
}
