package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alexgr8080/papercoverterieee/internal/config"
	"github.com/Alexgr8080/papercoverterieee/internal/converter"
	"github.com/Alexgr8080/papercoverterieee/internal/db"
	"github.com/Alexgr8080/papercoverterieee/internal/repository"
	"github.com/Alexgr8080/papercoverterieee/internal/router"
	"github.com/Alexgr8080/papercoverterieee/internal/services"
	"github.com/Alexgr8080/papercoverterieee/internal/storage"
	"github.com/Alexgr8080/papercoverterieee/internal/utils"
	"github.com/Alexgr8080/papercoverterieee/internal/workspace"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// Initialize database
	database, err := db.NewSQLiteDB(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open database", "error", err)
	}
	defer database.Close()

	// Run migrations
	if err := db.RunMigrations(cfg.DatabasePath); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// Pandoc is only required at upload time, but report its absence early.
	pandoc := converter.NewPandoc()
	if path, found := pandoc.Locate(); found {
		logger.Info("Pandoc located", "path", path)
	} else {
		logger.Warn("Pandoc not found; uploads will fail until it is installed")
	}

	// Optional archive publication to object storage
	var store storage.ArchiveStore
	if cfg.ArchivePublishingEnabled() {
		store, err = storage.NewS3Store(cfg)
		if err != nil {
			logger.Fatal("Failed to initialize archive store", "error", err)
		}
		logger.Info("Archive publishing enabled", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3BucketName)
	}

	// Initialize paper service
	jobRepo := repository.NewRepository(database)
	ws := workspace.New(cfg.UploadDir, cfg.OutputDir)
	paperService := services.NewService(jobRepo, pandoc, ws, store, logger)

	// Setup HTTP router
	handler := router.NewRouter(paperService, logger)

	// Create HTTP server. Conversions run synchronously within the
	// request, so the write timeout must cover a full pandoc run.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
