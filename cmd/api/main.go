package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"petfoster-upload/internal/adapters/eventbroker/nats"
	"petfoster-upload/internal/adapters/handlers/http/chi"
	upload2 "petfoster-upload/internal/adapters/handlers/http/chi/v1/upload"
	"petfoster-upload/internal/adapters/storage/local"
	"petfoster-upload/internal/adapters/storage/minio"
	"petfoster-upload/internal/config"
	"petfoster-upload/internal/core/port"
	"petfoster-upload/internal/core/service/cleanup"
	"petfoster-upload/internal/core/service/upload"
	"sync"
	"syscall"
	"time"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	//storage
	localAdapter, err := local.NewAdapter(cfg.Upload.Root, logger)
	if err != nil {
		logger.Error("failed to init local storage", "error", err)
		os.Exit(1)
	}
	logger.Info("local storage ready", "root", localAdapter.Root())

	var archiver port.ArtifactArchiver
	if cfg.Minio.Enabled {
		minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
		if err != nil {
			logger.Error("failed to init minio", "error", err)
			os.Exit(1)
		}
		archiver = minioAdapter
		logger.Info("minio archiving enabled", "bucket", cfg.Minio.BucketName)
	}

	//events
	var publisher port.EventPublisher
	if cfg.NATS.Enabled {
		natsPublisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
		if err != nil {
			logger.Error("failed to create NATS publisher", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := natsPublisher.Close(); err != nil {
				logger.Error("failed to close NATS publisher", "error", err)
			}
		}()
		publisher = natsPublisher
		logger.Info("NATS publisher initialized", "subject", cfg.NATS.Subject)
	}

	uploadService := upload.NewUploadService(localAdapter, localAdapter, archiver, publisher, cfg.Upload, logger)
	cleanupService := cleanup.NewCleanupService(localAdapter, cfg.Upload.AbandonAfter, logger)

	//http
	uploadHandler := upload2.NewUploadHandlerV1(uploadService, logger)

	router := chi.NewRouter(logger, uploadHandler, cfg.Env.Env, cfg.Upload.MaxChunkBytes)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init cleanup task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initCleanupTask(ctx, cleanupService, cfg.Upload.SweepEvery, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initCleanupTask(ctx context.Context, service port.CleanupService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("cleanup task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			logger.Info("cleanup task starting")
			removed, err := service.CleanupAbandonedUploads(ctx, time.Now())
			if err != nil {
				logger.Error("failed to cleanup abandoned uploads", "error", err)
			} else {
				logger.Info("cleanup task completed", "removed", removed)
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}

}
