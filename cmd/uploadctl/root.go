package main

import (
	"fmt"
	"log/slog"
	"os"
	"petfoster-upload/internal/adapters/eventbroker/nats"
	"petfoster-upload/internal/adapters/storage/local"
	"petfoster-upload/internal/adapters/storage/minio"
	"petfoster-upload/internal/config"
	"petfoster-upload/internal/core/port"
	"petfoster-upload/internal/core/service/upload"

	"github.com/spf13/cobra"
)

// app holds what every subcommand needs once configuration is loaded
type app struct {
	cfg           *config.Config
	logger        *slog.Logger
	chunkStore    port.ChunkStore
	uploadService port.UploadService
	closers       []func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var root string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "uploadctl",
		Short: "Inspect and maintain chunked uploads on disk",
		Long: "uploadctl works directly on the upload root used by the API server.\n" +
			"It can report stored chunks, force a merge, drop an upload and sweep abandoned ones.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, root, verbose)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&root, "root", "", "upload root (overrides UPLOAD_ROOT)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newMergeCmd(a))
	rootCmd.AddCommand(newCleanupCmd(a))
	rootCmd.AddCommand(newSweepCmd(a))
	rootCmd.AddCommand(newNewIDCmd(a))

	return rootCmd
}

func (a *app) init(cmd *cobra.Command, root string, verbose bool) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if root != "" {
		if err := os.Setenv("UPLOAD_ROOT", root); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	localAdapter, err := local.NewAdapter(cfg.Upload.Root, a.logger)
	if err != nil {
		return err
	}
	a.chunkStore = localAdapter

	var archiver port.ArtifactArchiver
	if cfg.Minio.Enabled {
		minioAdapter, err := minio.NewAdapter(cmd.Context(), cfg.Minio, a.logger)
		if err != nil {
			return fmt.Errorf("failed to init minio: %w", err)
		}
		archiver = minioAdapter
	}

	var publisher port.EventPublisher
	if cfg.NATS.Enabled {
		natsPublisher, err := nats.NewNATSPublisher(cmd.Context(), cfg.NATS, a.logger)
		if err != nil {
			return fmt.Errorf("failed to create NATS publisher: %w", err)
		}
		a.closers = append(a.closers, natsPublisher.Close)
		publisher = natsPublisher
	}

	a.uploadService = upload.NewUploadService(localAdapter, localAdapter, archiver, publisher, cfg.Upload, a.logger)
	return nil
}

func (a *app) close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
