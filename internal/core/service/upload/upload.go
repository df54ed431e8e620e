package upload

import (
	"log/slog"
	"petfoster-upload/internal/config"
	"petfoster-upload/internal/core/port"
)

const defaultMergeBufferBytes = 256 << 10

type uploadService struct {
	chunkStore    port.ChunkStore
	artifactStore port.ArtifactStore
	archiver      port.ArtifactArchiver
	publisher     port.EventPublisher
	uploadCfg     config.UploadConfig
	logger        *slog.Logger
}

// NewUploadService creates a new upload service.
// archiver and publisher are optional and may be nil.
func NewUploadService(
	chunkStore port.ChunkStore,
	artifactStore port.ArtifactStore,
	archiver port.ArtifactArchiver,
	publisher port.EventPublisher,
	cfg config.UploadConfig,
	logger *slog.Logger,
) port.UploadService {
	if len(cfg.AllowedContentTypes) == 0 {
		cfg.AllowedContentTypes = config.DefaultAllowedContentTypes
	}
	if cfg.MergeBufferBytes <= 0 {
		cfg.MergeBufferBytes = defaultMergeBufferBytes
	}
	return &uploadService{
		chunkStore:    chunkStore,
		artifactStore: artifactStore,
		archiver:      archiver,
		publisher:     publisher,
		uploadCfg:     cfg,
		logger:        logger,
	}
}
