package cleanup

import (
	"log/slog"
	"petfoster-upload/internal/core/port"
	"time"
)

type cleanupService struct {
	chunkStore   port.ChunkStore
	abandonAfter time.Duration
	logger       *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(chunkStore port.ChunkStore, abandonAfter time.Duration, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		chunkStore:   chunkStore,
		abandonAfter: abandonAfter,
		logger:       logger,
	}
}
