package port

import (
	"context"
	"time"
)

// CleanupService is service that reclaims abandoned upload directories
type CleanupService interface {
	CleanupAbandonedUploads(ctx context.Context, now time.Time) (int, error)
}
