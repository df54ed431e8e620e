package cleanup

import (
	"context"
	"time"
)

// CleanupAbandonedUploads removes upload directories idle for longer than the abandon delay.
// A directory that fails to be removed is logged and skipped.
func (c *cleanupService) CleanupAbandonedUploads(ctx context.Context, now time.Time) (int, error) {

	uploads, err := c.chunkStore.ListUploads(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, upload := range uploads {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		idle := now.Sub(upload.LastActivity)
		if idle < c.abandonAfter {
			continue
		}

		if err := c.chunkStore.RemoveUpload(ctx, upload.UploadID); err != nil {
			c.logger.Error("failed to remove abandoned upload", "upload_id", upload.UploadID, "error", err)
			continue
		}
		c.logger.Info("abandoned upload removed", "upload_id", upload.UploadID, "idle", idle.Round(time.Second))
		removed++
	}

	c.logger.Info("cleanup abandoned uploads completed", "scanned", len(uploads), "removed", removed)
	return removed, nil
}
