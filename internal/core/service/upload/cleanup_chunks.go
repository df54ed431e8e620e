package upload

import (
	"context"
	"petfoster-upload/internal/core/domain"
)

// CleanupChunks removes the upload directory. It is best-effort: failures are logged, never returned.
func (u *uploadService) CleanupChunks(ctx context.Context, uploadID domain.UploadID) {
	if err := ValidateUploadID(uploadID); err != nil {
		u.logger.Warn("cleanup skipped", "upload_id", uploadID, "error", err)
		return
	}

	if err := u.chunkStore.RemoveUpload(ctx, uploadID); err != nil {
		u.logger.Error("failed to cleanup chunks", "upload_id", uploadID, "error", err)
		return
	}

	u.logger.Info("chunks cleaned up", "upload_id", uploadID)
}
