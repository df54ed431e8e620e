package upload

import (
	"context"
	"petfoster-upload/internal/core/domain"
)

// CheckUploadStatus returns the persisted chunk indices in ascending order.
// It is derived from storage on every call so it cannot diverge from it after a crash.
func (u *uploadService) CheckUploadStatus(ctx context.Context, uploadID domain.UploadID) ([]int, error) {
	if err := ValidateUploadID(uploadID); err != nil {
		return nil, err
	}
	return u.chunkStore.ListChunkIndices(ctx, uploadID)
}
