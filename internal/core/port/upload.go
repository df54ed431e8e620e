package port

import (
	"context"
	"petfoster-upload/internal/core/domain"
)

// UploadService is an interface to define the chunked upload engine
type UploadService interface {
	NewUploadID(fileName string, sizeBytes int64, contentType string) (domain.UploadID, error)
	UploadChunk(ctx context.Context, chunk domain.ChunkUpload) (*domain.ChunkRecord, error)
	CheckUploadStatus(ctx context.Context, uploadID domain.UploadID) ([]int, error)
	MergeChunks(ctx context.Context, req domain.MergeRequest) (*domain.MergeResult, error)
	CleanupChunks(ctx context.Context, uploadID domain.UploadID)
}
