package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"petfoster-upload/internal/core/domain"

	"github.com/docker/go-units"
)

// UploadChunk validates a chunk and stores it. Repeating an index overwrites the previous payload.
func (u *uploadService) UploadChunk(ctx context.Context, chunk domain.ChunkUpload) (*domain.ChunkRecord, error) {
	if err := u.validateChunk(chunk); err != nil {
		return nil, err
	}

	data := io.Reader(chunk.Data)
	if u.uploadCfg.MaxChunkBytes > 0 {
		data = &maxSizeReader{r: chunk.Data, remaining: u.uploadCfg.MaxChunkBytes}
	}

	size, err := u.chunkStore.SaveChunk(ctx, chunk.UploadID, chunk.Index, data)
	if err != nil {
		if errors.Is(err, domain.ErrChunkTooLarge) {
			return nil, fmt.Errorf("%w: limit is %s", domain.ErrChunkTooLarge, units.BytesSize(float64(u.uploadCfg.MaxChunkBytes)))
		}
		u.logger.Error("failed to store chunk",
			"upload_id", chunk.UploadID,
			"chunk_index", chunk.Index,
			"error", err)
		return nil, err
	}

	u.logger.Debug("chunk stored",
		"upload_id", chunk.UploadID,
		"chunk_index", chunk.Index,
		"total_chunks", chunk.TotalChunks,
		"size", units.HumanSize(float64(size)))

	return &domain.ChunkRecord{
		UploadID: chunk.UploadID,
		Index:    chunk.Index,
		Size:     size,
	}, nil
}

// maxSizeReader fails with ErrChunkTooLarge once more than remaining bytes are read
type maxSizeReader struct {
	r         io.Reader
	remaining int64
}

func (m *maxSizeReader) Read(p []byte) (int, error) {
	if m.remaining < 0 {
		return 0, domain.ErrChunkTooLarge
	}
	if int64(len(p)) > m.remaining+1 {
		p = p[:m.remaining+1]
	}
	n, err := m.r.Read(p)
	m.remaining -= int64(n)
	if m.remaining < 0 {
		return n, domain.ErrChunkTooLarge
	}
	return n, err
}
