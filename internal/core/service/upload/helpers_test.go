package upload_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"petfoster-upload/internal/adapters/storage/local"
	"petfoster-upload/internal/config"
	"petfoster-upload/internal/core/domain"
	"petfoster-upload/internal/core/port"
	"petfoster-upload/internal/core/service/upload"
	"testing"

	"github.com/stretchr/testify/require"
)

var defaultCfg = config.UploadConfig{
	AllowedContentTypes: []string{"image/png", "video/mp4", "application/pdf"},
	MaxChunkBytes:       1 << 20,
	MergeBufferBytes:    4 << 10,
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newLocalService wires the service on a real filesystem adapter rooted in a temp dir
func newLocalService(t *testing.T, cfg config.UploadConfig, archiver port.ArtifactArchiver, publisher port.EventPublisher) (port.UploadService, string) {
	t.Helper()
	root := t.TempDir()
	adapter, err := local.NewAdapter(root, discardLogger)
	require.NoError(t, err)
	return upload.NewUploadService(adapter, adapter, archiver, publisher, cfg, discardLogger), root
}

func uploadChunk(t *testing.T, service port.UploadService, id domain.UploadID, index, total int, payload []byte) {
	t.Helper()
	_, err := service.UploadChunk(context.Background(), domain.ChunkUpload{
		UploadID:    id,
		Index:       index,
		TotalChunks: total,
		ContentType: "video/mp4",
		Data:        bytes.NewReader(payload),
	})
	require.NoError(t, err)
}
