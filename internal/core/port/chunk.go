package port

import (
	"context"
	"io"
	"petfoster-upload/internal/core/domain"
)

// ChunkStore is an interface to define chunk storage interactions
type ChunkStore interface {
	SaveChunk(ctx context.Context, uploadID domain.UploadID, index int, data io.Reader) (int64, error)
	ListChunkIndices(ctx context.Context, uploadID domain.UploadID) ([]int, error)
	OpenChunk(ctx context.Context, uploadID domain.UploadID, index int) (io.ReadCloser, error)
	RemoveUpload(ctx context.Context, uploadID domain.UploadID) error
	ListUploads(ctx context.Context) ([]domain.UploadDir, error)
}

// ArtifactFile is a pending artifact, invisible at its final path until committed
type ArtifactFile interface {
	io.Writer
	Commit() (string, error)
	Abort() error
}

// ArtifactStore is an interface to define final artifact storage
type ArtifactStore interface {
	CreateArtifact(ctx context.Context, name string) (ArtifactFile, error)
}

// ArtifactArchiver copies a committed artifact to a secondary storage and returns its object key
type ArtifactArchiver interface {
	Archive(ctx context.Context, localPath string, name string, contentType string) (string, error)
}
