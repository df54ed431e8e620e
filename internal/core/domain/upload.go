package domain

import (
	"io"
	"time"
)

// UploadID is an opaque filesystem-safe identifier naming one in-progress upload
type UploadID string

func (id UploadID) String() string {
	return string(id)
}

// ChunkUpload represents a single chunk sent by a client
type ChunkUpload struct {
	UploadID    UploadID
	Index       int
	TotalChunks int
	ContentType string
	Data        io.Reader
}

// ChunkRecord represents a persisted chunk
type ChunkRecord struct {
	UploadID UploadID
	Index    int
	Size     int64
}

// UploadDir represents an upload directory found in the chunk store
type UploadDir struct {
	UploadID     UploadID
	LastActivity time.Time
}

// MergeRequest represents a request to reassemble an upload
type MergeRequest struct {
	UploadID         UploadID
	TotalChunks      int
	OriginalFileName string
	ContentType      string
	// ExpectedSize enables the size check when positive
	ExpectedSize int64
	// ExpectedSHA256 enables the checksum check when not empty (hex encoded)
	ExpectedSHA256 string
}

// MergeResult represents a reassembled artifact
type MergeResult struct {
	UploadID       UploadID
	Path           string
	SizeBytes      int64
	ChecksumSHA256 string
}
