package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"petfoster-upload/internal/core/domain"
	"sort"
	"time"
)

// SaveChunk writes a chunk to a temp file next to its final name then renames it into place.
// Concurrent writers of the same index resolve to the last rename.
func (a *Adapter) SaveChunk(ctx context.Context, uploadID domain.UploadID, index int, data io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	dir := a.uploadDir(uploadID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("%w: failed to create upload directory: %w", domain.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, fmt.Sprintf(".%d.part-*", index))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create temp chunk: %w", domain.ErrStorage, err)
	}
	tmpName := tmp.Name()

	written, err := io.Copy(tmp, data)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpName, a.chunkPath(uploadID, index))
	}
	if err != nil {
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			a.logger.Warn("failed to remove temp chunk", "path", tmpName, "error", rmErr)
		}
		return 0, fmt.Errorf("%w: failed to write chunk %d: %w", domain.ErrStorage, index, err)
	}

	return written, nil
}

// ListChunkIndices lists persisted chunk indices in ascending order.
// A missing upload directory yields an empty list.
func (a *Adapter) ListChunkIndices(ctx context.Context, uploadID domain.UploadID) ([]int, error) {
	entries, err := os.ReadDir(a.uploadDir(uploadID))
	if errors.Is(err, fs.ErrNotExist) {
		return []int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list upload directory: %w", domain.ErrStorage, err)
	}

	indices := make([]int, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		index, ok := parseChunkFileName(entry.Name())
		if !ok {
			continue
		}
		indices = append(indices, index)
	}
	sort.Ints(indices)

	return indices, nil
}

// OpenChunk opens a persisted chunk for reading
func (a *Adapter) OpenChunk(ctx context.Context, uploadID domain.UploadID, index int) (io.ReadCloser, error) {
	f, err := os.Open(a.chunkPath(uploadID, index))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open chunk %d: %w", domain.ErrStorage, index, err)
	}
	return f, nil
}

// RemoveUpload deletes the upload directory and every chunk in it. Removing a missing directory succeeds.
func (a *Adapter) RemoveUpload(ctx context.Context, uploadID domain.UploadID) error {
	if err := os.RemoveAll(a.uploadDir(uploadID)); err != nil {
		return fmt.Errorf("%w: failed to remove upload directory: %w", domain.ErrStorage, err)
	}

	a.logger.Debug("upload directory removed", slog.String("upload_id", uploadID.String()))
	return nil
}

// ListUploads lists upload directories with the modification time of their newest entry
func (a *Adapter) ListUploads(ctx context.Context) ([]domain.UploadDir, error) {
	entries, err := os.ReadDir(a.tempRoot())
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.UploadDir{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list upload root: %w", domain.ErrStorage, err)
	}

	uploads := make([]domain.UploadDir, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		uploadID := domain.UploadID(entry.Name())
		lastActivity, statErr := a.lastActivity(entry)
		if statErr != nil {
			// removed concurrently
			if errors.Is(statErr, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("%w: failed to stat upload %s: %w", domain.ErrStorage, uploadID, statErr)
		}
		uploads = append(uploads, domain.UploadDir{UploadID: uploadID, LastActivity: lastActivity})
	}

	return uploads, nil
}

func (a *Adapter) lastActivity(dir fs.DirEntry) (time.Time, error) {
	info, err := dir.Info()
	if err != nil {
		return time.Time{}, err
	}
	latest := info.ModTime()

	children, err := os.ReadDir(a.uploadDir(domain.UploadID(dir.Name())))
	if err != nil {
		return time.Time{}, err
	}
	for _, child := range children {
		childInfo, err := child.Info()
		if err != nil {
			continue
		}
		if childInfo.ModTime().After(latest) {
			latest = childInfo.ModTime()
		}
	}
	return latest, nil
}
