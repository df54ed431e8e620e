package upload

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"petfoster-upload/internal/core/domain"
	"strings"
	"time"

	"github.com/docker/go-units"
)

// MergeChunks concatenates chunks 0..TotalChunks-1 into the final artifact.
// Nothing is written when a chunk is missing, and a failed merge leaves no artifact behind.
// Chunks are kept so a failed merge can be retried; cleanup is a separate call.
func (u *uploadService) MergeChunks(ctx context.Context, req domain.MergeRequest) (*domain.MergeResult, error) {
	if err := ValidateUploadID(req.UploadID); err != nil {
		return nil, err
	}
	if req.TotalChunks < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidTotalChunks, req.TotalChunks)
	}
	if !IsAllowedContentType(u.uploadCfg.AllowedContentTypes, req.ContentType) {
		return nil, fmt.Errorf("%w: %q", domain.ErrContentTypeNotAllowed, req.ContentType)
	}

	indices, err := u.chunkStore.ListChunkIndices(ctx, req.UploadID)
	if err != nil {
		return nil, err
	}
	if missing, count := missingIndices(indices, req.TotalChunks, domain.MaxReportedMissing); count > 0 {
		return nil, &domain.IncompleteUploadError{UploadID: req.UploadID, Missing: missing, MissingCount: count}
	}

	name := ArtifactName(req.UploadID, req.OriginalFileName, req.ContentType)
	artifact, err := u.artifactStore.CreateArtifact(ctx, name)
	if err != nil {
		return nil, err
	}

	size, checksum, err := u.copyChunks(ctx, req.UploadID, req.TotalChunks, artifact)
	if err == nil {
		err = verifyArtifact(req, size, checksum)
	}
	if err != nil {
		if abortErr := artifact.Abort(); abortErr != nil {
			u.logger.Error("failed to abort artifact", "upload_id", req.UploadID, "error", abortErr)
		}
		return nil, err
	}

	path, err := artifact.Commit()
	if err != nil {
		return nil, err
	}

	result := &domain.MergeResult{
		UploadID:       req.UploadID,
		Path:           path,
		SizeBytes:      size,
		ChecksumSHA256: hex.EncodeToString(checksum),
	}
	u.logger.Info("upload merged",
		"upload_id", req.UploadID,
		"path", path,
		"chunks", req.TotalChunks,
		"size", units.HumanSize(float64(size)))

	u.afterMerge(ctx, req, name, result)

	return result, nil
}

func (u *uploadService) copyChunks(ctx context.Context, uploadID domain.UploadID, totalChunks int, dst io.Writer) (int64, []byte, error) {
	hasher := sha256.New()
	w := io.MultiWriter(dst, hasher)
	buf := make([]byte, u.uploadCfg.MergeBufferBytes)

	var total int64
	for index := 0; index < totalChunks; index++ {
		if err := ctx.Err(); err != nil {
			return 0, nil, err
		}
		n, err := u.copyChunk(ctx, uploadID, index, w, buf)
		if err != nil {
			return 0, nil, err
		}
		total += n
	}

	return total, hasher.Sum(nil), nil
}

func (u *uploadService) copyChunk(ctx context.Context, uploadID domain.UploadID, index int, w io.Writer, buf []byte) (int64, error) {
	rc, err := u.chunkStore.OpenChunk(ctx, uploadID, index)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	// hide WriterTo so the bounded buffer is actually used
	n, err := io.CopyBuffer(w, struct{ io.Reader }{rc}, buf)
	if err != nil {
		return n, fmt.Errorf("%w: failed to copy chunk %d: %w", domain.ErrStorage, index, err)
	}
	return n, nil
}

func verifyArtifact(req domain.MergeRequest, size int64, checksum []byte) error {
	if req.ExpectedSize > 0 && req.ExpectedSize != size {
		return fmt.Errorf("%w: expected %d bytes, merged %d", domain.ErrSizeMismatch, req.ExpectedSize, size)
	}
	if req.ExpectedSHA256 != "" && !checksumMatches(req.ExpectedSHA256, checksum) {
		return fmt.Errorf("%w: expected %s, merged %s", domain.ErrChecksumMismatch, req.ExpectedSHA256, hex.EncodeToString(checksum))
	}
	return nil
}

// checksumMatches accepts the hex form and the base64 form used by S3-style checksum headers
func checksumMatches(expected string, checksum []byte) bool {
	expected = strings.TrimSpace(expected)
	return strings.EqualFold(expected, hex.EncodeToString(checksum)) ||
		expected == base64.StdEncoding.EncodeToString(checksum)
}

// missingIndices returns up to limit indices of 0..totalChunks-1 absent from the sorted present list,
// and the number absent overall. Work is bounded by len(present) and limit, not totalChunks.
func missingIndices(present []int, totalChunks int, limit int) ([]int, int) {
	var missing []int
	inRange := 0
	next := 0
	for _, index := range present {
		if index < next {
			continue
		}
		if index >= totalChunks {
			break
		}
		for ; next < index && len(missing) < limit; next++ {
			missing = append(missing, next)
		}
		next = index + 1
		inRange++
	}
	for ; next < totalChunks && len(missing) < limit; next++ {
		missing = append(missing, next)
	}
	return missing, totalChunks - inRange
}

func (u *uploadService) afterMerge(ctx context.Context, req domain.MergeRequest, name string, result *domain.MergeResult) {
	event := domain.UploadMergedEvent{
		EventType:      domain.EventTypeUploadMerged,
		UploadID:       req.UploadID,
		FileName:       req.OriginalFileName,
		ContentType:    extractMimeType(req.ContentType),
		Path:           result.Path,
		SizeBytes:      result.SizeBytes,
		ChecksumSHA256: result.ChecksumSHA256,
		MergedAt:       time.Now().UTC(),
	}

	if u.archiver != nil {
		objectKey, err := u.archiver.Archive(ctx, result.Path, name, event.ContentType)
		if err != nil {
			u.logger.Error("failed to archive artifact", "upload_id", req.UploadID, "error", err)
		} else {
			event.ObjectKey = objectKey
		}
	}

	if u.publisher != nil {
		if err := u.publisher.PublishUploadMerged(ctx, event); err != nil {
			u.logger.Error("failed to publish merge event", "upload_id", req.UploadID, "error", err)
		}
	}
}
