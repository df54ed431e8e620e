package upload

import (
	"fmt"
	"mime"
	"petfoster-upload/internal/core/domain"
	"regexp"
	"strings"
)

var uploadIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// reservedUploadID names the chunk directory under the upload root
const reservedUploadID = "temp"

// IsValidChunkIndex reports whether index lies in 0..totalChunks-1
func IsValidChunkIndex(index, totalChunks int) bool {
	return index >= 0 && index < totalChunks
}

// IsAllowedContentType reports whether the declared type, stripped of its parameters, is in the allow-list.
// Empty or unparseable types are rejected.
func IsAllowedContentType(allowList []string, declaredType string) bool {
	mimeType := extractMimeType(declaredType)
	if mimeType == "" {
		return false
	}
	for _, allowed := range allowList {
		if strings.EqualFold(strings.TrimSpace(allowed), mimeType) {
			return true
		}
	}
	return false
}

// ValidateUploadID rejects identifiers that could escape the upload root
func ValidateUploadID(uploadID domain.UploadID) error {
	if !uploadIDPattern.MatchString(uploadID.String()) || strings.EqualFold(uploadID.String(), reservedUploadID) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidUploadID, uploadID)
	}
	return nil
}

func (u *uploadService) validateChunk(chunk domain.ChunkUpload) error {
	if err := ValidateUploadID(chunk.UploadID); err != nil {
		return err
	}
	if chunk.TotalChunks < 1 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidTotalChunks, chunk.TotalChunks)
	}
	if !IsValidChunkIndex(chunk.Index, chunk.TotalChunks) {
		return fmt.Errorf("%w: %d not in [0, %d)", domain.ErrInvalidChunkIndex, chunk.Index, chunk.TotalChunks)
	}
	if !IsAllowedContentType(u.uploadCfg.AllowedContentTypes, chunk.ContentType) {
		return fmt.Errorf("%w: %q", domain.ErrContentTypeNotAllowed, chunk.ContentType)
	}
	if chunk.Data == nil {
		return fmt.Errorf("%w: missing chunk data", domain.ErrValidation)
	}
	return nil
}

func extractMimeType(contentType string) string {
	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mimeType
}
