package upload

import (
	"fmt"
	"petfoster-upload/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

// uploadIDNamespace scopes name-based upload identifiers
var uploadIDNamespace = uuid.MustParse("6f1c3a52-9a43-4f0e-8a0c-3f7f6f0b2d11")

// GenerateUploadID derives an identifier from the file name, declared size, declared type and a timestamp.
// The result only holds [0-9a-f-] and is safe as a directory name.
func GenerateUploadID(fileName string, sizeBytes int64, contentType string, now time.Time) domain.UploadID {
	name := fmt.Sprintf("%s|%d|%s|%d", fileName, sizeBytes, contentType, now.UnixNano())
	return domain.UploadID(uuid.NewSHA1(uploadIDNamespace, []byte(name)).String())
}

// NewUploadID validates the declared file and generates its upload identifier
func (u *uploadService) NewUploadID(fileName string, sizeBytes int64, contentType string) (domain.UploadID, error) {
	if fileName == "" {
		return "", fmt.Errorf("%w: file name is required", domain.ErrValidation)
	}
	if sizeBytes <= 0 {
		return "", fmt.Errorf("%w: size must be positive", domain.ErrValidation)
	}
	if !IsAllowedContentType(u.uploadCfg.AllowedContentTypes, contentType) {
		return "", fmt.Errorf("%w: %q", domain.ErrContentTypeNotAllowed, contentType)
	}
	return GenerateUploadID(fileName, sizeBytes, contentType, time.Now()), nil
}
