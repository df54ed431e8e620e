package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrValidation is the parent of every error thrown before a chunk reaches storage
var ErrValidation = errors.New("validation failed")

// ErrInvalidChunkIndex is an error thrown when chunk index is outside 0..totalChunks-1
var ErrInvalidChunkIndex = fmt.Errorf("%w: invalid chunk index", ErrValidation)

// ErrInvalidTotalChunks is an error thrown when total chunks is not positive
var ErrInvalidTotalChunks = fmt.Errorf("%w: invalid total chunks", ErrValidation)

// ErrContentTypeNotAllowed is an error thrown when declared content type is not in the allow-list
var ErrContentTypeNotAllowed = fmt.Errorf("%w: content type not allowed", ErrValidation)

// ErrInvalidUploadID is an error thrown when upload identifier is not filesystem-safe
var ErrInvalidUploadID = fmt.Errorf("%w: invalid upload id", ErrValidation)

// ErrChunkTooLarge is an error thrown when a chunk exceeds the configured max size
var ErrChunkTooLarge = fmt.Errorf("%w: chunk too large", ErrValidation)

// ErrStorage is an error thrown when the underlying storage fails
var ErrStorage = errors.New("storage error")

// ErrIncompleteUpload is an error thrown when merge is attempted before every chunk is present
var ErrIncompleteUpload = errors.New("incomplete upload")

// ErrSizeMismatch is an error thrown when merged size differs from the declared size
var ErrSizeMismatch = errors.New("size mismatch")

// ErrChecksumMismatch is an error thrown when merged checksum differs from the declared checksum
var ErrChecksumMismatch = errors.New("mismatched checksum")

// MaxReportedMissing caps the indices listed in an IncompleteUploadError
const MaxReportedMissing = 1000

// IncompleteUploadError lists the first missing chunk indices of a merge and how many are missing in total
type IncompleteUploadError struct {
	UploadID     UploadID
	Missing      []int
	MissingCount int
}

// Total returns the number of missing chunks, listed or not
func (e *IncompleteUploadError) Total() int {
	if e.MissingCount < len(e.Missing) {
		return len(e.Missing)
	}
	return e.MissingCount
}

func (e *IncompleteUploadError) Error() string {
	missing := make([]string, 0, len(e.Missing))
	for _, index := range e.Missing {
		missing = append(missing, strconv.Itoa(index))
	}
	listed := strings.Join(missing, ",")
	if total := e.Total(); total > len(e.Missing) {
		listed += fmt.Sprintf(",... %d more", total-len(e.Missing))
	}
	return fmt.Sprintf("%s: upload %s is missing %d chunks [%s]", ErrIncompleteUpload, e.UploadID, e.Total(), listed)
}

func (e *IncompleteUploadError) Unwrap() error {
	return ErrIncompleteUpload
}
