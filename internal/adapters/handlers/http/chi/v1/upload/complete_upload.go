package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"petfoster-upload/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

type V1CompleteUploadRequest struct {
	TotalChunks    int    `json:"total_chunks"`
	FileName       string `json:"filename"`
	ContentType    string `json:"content_type"`
	SizeBytes      int64  `json:"size_bytes"`
	ChecksumSha256 string `json:"checksum_sha256"`
}

type V1CompleteUploadResponse struct {
	Path           string `json:"path"`
	SizeBytes      int64  `json:"size_bytes"`
	ChecksumSha256 string `json:"checksum_sha256"`
}

type V1IncompleteUploadResponse struct {
	Error        string `json:"error"`
	Missing      []int  `json:"missing"`
	MissingCount int    `json:"missing_count"`
}

func (h *HandlerV1) CompleteUploadV1(w http.ResponseWriter, r *http.Request) {
	uploadID := chi.URLParam(r, "uploadID")

	var req V1CompleteUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding complete upload request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.TotalChunks <= 0 || req.FileName == "" || req.ContentType == "" {
		http.Error(w, "missing param", http.StatusBadRequest)
		return
	}

	result, err := h.uploadService.MergeChunks(r.Context(), domain.MergeRequest{
		UploadID:         domain.UploadID(uploadID),
		TotalChunks:      req.TotalChunks,
		OriginalFileName: req.FileName,
		ContentType:      req.ContentType,
		ExpectedSize:     req.SizeBytes,
		ExpectedSHA256:   req.ChecksumSha256,
	})

	var incomplete *domain.IncompleteUploadError
	switch {
	case errors.As(err, &incomplete):
		h.writeJSON(w, http.StatusConflict, V1IncompleteUploadResponse{
			Error:        domain.ErrIncompleteUpload.Error(),
			Missing:      incomplete.Missing,
			MissingCount: incomplete.Total(),
		})
		return
	case errors.Is(err, domain.ErrIncompleteUpload):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrSizeMismatch), errors.Is(err, domain.ErrChecksumMismatch):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case errors.Is(err, domain.ErrStorage):
		h.logger.Error("error merging chunks", "error", err)
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.Error("error completing upload", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	case result == nil:
		h.logger.Error("merge result is nil", "upload_id", uploadID)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		h.writeJSON(w, http.StatusCreated, V1CompleteUploadResponse{
			Path:           result.Path,
			SizeBytes:      result.SizeBytes,
			ChecksumSha256: result.ChecksumSHA256,
		})
	}
}
