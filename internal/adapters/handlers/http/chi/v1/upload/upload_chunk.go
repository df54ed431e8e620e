package upload

import (
	"errors"
	"net/http"
	"petfoster-upload/internal/core/domain"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const maxFormMemory = 8 << 20

// V1UploadChunkResponse acknowledges a stored chunk
type V1UploadChunkResponse struct {
	UploadID   string `json:"upload_id"`
	ChunkIndex int    `json:"chunk_index"`
	SizeBytes  int64  `json:"size_bytes"`
}

// UploadChunkV1 accepts a multipart form with chunk_index, total_chunks, content_type and the chunk file
func (h *HandlerV1) UploadChunkV1(w http.ResponseWriter, r *http.Request) {
	uploadID := chi.URLParam(r, "uploadID")
	if uploadID == "" {
		http.Error(w, "Upload ID is required", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "chunk too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.logger.Warn("failed to remove multipart temp files", "error", err)
		}
	}()

	chunkIndex, err := strconv.Atoi(r.FormValue("chunk_index"))
	if err != nil {
		http.Error(w, "chunk_index must be an integer", http.StatusBadRequest)
		return
	}
	totalChunks, err := strconv.Atoi(r.FormValue("total_chunks"))
	if err != nil {
		http.Error(w, "total_chunks must be an integer", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("chunk")
	if err != nil {
		http.Error(w, "Could not read chunk", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := r.FormValue("content_type")
	if contentType == "" {
		contentType = header.Header.Get("Content-Type")
	}

	record, err := h.uploadService.UploadChunk(r.Context(), domain.ChunkUpload{
		UploadID:    domain.UploadID(uploadID),
		Index:       chunkIndex,
		TotalChunks: totalChunks,
		ContentType: contentType,
		Data:        file,
	})
	switch {
	case errors.Is(err, domain.ErrChunkTooLarge):
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrStorage):
		h.logger.Error("error storing chunk", "error", err)
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.Error("error uploading chunk", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		h.writeJSON(w, http.StatusCreated, V1UploadChunkResponse{
			UploadID:   record.UploadID.String(),
			ChunkIndex: record.Index,
			SizeBytes:  record.Size,
		})
	}
}
