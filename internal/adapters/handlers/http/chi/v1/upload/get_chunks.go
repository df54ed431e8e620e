package upload

import (
	"errors"
	"net/http"
	"petfoster-upload/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// V1GetChunksResponse lists the chunk indices already stored
type V1GetChunksResponse struct {
	UploadID string `json:"upload_id"`
	Chunks   []int  `json:"chunks"`
}

// GetChunksV1 is the resume query: which chunks the server already holds
func (h *HandlerV1) GetChunksV1(w http.ResponseWriter, r *http.Request) {
	uploadID := chi.URLParam(r, "uploadID")

	indices, err := h.uploadService.CheckUploadStatus(r.Context(), domain.UploadID(uploadID))
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error checking upload status", "error", err)
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	default:
		if indices == nil {
			indices = []int{}
		}
		h.writeJSON(w, http.StatusOK, V1GetChunksResponse{UploadID: uploadID, Chunks: indices})
	}
}
