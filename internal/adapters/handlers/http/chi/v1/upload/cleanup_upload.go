package upload

import (
	"net/http"
	"petfoster-upload/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// CleanupUploadV1 abandons or finalizes an upload by deleting its chunks. Always 204.
func (h *HandlerV1) CleanupUploadV1(w http.ResponseWriter, r *http.Request) {
	uploadID := chi.URLParam(r, "uploadID")
	h.uploadService.CleanupChunks(r.Context(), domain.UploadID(uploadID))
	w.WriteHeader(http.StatusNoContent)
}
