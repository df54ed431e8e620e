package upload

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"petfoster-upload/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 upload routes
type HandlerV1 struct {
	uploadService port.UploadService
	logger        *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(service port.UploadService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/identifier", h.CreateUploadIDV1)
	router.Post("/{uploadID}/chunks", h.UploadChunkV1)
	router.Get("/{uploadID}/chunks", h.GetChunksV1)
	router.Post("/{uploadID}/complete", h.CompleteUploadV1)
	router.Delete("/{uploadID}", h.CleanupUploadV1)

	return router
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
