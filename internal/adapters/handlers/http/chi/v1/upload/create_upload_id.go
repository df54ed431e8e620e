package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"petfoster-upload/internal/core/domain"
)

// V1CreateUploadIDRequest declares the file about to be uploaded
type V1CreateUploadIDRequest struct {
	FileName    string `json:"filename"`
	SizeBytes   int64  `json:"size_bytes"`
	ContentType string `json:"content_type"`
}

// V1CreateUploadIDResponse carries the generated upload identifier
type V1CreateUploadIDResponse struct {
	UploadID string `json:"upload_id"`
}

func (h *HandlerV1) CreateUploadIDV1(w http.ResponseWriter, r *http.Request) {

	var req V1CreateUploadIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding upload id request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.FileName == "" || req.ContentType == "" || req.SizeBytes <= 0 {
		http.Error(w, "missing param", http.StatusBadRequest)
		return
	}

	uploadID, err := h.uploadService.NewUploadID(req.FileName, req.SizeBytes, req.ContentType)
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error creating upload id", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		h.writeJSON(w, http.StatusCreated, V1CreateUploadIDResponse{UploadID: uploadID.String()})
	}
}
