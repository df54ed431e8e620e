package upload_test

import (
	"encoding/json"
	"fmt"
	http2 "net/http"
	"net/http/httptest"
	upload2 "petfoster-upload/internal/adapters/handlers/http/chi/v1/upload"
	"petfoster-upload/internal/core/domain"
	"petfoster-upload/internal/core/service/upload"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetChunksV1(t *testing.T) {

	t.Run("success - stored indices", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("CheckUploadStatus", mock.Anything, domain.UploadID("abc")).Return([]int{0, 2}, nil)
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/upload/abc/chunks", nil)
		w := httptest.NewRecorder()

		// Act
		newRouter(mockService).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		var response upload2.V1GetChunksResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, []int{0, 2}, response.Chunks)
		mockService.AssertExpectations(t)
	})

	t.Run("success - unknown upload is an empty list", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("CheckUploadStatus", mock.Anything, domain.UploadID("fresh")).Return(nil, nil)
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/upload/fresh/chunks", nil)
		w := httptest.NewRecorder()

		// Act
		newRouter(mockService).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		assert.JSONEq(t, `{"upload_id":"fresh","chunks":[]}`, w.Body.String())
	})

	t.Run("error - invalid id", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("CheckUploadStatus", mock.Anything, domain.UploadID("a.b")).Return(nil, domain.ErrInvalidUploadID)
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/upload/a.b/chunks", nil)
		w := httptest.NewRecorder()

		// Act
		newRouter(mockService).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})

	t.Run("error - storage", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("CheckUploadStatus", mock.Anything, domain.UploadID("abc")).
			Return(nil, fmt.Errorf("%w: permission denied", domain.ErrStorage))
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/upload/abc/chunks", nil)
		w := httptest.NewRecorder()

		// Act
		newRouter(mockService).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusServiceUnavailable, w.Code)
	})
}
