package upload_test

import (
	http2 "net/http"
	"net/http/httptest"
	"petfoster-upload/internal/core/domain"
	"petfoster-upload/internal/core/service/upload"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCleanupUploadV1(t *testing.T) {
	// Arrange
	mockService := upload.NewMockUploadService()
	mockService.On("CleanupChunks", mock.Anything, domain.UploadID("abc")).Return()
	req := httptest.NewRequest(http2.MethodDelete, "/api/v1/upload/abc", nil)
	w := httptest.NewRecorder()

	// Act
	newRouter(mockService).ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http2.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}
