package upload

import (
	"context"
	"petfoster-upload/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) NewUploadID(fileName string, sizeBytes int64, contentType string) (domain.UploadID, error) {
	args := m.Called(fileName, sizeBytes, contentType)
	return args.Get(0).(domain.UploadID), args.Error(1)
}

func (m *MockUploadService) UploadChunk(ctx context.Context, chunk domain.ChunkUpload) (*domain.ChunkRecord, error) {
	args := m.Called(ctx, chunk)
	record, _ := args.Get(0).(*domain.ChunkRecord)
	return record, args.Error(1)
}

func (m *MockUploadService) CheckUploadStatus(ctx context.Context, uploadID domain.UploadID) ([]int, error) {
	args := m.Called(ctx, uploadID)
	indices, _ := args.Get(0).([]int)
	return indices, args.Error(1)
}

func (m *MockUploadService) MergeChunks(ctx context.Context, req domain.MergeRequest) (*domain.MergeResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*domain.MergeResult)
	return result, args.Error(1)
}

func (m *MockUploadService) CleanupChunks(ctx context.Context, uploadID domain.UploadID) {
	m.Called(ctx, uploadID)
}
