package storage

import (
	"context"
	"io"
	"petfoster-upload/internal/core/domain"
	"petfoster-upload/internal/core/port"

	"github.com/stretchr/testify/mock"
)

type MockChunkStore struct {
	mock.Mock
}

func NewMockChunkStore() *MockChunkStore {
	return &MockChunkStore{}
}

func (m *MockChunkStore) SaveChunk(ctx context.Context, uploadID domain.UploadID, index int, data io.Reader) (int64, error) {
	args := m.Called(ctx, uploadID, index, data)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChunkStore) ListChunkIndices(ctx context.Context, uploadID domain.UploadID) ([]int, error) {
	args := m.Called(ctx, uploadID)
	indices, _ := args.Get(0).([]int)
	return indices, args.Error(1)
}

func (m *MockChunkStore) OpenChunk(ctx context.Context, uploadID domain.UploadID, index int) (io.ReadCloser, error) {
	args := m.Called(ctx, uploadID, index)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}

func (m *MockChunkStore) RemoveUpload(ctx context.Context, uploadID domain.UploadID) error {
	args := m.Called(ctx, uploadID)
	return args.Error(0)
}

func (m *MockChunkStore) ListUploads(ctx context.Context) ([]domain.UploadDir, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UploadDir), args.Error(1)
}

type MockArtifactStore struct {
	mock.Mock
}

func NewMockArtifactStore() *MockArtifactStore {
	return &MockArtifactStore{}
}

func (m *MockArtifactStore) CreateArtifact(ctx context.Context, name string) (port.ArtifactFile, error) {
	args := m.Called(ctx, name)
	file, _ := args.Get(0).(port.ArtifactFile)
	return file, args.Error(1)
}

// MockArtifactFile buffers written bytes and records Commit/Abort calls
type MockArtifactFile struct {
	mock.Mock
	Written []byte
}

func NewMockArtifactFile() *MockArtifactFile {
	return &MockArtifactFile{}
}

func (m *MockArtifactFile) Write(p []byte) (int, error) {
	m.Written = append(m.Written, p...)
	return len(p), nil
}

func (m *MockArtifactFile) Commit() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockArtifactFile) Abort() error {
	args := m.Called()
	return args.Error(0)
}

type MockArchiver struct {
	mock.Mock
}

func NewMockArchiver() *MockArchiver {
	return &MockArchiver{}
}

func (m *MockArchiver) Archive(ctx context.Context, localPath string, name string, contentType string) (string, error) {
	args := m.Called(ctx, localPath, name, contentType)
	return args.String(0), args.Error(1)
}
