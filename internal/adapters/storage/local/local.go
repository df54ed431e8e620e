package local

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"petfoster-upload/internal/core/domain"
	"strconv"
)

const (
	tempDirName = "temp"
	chunkSuffix = ".part"
)

// Adapter stores chunks and merged artifacts under a root directory:
//
//	<root>/temp/<uploadID>/<index>.part
//	<root>/<artifact name>
type Adapter struct {
	root   string
	logger *slog.Logger
}

// NewAdapter returns Adapter, creating the root and its temp directory if needed
func NewAdapter(root string, logger *slog.Logger) (*Adapter, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload root: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(abs, tempDirName), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload root: %w", err)
	}
	return &Adapter{root: abs, logger: logger}, nil
}

// Root returns the absolute upload root
func (a *Adapter) Root() string {
	return a.root
}

func (a *Adapter) tempRoot() string {
	return filepath.Join(a.root, tempDirName)
}

func (a *Adapter) uploadDir(uploadID domain.UploadID) string {
	return filepath.Join(a.tempRoot(), uploadID.String())
}

func (a *Adapter) chunkPath(uploadID domain.UploadID, index int) string {
	return filepath.Join(a.uploadDir(uploadID), chunkFileName(index))
}

func chunkFileName(index int) string {
	return strconv.Itoa(index) + chunkSuffix
}

// parseChunkFileName returns the index of a file named <index>.part.
// Leading zeros, signs and anything else are rejected.
func parseChunkFileName(name string) (int, bool) {
	if len(name) <= len(chunkSuffix) || name[len(name)-len(chunkSuffix):] != chunkSuffix {
		return 0, false
	}
	base := name[:len(name)-len(chunkSuffix)]
	index, err := strconv.Atoi(base)
	if err != nil || index < 0 || strconv.Itoa(index) != base {
		return 0, false
	}
	return index, true
}
