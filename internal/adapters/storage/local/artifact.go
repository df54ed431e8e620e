package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"petfoster-upload/internal/core/domain"
	"petfoster-upload/internal/core/port"
	"strings"
)

type artifactFile struct {
	tmp       *os.File
	finalPath string
	closed    bool
}

// CreateArtifact opens a temp sibling of <root>/<name>. Nothing exists at the final path until Commit.
func (a *Adapter) CreateArtifact(ctx context.Context, name string) (port.ArtifactFile, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." || strings.EqualFold(name, tempDirName) {
		return nil, fmt.Errorf("%w: invalid artifact name %q", domain.ErrStorage, name)
	}

	finalPath := filepath.Join(a.root, name)
	if err := os.MkdirAll(filepath.Dir(finalPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create artifact directory: %w", domain.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(finalPath), "."+name+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create temp artifact: %w", domain.ErrStorage, err)
	}

	return &artifactFile{tmp: tmp, finalPath: finalPath}, nil
}

func (f *artifactFile) Write(p []byte) (int, error) {
	n, err := f.tmp.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: failed to write artifact: %w", domain.ErrStorage, err)
	}
	return n, nil
}

// Commit flushes the temp file and renames it onto the final path
func (f *artifactFile) Commit() (string, error) {
	if f.closed {
		return "", fmt.Errorf("%w: artifact already closed", domain.ErrStorage)
	}
	f.closed = true

	err := f.tmp.Sync()
	if closeErr := f.tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(f.tmp.Name(), f.finalPath)
	}
	if err != nil {
		_ = os.Remove(f.tmp.Name())
		return "", fmt.Errorf("%w: failed to commit artifact: %w", domain.ErrStorage, err)
	}

	return f.finalPath, nil
}

// Abort discards the temp file. Calling it after Commit is a no-op.
func (f *artifactFile) Abort() error {
	if f.closed {
		return nil
	}
	f.closed = true

	_ = f.tmp.Close()
	if err := os.Remove(f.tmp.Name()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: failed to remove temp artifact: %w", domain.ErrStorage, err)
	}
	return nil
}
