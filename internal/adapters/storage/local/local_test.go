package local_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"petfoster-upload/internal/adapters/storage/local"
	"petfoster-upload/internal/core/domain"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(t *testing.T) (*local.Adapter, string) {
	t.Helper()
	root := t.TempDir()
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	adapter, err := local.NewAdapter(root, discardLogger)
	require.NoError(t, err)
	return adapter, root
}

func readChunk(t *testing.T, adapter *local.Adapter, id domain.UploadID, index int) []byte {
	t.Helper()
	rc, err := adapter.OpenChunk(context.Background(), id, index)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return data
}

func TestAdapter_SaveChunk(t *testing.T) {
	ctx := context.Background()
	id := domain.UploadID("upload-1")

	t.Run("success - writes chunk file under temp dir", func(t *testing.T) {
		// Arrange
		adapter, root := newAdapter(t)

		// Act
		n, err := adapter.SaveChunk(ctx, id, 0, strings.NewReader("hello"))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(5), n)
		data, err := os.ReadFile(filepath.Join(root, "temp", "upload-1", "0.part"))
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("success - same index twice keeps last payload", func(t *testing.T) {
		// Arrange
		adapter, root := newAdapter(t)

		// Act
		_, err := adapter.SaveChunk(ctx, id, 3, strings.NewReader("first payload"))
		require.NoError(t, err)
		_, err = adapter.SaveChunk(ctx, id, 3, strings.NewReader("second"))
		require.NoError(t, err)

		// Assert
		assert.Equal(t, []byte("second"), readChunk(t, adapter, id, 3))
		entries, err := os.ReadDir(filepath.Join(root, "temp", "upload-1"))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "3.part", entries[0].Name())
	})

	t.Run("error - reader failure leaves no chunk and no temp file", func(t *testing.T) {
		// Arrange
		adapter, root := newAdapter(t)
		broken := io.MultiReader(strings.NewReader("partial"), &failingReader{})

		// Act
		_, err := adapter.SaveChunk(ctx, id, 1, broken)

		// Assert
		assert.ErrorIs(t, err, domain.ErrStorage)
		assert.ErrorIs(t, err, errBoom)
		entries, readErr := os.ReadDir(filepath.Join(root, "temp", "upload-1"))
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})

	t.Run("error - cancelled context", func(t *testing.T) {
		// Arrange
		adapter, _ := newAdapter(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		// Act
		_, err := adapter.SaveChunk(cancelled, id, 0, strings.NewReader("x"))

		// Assert
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAdapter_SaveChunk_ConcurrentSameIndex(t *testing.T) {
	// Arrange
	adapter, _ := newAdapter(t)
	ctx := context.Background()
	id := domain.UploadID("race")
	payloads := [][]byte{
		bytes.Repeat([]byte("a"), 64*1024),
		bytes.Repeat([]byte("b"), 64*1024),
		bytes.Repeat([]byte("c"), 64*1024),
		bytes.Repeat([]byte("d"), 64*1024),
	}

	// Act
	var wg sync.WaitGroup
	for _, payload := range payloads {
		wg.Add(1)
		go func(p []byte) {
			defer wg.Done()
			_, err := adapter.SaveChunk(ctx, id, 0, bytes.NewReader(p))
			assert.NoError(t, err)
		}(payload)
	}
	wg.Wait()

	// Assert
	got := readChunk(t, adapter, id, 0)
	assert.Contains(t, payloads, got)
	indices, err := adapter.ListChunkIndices(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, indices)
}

func TestAdapter_ListChunkIndices(t *testing.T) {
	ctx := context.Background()
	id := domain.UploadID("upload-2")

	t.Run("success - missing directory is empty", func(t *testing.T) {
		// Arrange
		adapter, _ := newAdapter(t)

		// Act
		indices, err := adapter.ListChunkIndices(ctx, id)

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, indices)
		assert.Empty(t, indices)
	})

	t.Run("success - numeric ascending order regardless of write order", func(t *testing.T) {
		// Arrange
		adapter, _ := newAdapter(t)
		for _, index := range []int{10, 2, 0, 1} {
			_, err := adapter.SaveChunk(ctx, id, index, strings.NewReader("x"))
			require.NoError(t, err)
		}

		// Act
		indices, err := adapter.ListChunkIndices(ctx, id)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 10}, indices)
	})

	t.Run("success - stray entries are ignored", func(t *testing.T) {
		// Arrange
		adapter, root := newAdapter(t)
		_, err := adapter.SaveChunk(ctx, id, 4, strings.NewReader("x"))
		require.NoError(t, err)
		dir := filepath.Join(root, "temp", "upload-2")
		for _, name := range []string{"notes.txt", "abc.part", "-1.part", "07.part", ".5.part-123", "4.part.bak"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("junk"), 0o644))
		}
		require.NoError(t, os.Mkdir(filepath.Join(dir, "9.part"), 0o755))

		// Act
		indices, err := adapter.ListChunkIndices(ctx, id)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []int{4}, indices)
	})
}

func TestAdapter_RemoveUpload(t *testing.T) {
	// Arrange
	adapter, root := newAdapter(t)
	ctx := context.Background()
	id := domain.UploadID("upload-3")
	_, err := adapter.SaveChunk(ctx, id, 0, strings.NewReader("x"))
	require.NoError(t, err)

	// Act
	firstErr := adapter.RemoveUpload(ctx, id)
	secondErr := adapter.RemoveUpload(ctx, id)

	// Assert
	assert.NoError(t, firstErr)
	assert.NoError(t, secondErr)
	_, statErr := os.Stat(filepath.Join(root, "temp", "upload-3"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestAdapter_ListUploads(t *testing.T) {
	// Arrange
	adapter, root := newAdapter(t)
	ctx := context.Background()
	_, err := adapter.SaveChunk(ctx, "old", 0, strings.NewReader("x"))
	require.NoError(t, err)
	_, err = adapter.SaveChunk(ctx, "fresh", 0, strings.NewReader("x"))
	require.NoError(t, err)

	past := time.Now().Add(-48 * time.Hour)
	oldDir := filepath.Join(root, "temp", "old")
	require.NoError(t, os.Chtimes(filepath.Join(oldDir, "0.part"), past, past))
	require.NoError(t, os.Chtimes(oldDir, past, past))
	require.NoError(t, os.WriteFile(filepath.Join(root, "temp", "stray-file"), []byte("x"), 0o644))

	// Act
	uploads, err := adapter.ListUploads(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, uploads, 2)
	byID := map[domain.UploadID]time.Time{}
	for _, u := range uploads {
		byID[u.UploadID] = u.LastActivity
	}
	assert.WithinDuration(t, past, byID["old"], time.Second)
	assert.WithinDuration(t, time.Now(), byID["fresh"], time.Minute)
}

func TestAdapter_CreateArtifact(t *testing.T) {
	ctx := context.Background()

	t.Run("success - commit renames into place", func(t *testing.T) {
		// Arrange
		adapter, root := newAdapter(t)

		// Act
		artifact, err := adapter.CreateArtifact(ctx, "upload.mp4")
		require.NoError(t, err)
		_, err = artifact.Write([]byte("merged bytes"))
		require.NoError(t, err)
		_, statErr := os.Stat(filepath.Join(root, "upload.mp4"))
		require.True(t, errors.Is(statErr, os.ErrNotExist), "artifact must not be visible before commit")
		path, err := artifact.Commit()

		// Assert
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "upload.mp4"), path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "merged bytes", string(data))
		assert.NoError(t, artifact.Abort())
		assertOnlyEntries(t, root, "temp", "upload.mp4")
	})

	t.Run("success - abort leaves nothing", func(t *testing.T) {
		// Arrange
		adapter, root := newAdapter(t)
		artifact, err := adapter.CreateArtifact(ctx, "upload.mp4")
		require.NoError(t, err)
		_, err = artifact.Write([]byte("partial"))
		require.NoError(t, err)

		// Act
		err = artifact.Abort()

		// Assert
		assert.NoError(t, err)
		assertOnlyEntries(t, root, "temp")
	})

	t.Run("error - name of the chunk directory", func(t *testing.T) {
		// Arrange
		adapter, root := newAdapter(t)

		// Act
		_, err := adapter.CreateArtifact(ctx, "temp")

		// Assert
		assert.ErrorIs(t, err, domain.ErrStorage)
		assertOnlyEntries(t, root, "temp")
	})

	t.Run("error - name with separator", func(t *testing.T) {
		// Arrange
		adapter, _ := newAdapter(t)

		// Act
		_, err := adapter.CreateArtifact(ctx, "../escape.mp4")

		// Assert
		assert.ErrorIs(t, err, domain.ErrStorage)
	})
}

func assertOnlyEntries(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Name())
	}
	assert.ElementsMatch(t, names, got)
}

var errBoom = errors.New("boom")

type failingReader struct{}

func (f *failingReader) Read(p []byte) (int, error) {
	return 0, errBoom
}
