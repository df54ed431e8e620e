package upload_test

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"petfoster-upload/internal/adapters/handlers/http/chi"
	upload2 "petfoster-upload/internal/adapters/handlers/http/chi/v1/upload"
	"petfoster-upload/internal/core/service/upload"
	"testing"

	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newRouter(service *upload.MockUploadService) http.Handler {
	handler := upload2.NewUploadHandlerV1(service, discardLogger)
	return chi.NewRouter(discardLogger, handler, "", 1<<20)
}

// multipartBody builds a chunk form; empty field values are omitted
func multipartBody(t *testing.T, fields map[string]string, chunk []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if v == "" {
			continue
		}
		require.NoError(t, writer.WriteField(k, v))
	}
	if chunk != nil {
		part, err := writer.CreateFormFile("chunk", "blob")
		require.NoError(t, err)
		_, err = part.Write(chunk)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}
