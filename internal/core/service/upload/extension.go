package upload

import (
	"path/filepath"
	"petfoster-upload/internal/core/domain"
	"regexp"
	"strings"
)

// KnownExtensions maps MIME types to their extensions, first one preferred.
// This is deterministic and does NOT rely on OS mime databases (Docker-safe).
var KnownExtensions = map[string][]string{
	// Images
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/webp": {".webp"},
	"image/gif":  {".gif"},
	"image/bmp":  {".bmp"},
	"image/tiff": {".tif", ".tiff"},
	"image/heic": {".heic"},

	// Documents
	"application/pdf":    {".pdf"},
	"text/plain":         {".txt"},
	"application/msword": {".doc"},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {".docx"},

	// Audio
	"audio/mpeg": {".mp3"},
	"audio/wav":  {".wav"},
	"audio/ogg":  {".ogg"},

	// Videos
	"video/mp4":       {".mp4"},
	"video/webm":      {".webm"},
	"video/quicktime": {".mov"},
}

var extensionPattern = regexp.MustCompile(`^\.[a-z0-9]{1,16}$`)

// ArtifactName returns <uploadID><ext>: the original file extension when it is safe,
// else the preferred extension of the declared type, else nothing.
func ArtifactName(uploadID domain.UploadID, originalFileName string, contentType string) string {
	ext := strings.ToLower(filepath.Ext(originalFileName))
	if !extensionPattern.MatchString(ext) {
		ext = ""
	}
	if ext == "" {
		if exts, ok := KnownExtensions[extractMimeType(contentType)]; ok {
			ext = exts[0]
		}
	}
	return uploadID.String() + ext
}
