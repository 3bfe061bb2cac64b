package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize is the per-file upload limit.
const MaxFileSize = 1 << 20 // 1MB

// Uploader stores one uploaded image and returns a stable public URL for it.
type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// UploadAll stores every file through the uploader, failing on the first
// error.
func UploadAll(ctx context.Context, up Uploader, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := up.Upload(ctx, file)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// validate rejects non-image and oversized files before any bytes are stored.
func validate(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return fmt.Errorf("file %q exceeds the %d byte limit", file.Filename, MaxFileSize)
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("file %q is not an image", file.Filename)
	}
	return nil
}

// objectName builds a collision-free stored name preserving the extension.
func objectName(file *multipart.FileHeader) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
}
