package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// LocalUploader stores images on the local filesystem and serves them from
// the /uploads static route.
type LocalUploader struct {
	dir     string
	baseURL string
}

func NewLocalUploader(dir, baseURL string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (u *LocalUploader) Upload(_ context.Context, file *multipart.FileHeader) (string, error) {
	if err := validate(file); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := objectName(file)
	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s", u.baseURL, name), nil
}
