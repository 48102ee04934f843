package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stitchline/garment-erp-go/internal/pkg/storage"
)

// FileService stores uploaded files and hands back public URLs.
type FileService interface {
	UploadPersonPhoto(ctx context.Context, personType, personID string, file io.Reader, filename string) (string, error)
	UploadReport(ctx context.Context, content io.Reader, filename string) (string, error)
	Delete(ctx context.Context, path string) error
}

type FileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(fileStorage storage.FileStorage) FileService {
	return &FileServiceImpl{storage: fileStorage}
}

var allowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// UploadPersonPhoto implements FileService.
func (s *FileServiceImpl) UploadPersonPhoto(ctx context.Context, personType, personID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedImageExtensions[ext]
	if !ok {
		return "", fmt.Errorf("unsupported photo format %q", ext)
	}

	path := fmt.Sprintf("photos/%s/%s%s", personType, personID, ext)
	stored, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return s.storage.PublicURL(stored), nil
}

// UploadReport implements FileService.
func (s *FileServiceImpl) UploadReport(ctx context.Context, content io.Reader, filename string) (string, error) {
	path := fmt.Sprintf("reports/%s/%s-%s",
		time.Now().Format("2006-01"), uuid.NewString()[:8], filepath.Base(filename))

	stored, err := s.storage.Upload(ctx, content, path,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	return s.storage.PublicURL(stored), nil
}

// Delete implements FileService.
func (s *FileServiceImpl) Delete(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
