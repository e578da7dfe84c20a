package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/repository"
)

// ObjectStorage is the slice of the MinIO client the gallery needs.
type ObjectStorage interface {
	UploadFile(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, contentType string) error
	DeleteFile(ctx context.Context, bucketName, objectName string) error
	ObjectURL(bucketName, objectName string) string
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

const maxImageSize = 5 << 20

type GalleryService struct {
	repo    repository.IGalleryRepository
	storage ObjectStorage
	bucket  string
}

func NewGalleryService(repo repository.IGalleryRepository, storage ObjectStorage, bucket string) *GalleryService {
	return &GalleryService{repo: repo, storage: storage, bucket: bucket}
}

func (s *GalleryService) ListImages(ctx context.Context) ([]models.GalleryImage, error) {
	return s.repo.ListImages(ctx)
}

// Upload stores the image under a generated key and records it.
func (s *GalleryService) Upload(ctx context.Context, title, contentType string, size int64, body io.Reader) (*models.GalleryImage, error) {
	contentType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, validationError("unsupported image type %q", contentType)
	}
	if size <= 0 || size > maxImageSize {
		return nil, validationError("image must be between 1 byte and %d MB", maxImageSize>>20)
	}

	objectKey := path.Join("images", uuid.NewString()+ext)
	if err := s.storage.UploadFile(ctx, s.bucket, objectKey, body, size, contentType); err != nil {
		return nil, err
	}

	image := &models.GalleryImage{
		Title:     strings.TrimSpace(title),
		ObjectKey: objectKey,
		URL:       s.storage.ObjectURL(s.bucket, objectKey),
	}
	if err := s.repo.CreateImage(ctx, image); err != nil {
		if delErr := s.storage.DeleteFile(ctx, s.bucket, objectKey); delErr != nil {
			slog.Error("failed to remove orphaned gallery object", "object", objectKey, "error", delErr)
		}
		return nil, fmt.Errorf("failed to record gallery image: %w", err)
	}
	return image, nil
}

func (s *GalleryService) Delete(ctx context.Context, id int64) error {
	image, err := s.repo.GetImageByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteImage(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeleteFile(ctx, s.bucket, image.ObjectKey); err != nil {
		slog.Warn("gallery row deleted but object removal failed", "object", image.ObjectKey, "error", err)
	}
	return nil
}
