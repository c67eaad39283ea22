package media

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"prime-property/internal/config"
	"prime-property/internal/domain"
)

const MaxImageSize = 10 << 20

type Service interface {
	UploadPropertyImage(ctx context.Context, propertyID int64, fileName string, fileSize int64, mimeType string, reader io.Reader) (string, error)
	Remove(ctx context.Context, publicURL string) error
	Enabled() bool
}

type service struct {
	minioClient *minio.Client
	cfg         *config.Config
}

// NewService accepts a nil client; uploads then fail with
// domain.ErrStorageUnavailable.
func NewService(minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) Enabled() bool {
	return s.minioClient != nil
}

func validateImage(fileSize int64, mimeType string) error {
	if !strings.HasPrefix(mimeType, "image/") {
		return domain.NewValidationError("file", "must be an image")
	}
	if fileSize <= 0 {
		return domain.NewValidationError("file", "is empty")
	}
	if fileSize > MaxImageSize {
		return domain.NewValidationError("file", "must be at most 10 MB")
	}
	return nil
}

func (s *service) UploadPropertyImage(ctx context.Context, propertyID int64, fileName string, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	if err := validateImage(fileSize, mimeType); err != nil {
		return "", err
	}
	if !s.Enabled() {
		return "", domain.ErrStorageUnavailable
	}

	storagePath := objectKey(propertyID, fileName)
	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return s.publicURL(storagePath), nil
}

// Remove deletes an object previously returned by UploadPropertyImage. URLs
// that do not point into the bucket are ignored.
func (s *service) Remove(ctx context.Context, publicURL string) error {
	if !s.Enabled() {
		return nil
	}
	prefix := s.publicURL("")
	if !strings.HasPrefix(publicURL, prefix) {
		return nil
	}
	storagePath, err := url.PathUnescape(strings.TrimPrefix(publicURL, prefix))
	if err != nil {
		return err
	}
	return s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
}

func objectKey(propertyID int64, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("properties/%d/%s%s", propertyID, uuid.New().String(), ext)
}

func (s *service) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}
