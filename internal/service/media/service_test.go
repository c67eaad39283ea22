package media

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"prime-property/internal/config"
	"prime-property/internal/domain"
)

func TestUploadValidation(t *testing.T) {
	svc := NewService(nil, &config.Config{})
	ctx := context.Background()

	_, err := svc.UploadPropertyImage(ctx, 1, "notes.txt", 10, "text/plain", strings.NewReader("x"))
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.UploadPropertyImage(ctx, 1, "big.jpg", MaxImageSize+1, "image/jpeg", strings.NewReader("x"))
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.UploadPropertyImage(ctx, 1, "ok.jpg", 10, "image/jpeg", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestObjectKey(t *testing.T) {
	key := objectKey(42, "Front.JPG")
	assert.True(t, strings.HasPrefix(key, "properties/42/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
}

func TestPublicURL(t *testing.T) {
	svc := &service{cfg: &config.Config{
		MinIOPublicEndpoint: "cdn.example.com",
		MinIOBucket:         "media",
		MinIOPublicUseSSL:   true,
	}}
	assert.Equal(t, "https://cdn.example.com/media/properties%2F1%2Fa.jpg", svc.publicURL("properties/1/a.jpg"))
}
