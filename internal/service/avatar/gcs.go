package avatar

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/storage"

	applog "github.com/janisto/digicard/internal/platform/logging"
)

// GCSUploader implements Uploader on a Cloud Storage bucket.
type GCSUploader struct {
	bucket *storage.BucketHandle
	name   string
	now    func() time.Time
}

// NewGCSUploader creates an uploader writing into bucket.
func NewGCSUploader(bucket *storage.BucketHandle) *GCSUploader {
	return &GCSUploader{
		bucket: bucket,
		name:   bucket.BucketName(),
		now:    time.Now,
	}
}

// Upload writes the photo as a new object and returns its public URL.
// Objects are never overwritten: each upload gets a fresh name.
func (u *GCSUploader) Upload(ctx context.Context, userID string, data []byte) (string, error) {
	contentType, ext, err := Sniff(data)
	if err != nil {
		return "", err
	}
	object := ObjectName(userID, u.now(), ext)

	w := u.bucket.Object(object).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=31536000, immutable"
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", u.fail(ctx, userID, object, err)
	}
	if err := w.Close(); err != nil {
		return "", u.fail(ctx, userID, object, err)
	}

	applog.LogAuditEvent(ctx, applog.AuditCreate, userID, "avatar", object, applog.AuditSuccess, nil)
	return PublicURL(u.name, object), nil
}

func (u *GCSUploader) fail(ctx context.Context, userID, object string, err error) error {
	applog.LogError(ctx, "avatar upload failed", err)
	applog.LogAuditEvent(ctx, applog.AuditCreate, userID, "avatar", object, applog.AuditFailure, nil)
	return fmt.Errorf("%w: %w", ErrUpload, err)
}

// PublicURL is the download URL of object in bucket.
func PublicURL(bucket, object string) string {
	return "https://storage.googleapis.com/" + bucket + "/" + object
}

// Compile-time interface check
var _ Uploader = (*GCSUploader)(nil)
