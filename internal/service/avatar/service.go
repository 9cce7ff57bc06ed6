// Package avatar stores profile photos in object storage.
package avatar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// MaxSize bounds an uploaded photo.
const MaxSize = 512 << 10

var (
	ErrEmpty           = errors.New("empty avatar")
	ErrTooLarge        = errors.New("avatar too large")
	ErrUnsupportedType = errors.New("unsupported avatar type")
	// ErrUpload wraps storage failures. Callers abort the whole save.
	ErrUpload = errors.New("failed to upload photo")
)

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// Uploader stores a photo and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, userID string, data []byte) (string, error)
}

// Sniff validates data and returns its content type and file extension.
func Sniff(data []byte) (contentType, ext string, err error) {
	if len(data) == 0 {
		return "", "", ErrEmpty
	}
	if len(data) > MaxSize {
		return "", "", ErrTooLarge
	}
	contentType = http.DetectContentType(data)
	ext, ok := extensions[contentType]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	return contentType, ext, nil
}

// ObjectName is the storage key of a photo uploaded by userID at t.
func ObjectName(userID string, t time.Time, ext string) string {
	return userID + "-" + strconv.FormatInt(t.UnixMilli(), 10) + "." + ext
}
