package avatar

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockUploader implements Uploader in memory.
type MockUploader struct {
	// Error, when set, fails every upload wrapped in ErrUpload.
	Error error

	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMockUploader creates an empty mock.
func NewMockUploader() *MockUploader {
	return &MockUploader{objects: make(map[string][]byte)}
}

func (m *MockUploader) Upload(_ context.Context, userID string, data []byte) (string, error) {
	_, ext, err := Sniff(data)
	if err != nil {
		return "", err
	}
	if m.Error != nil {
		return "", fmt.Errorf("%w: %w", ErrUpload, m.Error)
	}
	object := ObjectName(userID, time.Now(), ext)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[object] = append([]byte(nil), data...)
	return PublicURL("mock-bucket", object), nil
}

// Objects returns the number of stored objects.
func (m *MockUploader) Objects() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

// Compile-time interface check
var _ Uploader = (*MockUploader)(nil)
