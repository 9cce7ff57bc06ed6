package events

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/janisto/digicard/internal/analytics"
)

// MockEventService implements Service in memory.
type MockEventService struct {
	mu     sync.RWMutex
	events []analytics.Event
}

// NewMockEventService creates an empty mock, optionally seeded with events.
func NewMockEventService(seed ...analytics.Event) *MockEventService {
	return &MockEventService{events: slices.Clone(seed)}
}

func (m *MockEventService) Record(
	_ context.Context,
	profileID string,
	eventType analytics.EventType,
) (*analytics.Event, error) {
	if !eventType.Valid() {
		return nil, ErrUnknownEventType
	}
	ev := analytics.Event{ProfileID: profileID, Type: eventType, CreatedAt: time.Now().UTC()}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return &ev, nil
}

func (m *MockEventService) List(_ context.Context) ([]analytics.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.events), nil
}

// Compile-time interface check
var _ Service = (*MockEventService)(nil)
