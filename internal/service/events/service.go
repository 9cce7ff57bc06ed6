// Package events persists the append-only analytics events of public cards.
package events

import (
	"context"
	"errors"

	"github.com/janisto/digicard/internal/analytics"
)

// ErrUnknownEventType is returned when recording a type outside
// analytics.EventTypes.
var ErrUnknownEventType = errors.New("unknown event type")

// Service records and lists analytics events.
type Service interface {
	Record(ctx context.Context, profileID string, eventType analytics.EventType) (*analytics.Event, error)
	List(ctx context.Context) ([]analytics.Event, error)
}
