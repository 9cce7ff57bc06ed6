package events

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/janisto/digicard/internal/analytics"
	applog "github.com/janisto/digicard/internal/platform/logging"
)

const eventsCollection = "analytics_events"

type firestoreEvent struct {
	ProfileID string    `firestore:"profile_id"`
	EventType string    `firestore:"event_type"`
	CreatedAt time.Time `firestore:"created_at"`
}

// FirestoreStore implements Service on a Firestore collection.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Record appends an event with a server-side timestamp.
func (s *FirestoreStore) Record(
	ctx context.Context,
	profileID string,
	eventType analytics.EventType,
) (*analytics.Event, error) {
	if !eventType.Valid() {
		return nil, ErrUnknownEventType
	}

	fe := firestoreEvent{
		ProfileID: profileID,
		EventType: string(eventType),
		CreatedAt: time.Now().UTC(),
	}
	ref, _, err := s.client.Collection(eventsCollection).Add(ctx, fe)
	if err != nil {
		applog.LogAuditEvent(ctx, applog.AuditRecord, "", "event", profileID, applog.AuditFailure,
			map[string]any{"event_type": fe.EventType})
		return nil, fmt.Errorf("record event: %w", err)
	}

	applog.LogAuditEvent(ctx, applog.AuditRecord, "", "event", ref.ID, applog.AuditSuccess,
		map[string]any{"event_type": fe.EventType, "profile_id": profileID})
	return &analytics.Event{ProfileID: fe.ProfileID, Type: eventType, CreatedAt: fe.CreatedAt}, nil
}

// List returns every stored event, oldest first.
func (s *FirestoreStore) List(ctx context.Context) ([]analytics.Event, error) {
	docs, err := s.client.Collection(eventsCollection).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]analytics.Event, 0, len(docs))
	for _, doc := range docs {
		var fe firestoreEvent
		if err := doc.DataTo(&fe); err != nil {
			return nil, fmt.Errorf("decode event %s: %w", doc.Ref.ID, err)
		}
		out = append(out, analytics.Event{
			ProfileID: fe.ProfileID,
			Type:      analytics.EventType(fe.EventType),
			CreatedAt: fe.CreatedAt,
		})
	}
	return out, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
