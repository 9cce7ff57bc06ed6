package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/janisto/digicard/internal/card"
	applog "github.com/janisto/digicard/internal/platform/logging"
)

const (
	profilesCollection  = "profiles"
	usernamesCollection = "usernames"
	auditResource       = "profile"
)

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrUsernameTaken):
		return "username_taken"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}

// firestoreProfile maps to the profiles/{uid} document. The embedded record
// is flattened into the document fields.
type firestoreProfile struct {
	Username string `firestore:"username"`
	card.Record
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// firestoreUsername maps to the usernames/{username} reservation document.
type firestoreUsername struct {
	UserID string `firestore:"user_id"`
}

func (fp firestoreProfile) toProfile(userID string) *Profile {
	return &Profile{
		ID:        userID,
		Username:  fp.Username,
		Record:    fp.Record,
		CreatedAt: fp.CreatedAt,
		UpdatedAt: fp.UpdatedAt,
	}
}

// FirestoreStore implements Service using Firestore with transactions.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) profileRef(userID string) *firestore.DocumentRef {
	return s.client.Collection(profilesCollection).Doc(userID)
}

func (s *FirestoreStore) usernameRef(username string) *firestore.DocumentRef {
	return s.client.Collection(usernamesCollection).Doc(username)
}

// Create stores a new profile and reserves its username in one transaction.
func (s *FirestoreStore) Create(ctx context.Context, userID string, params CreateParams) (*Profile, error) {
	username := card.NormalizeUsername(params.Username)
	profileRef := s.profileRef(userID)
	usernameRef := s.usernameRef(username)
	now := time.Now().UTC()

	var result *Profile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if exists, err := docExists(tx, profileRef); err != nil {
			return err
		} else if exists {
			return ErrAlreadyExists
		}
		if taken, err := docExists(tx, usernameRef); err != nil {
			return err
		} else if taken {
			return ErrUsernameTaken
		}

		fp := firestoreProfile{
			Username:  username,
			Record:    initialRecord(params.Email),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Create(usernameRef, firestoreUsername{UserID: userID}); err != nil {
			return err
		}
		if err := tx.Set(profileRef, fp); err != nil {
			return err
		}
		result = fp.toProfile(userID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, applog.AuditCreate, userID, auditResource, userID, applog.AuditFailure,
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, applog.AuditCreate, userID, auditResource, userID, applog.AuditSuccess,
		map[string]any{"username": username})
	return result, nil
}

func docExists(tx *firestore.Transaction, ref *firestore.DocumentRef) (bool, error) {
	doc, err := tx.Get(ref)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}
	return doc.Exists(), nil
}

// Get retrieves a profile by user ID.
func (s *FirestoreStore) Get(ctx context.Context, userID string) (*Profile, error) {
	doc, err := s.profileRef(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fp firestoreProfile
	if err := doc.DataTo(&fp); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", userID, err)
	}
	return fp.toProfile(userID), nil
}

// GetByUsername resolves the username reservation and loads its profile.
func (s *FirestoreStore) GetByUsername(ctx context.Context, username string) (*Profile, error) {
	doc, err := s.usernameRef(card.NormalizeUsername(username)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fu firestoreUsername
	if err := doc.DataTo(&fu); err != nil {
		return nil, fmt.Errorf("decode username %s: %w", username, err)
	}
	return s.Get(ctx, fu.UserID)
}

// Save replaces the card record of an existing profile.
func (s *FirestoreStore) Save(ctx context.Context, userID string, record card.Record) (*Profile, error) {
	ref := s.profileRef(userID)

	var result *Profile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fp firestoreProfile
		if err := doc.DataTo(&fp); err != nil {
			return err
		}
		fp.Record = record
		fp.UpdatedAt = time.Now().UTC()

		if err := tx.Set(ref, fp); err != nil {
			return err
		}
		result = fp.toProfile(userID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, applog.AuditSave, userID, auditResource, userID, applog.AuditFailure,
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, applog.AuditSave, userID, auditResource, userID, applog.AuditSuccess, nil)
	return result, nil
}

// Delete removes a profile and releases its username.
func (s *FirestoreStore) Delete(ctx context.Context, userID string) error {
	ref := s.profileRef(userID)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fp firestoreProfile
		if err := doc.DataTo(&fp); err != nil {
			return err
		}
		if fp.Username != "" {
			if err := tx.Delete(s.usernameRef(fp.Username)); err != nil {
				return err
			}
		}
		return tx.Delete(ref)
	})
	if err != nil {
		applog.LogAuditEvent(ctx, applog.AuditDelete, userID, auditResource, userID, applog.AuditFailure,
			map[string]any{"error": categorizeError(err)})
		return err
	}

	applog.LogAuditEvent(ctx, applog.AuditDelete, userID, auditResource, userID, applog.AuditSuccess, nil)
	return nil
}

// List returns every profile, oldest first.
func (s *FirestoreStore) List(ctx context.Context) ([]*Profile, error) {
	docs, err := s.client.Collection(profilesCollection).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	profiles := make([]*Profile, 0, len(docs))
	for _, doc := range docs {
		var fp firestoreProfile
		if err := doc.DataTo(&fp); err != nil {
			return nil, fmt.Errorf("decode profile %s: %w", doc.Ref.ID, err)
		}
		profiles = append(profiles, fp.toProfile(doc.Ref.ID))
	}
	return profiles, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
