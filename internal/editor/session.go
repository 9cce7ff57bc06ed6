// Package editor holds the working copy of a card while its owner edits it.
package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/janisto/digicard/internal/card"
	"github.com/janisto/digicard/internal/draft"
)

// Session is a single editing session. It is not safe for concurrent use.
//
// Changes stay in memory until Save. Load and Save each touch the draft store
// exactly once, and a failure leaves the working copy as it was.
type Session struct {
	store draft.Store
	key   string
	card  card.Card
}

// New starts a session on an empty card, persisting under key. An empty key
// selects draft.DefaultKey.
func New(store draft.Store, key string) *Session {
	if key == "" {
		key = draft.DefaultKey
	}
	return &Session{store: store, key: key, card: card.Default()}
}

// Key returns the draft key of the session.
func (s *Session) Key() string {
	return s.key
}

// Card returns the current working copy.
func (s *Session) Card() card.Card {
	return s.card
}

// Replace swaps the working copy for c.
func (s *Session) Replace(c card.Card) {
	s.card = c
}

func (s *Session) SetIdentity(f card.IdentityField, v string) {
	s.card.SetIdentity(f, v)
}

// SetFieldValue changes the value of a field without touching its toggle.
func (s *Session) SetFieldValue(id card.FieldID, v string) {
	f := s.card.Field(id)
	f.Value = v
	s.card.SetField(id, f)
}

// ToggleField flips the enabled flag of a field.
func (s *Session) ToggleField(id card.FieldID) {
	f := s.card.Field(id)
	f.Enabled = !f.Enabled
	s.card.SetField(id, f)
}

func (s *Session) SetAvatar(url string) {
	s.card.Avatar = url
}

// Load replaces the working copy with the stored draft, migrated from any legacy
// shape. It reports false when no draft exists; the working copy is kept then.
func (s *Session) Load(ctx context.Context) (bool, error) {
	data, err := s.store.Get(ctx, s.key)
	if errors.Is(err, draft.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load draft: %w", err)
	}
	c, err := card.DecodeLegacy(data, card.Default())
	if err != nil {
		return false, err
	}
	s.card = c
	return true, nil
}

// Save writes the whole working copy to the draft store.
func (s *Session) Save(ctx context.Context) error {
	data, err := json.Marshal(s.card)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.store.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}
