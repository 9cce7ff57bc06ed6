// Package cards assembles public cards and saves edited ones.
package cards

import (
	"context"
	"errors"
	"fmt"

	"github.com/janisto/digicard/internal/analytics"
	"github.com/janisto/digicard/internal/card"
	"github.com/janisto/digicard/internal/service/avatar"
	"github.com/janisto/digicard/internal/service/events"
	"github.com/janisto/digicard/internal/service/profile"
)

var (
	ErrNotFound = errors.New("card not found")
	// ErrSave wraps storage failures of Save.
	ErrSave = errors.New("failed to save")
)

// Service combines profile storage, avatar uploads and event recording.
type Service struct {
	profiles profile.Service
	avatars  avatar.Uploader
	events   events.Service
	baseURL  string
}

// New creates a card service. baseURL is the public origin cards are
// shared from.
func New(profiles profile.Service, avatars avatar.Uploader, ev events.Service, baseURL string) *Service {
	return &Service{profiles: profiles, avatars: avatars, events: ev, baseURL: baseURL}
}

// URL returns the shareable URL of username's card.
func (s *Service) URL(username string) string {
	return card.CardURL(s.baseURL, username)
}

// lookup resolves username to its card. The demo username never reaches
// storage; its profile is nil.
func (s *Service) lookup(ctx context.Context, username string) (card.Card, *profile.Profile, error) {
	username = card.NormalizeUsername(username)
	if card.IsDemo(username) {
		return card.Demo(), nil, nil
	}
	p, err := s.profiles.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return card.Card{}, nil, ErrNotFound
		}
		return card.Card{}, nil, fmt.Errorf("lookup %s: %w", username, err)
	}
	return p.Card(), p, nil
}

// Public renders the public card of username.
func (s *Service) Public(ctx context.Context, username string) (card.PublicCard, error) {
	c, _, err := s.lookup(ctx, username)
	if err != nil {
		return card.PublicCard{}, err
	}
	return card.Render(c, card.RenderOptions{
		BaseURL:  s.baseURL,
		Username: card.NormalizeUsername(username),
	}), nil
}

// VCard returns the vCard text of username's card and its download name.
func (s *Service) VCard(ctx context.Context, username string) (text, filename string, err error) {
	c, _, err := s.lookup(ctx, username)
	if err != nil {
		return "", "", err
	}
	return card.BuildVCard(c), card.VCardFilename(c), nil
}

// QR returns the PNG QR code of username's card URL and its download name.
func (s *Service) QR(ctx context.Context, username string) (png []byte, filename string, err error) {
	username = card.NormalizeUsername(username)
	if _, _, err := s.lookup(ctx, username); err != nil {
		return nil, "", err
	}
	png, err = card.QRCode(s.baseURL, username)
	if err != nil {
		return nil, "", err
	}
	return png, card.QRFilename(username), nil
}

// RecordEvent appends an analytics event for username's card. Events on
// the demo card are accepted and dropped.
func (s *Service) RecordEvent(ctx context.Context, username string, eventType analytics.EventType) error {
	if !eventType.Valid() {
		return events.ErrUnknownEventType
	}
	_, p, err := s.lookup(ctx, username)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	if _, err := s.events.Record(ctx, p.ID, eventType); err != nil {
		return fmt.Errorf("record event: %w", err)
	}
	return nil
}

// Save stores c as userID's card. A non-empty photo is uploaded first and
// replaces the avatar URL; when the upload fails nothing is stored.
func (s *Service) Save(ctx context.Context, userID string, c card.Card, photo []byte) (*profile.Profile, error) {
	if len(photo) > 0 {
		url, err := s.avatars.Upload(ctx, userID, photo)
		if err != nil {
			return nil, err
		}
		c.Avatar = url
	}

	p, err := s.profiles.Save(ctx, userID, card.ToRecord(c))
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrSave, err)
	}
	return p, nil
}
