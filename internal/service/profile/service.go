package profile

import (
	"context"
	"errors"
	"time"

	"github.com/janisto/digicard/internal/card"
)

// Service errors
var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
	ErrUsernameTaken = errors.New("username already taken")
)

// Profile is a stored card: the owner, the public username and the flat
// record of card values.
type Profile struct {
	ID        string
	Username  string
	Record    card.Record
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Card returns the nested card representation of the stored record.
func (p *Profile) Card() card.Card {
	return card.FromRecord(p.Record)
}

// CreateParams for registering a profile.
type CreateParams struct {
	Username string
	// Email is the identity email. It seeds the contact email, disabled.
	Email string
}

// Service defines profile persistence.
//
// Implementations must:
//   - normalize usernames with card.NormalizeUsername before storing or looking up
//   - keep usernames unique across profiles (ErrUsernameTaken)
//   - replace the whole record on Save and refresh UpdatedAt
//   - return List ordered by CreatedAt, oldest first
type Service interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Profile, error)
	Get(ctx context.Context, userID string) (*Profile, error)
	GetByUsername(ctx context.Context, username string) (*Profile, error)
	Save(ctx context.Context, userID string, record card.Record) (*Profile, error)
	Delete(ctx context.Context, userID string) error
	List(ctx context.Context) ([]*Profile, error)
}

// initialRecord is the record of a freshly registered profile.
func initialRecord(email string) card.Record {
	return card.Record{EmailContact: email}
}
