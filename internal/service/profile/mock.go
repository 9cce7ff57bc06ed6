package profile

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/janisto/digicard/internal/card"
)

// MockProfileService implements Service for unit tests.
type MockProfileService struct {
	mu        sync.RWMutex
	profiles  map[string]*Profile
	usernames map[string]string
	now       func() time.Time
}

// NewMockProfileService creates a new mock service.
func NewMockProfileService() *MockProfileService {
	return &MockProfileService{
		profiles:  make(map[string]*Profile),
		usernames: make(map[string]string),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the time source used for CreatedAt and UpdatedAt.
func (m *MockProfileService) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *MockProfileService) Create(_ context.Context, userID string, params CreateParams) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.profiles[userID]; exists {
		return nil, ErrAlreadyExists
	}
	username := card.NormalizeUsername(params.Username)
	if _, taken := m.usernames[username]; taken {
		return nil, ErrUsernameTaken
	}

	now := m.now()
	p := &Profile{
		ID:        userID,
		Username:  username,
		Record:    initialRecord(params.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.profiles[userID] = p
	m.usernames[username] = userID
	return clone(p), nil
}

func (m *MockProfileService) Get(_ context.Context, userID string) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, exists := m.profiles[userID]
	if !exists {
		return nil, ErrNotFound
	}
	return clone(p), nil
}

func (m *MockProfileService) GetByUsername(ctx context.Context, username string) (*Profile, error) {
	m.mu.RLock()
	userID, exists := m.usernames[card.NormalizeUsername(username)]
	m.mu.RUnlock()
	if !exists {
		return nil, ErrNotFound
	}
	return m.Get(ctx, userID)
}

func (m *MockProfileService) Save(_ context.Context, userID string, record card.Record) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.profiles[userID]
	if !exists {
		return nil, ErrNotFound
	}
	p.Record = record
	p.UpdatedAt = m.now()
	return clone(p), nil
}

func (m *MockProfileService) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.profiles[userID]
	if !exists {
		return ErrNotFound
	}
	delete(m.usernames, p.Username)
	delete(m.profiles, userID)
	return nil
}

func (m *MockProfileService) List(_ context.Context) ([]*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		out = append(out, clone(p))
	}
	slices.SortFunc(out, func(a, b *Profile) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

func clone(p *Profile) *Profile {
	c := *p
	return &c
}

// Compile-time interface check
var _ Service = (*MockProfileService)(nil)
