package auth

import "context"

// MockVerifier provides fake token verification for tests.
type MockVerifier struct {
	User  *FirebaseUser
	Error error
}

// Verify returns the configured error, or the configured user.
func (m *MockVerifier) Verify(_ context.Context, _ string) (*FirebaseUser, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.User, nil
}

// TestUser returns a regular card owner.
func TestUser() *FirebaseUser {
	return &FirebaseUser{
		UID:           "test-user-123",
		Email:         "jean@example.com",
		EmailVerified: true,
	}
}

// TestAdmin returns a user carrying the admin claim.
func TestAdmin() *FirebaseUser {
	return &FirebaseUser{
		UID:           "admin-user-1",
		Email:         "admin@example.com",
		EmailVerified: true,
		Admin:         true,
	}
}

var _ Verifier = (*MockVerifier)(nil)
