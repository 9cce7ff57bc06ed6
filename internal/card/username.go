package card

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 30
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// NormalizeUsername lower-cases and trims a username as typed by the user.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateUsername checks an already normalized username. The demo username is
// reserved and never accepted.
func ValidateUsername(username string) error {
	return validation.Validate(username,
		validation.Required.Error("username is required"),
		validation.Length(UsernameMinLength, UsernameMaxLength).
			Error("username must be between 3 and 30 characters"),
		validation.Match(usernamePattern).
			Error("username may only contain lowercase letters, digits and underscores"),
		validation.NotIn(DemoUsername).Error("username is reserved"),
	)
}
