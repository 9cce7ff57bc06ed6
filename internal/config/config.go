// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
)

const (
	DefaultPort        = 8080
	DefaultDraftDBPath = "drafts.db"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port                         int
	FirebaseProjectID            string
	GoogleApplicationCredentials string
	AvatarBucket                 string
	PublicBaseURL                string
	DraftDBPath                  string
}

// Address returns the listen address of the HTTP server.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.FirebaseProjectID, validation.Required),
		validation.Field(&c.AvatarBucket, validation.Required),
		validation.Field(&c.PublicBaseURL, validation.Required, is.URL),
		validation.Field(&c.DraftDBPath, validation.Required),
	)
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win over the
// file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds and validates a Config from lookup.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		Port:        DefaultPort,
		DraftDBPath: DefaultDraftDBPath,
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: PORT: %w", err)
		}
		cfg.Port = port
	}
	if v, ok := lookup("DRAFT_DB_PATH"); ok && v != "" {
		cfg.DraftDBPath = v
	}
	cfg.FirebaseProjectID, _ = lookup("FIREBASE_PROJECT_ID")
	cfg.GoogleApplicationCredentials, _ = lookup("GOOGLE_APPLICATION_CREDENTIALS")
	cfg.AvatarBucket, _ = lookup("AVATAR_BUCKET")
	cfg.PublicBaseURL, _ = lookup("PUBLIC_BASE_URL")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
