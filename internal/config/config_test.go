package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func validEnv() map[string]string {
	return map[string]string{
		"FIREBASE_PROJECT_ID": "demo-test-project",
		"AVATAR_BUCKET":       "demo-test-project.appspot.com",
		"PUBLIC_BASE_URL":     "https://cards.example",
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(validEnv()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Address() != ":8080" {
		t.Errorf("unexpected address %q", cfg.Address())
	}
	if cfg.DraftDBPath != DefaultDraftDBPath {
		t.Errorf("expected draft db %q, got %q", DefaultDraftDBPath, cfg.DraftDBPath)
	}
	if cfg.GoogleApplicationCredentials != "" {
		t.Errorf("expected no credentials, got %q", cfg.GoogleApplicationCredentials)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	env := validEnv()
	env["PORT"] = "9090"
	env["DRAFT_DB_PATH"] = "/tmp/d.db"
	env["GOOGLE_APPLICATION_CREDENTIALS"] = "/secrets/sa.json"

	cfg, err := FromEnv(lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 || cfg.DraftDBPath != "/tmp/d.db" || cfg.GoogleApplicationCredentials != "/secrets/sa.json" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]string)
		wantErr string
	}{
		{"bad port", func(e map[string]string) { e["PORT"] = "http" }, "PORT"},
		{"port out of range", func(e map[string]string) { e["PORT"] = "70000" }, "Port"},
		{"missing project", func(e map[string]string) { delete(e, "FIREBASE_PROJECT_ID") }, "FirebaseProjectID"},
		{"missing bucket", func(e map[string]string) { delete(e, "AVATAR_BUCKET") }, "AvatarBucket"},
		{"missing base url", func(e map[string]string) { delete(e, "PUBLIC_BASE_URL") }, "PublicBaseURL"},
		{"invalid base url", func(e map[string]string) { e["PUBLIC_BASE_URL"] = "not a url" }, "PublicBaseURL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := validEnv()
			tt.mutate(env)
			_, err := FromEnv(lookupFrom(env))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	content := "FIREBASE_PROJECT_ID=from-file\nAVATAR_BUCKET=bucket\nPUBLIC_BASE_URL=https://file.example\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("AVATAR_BUCKET", "from-env")
	for _, k := range []string{"FIREBASE_PROJECT_ID", "PUBLIC_BASE_URL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FirebaseProjectID != "from-file" {
		t.Errorf("expected project from .env, got %q", cfg.FirebaseProjectID)
	}
	if cfg.AvatarBucket != "from-env" {
		t.Errorf("expected environment to win, got %q", cfg.AvatarBucket)
	}
}
