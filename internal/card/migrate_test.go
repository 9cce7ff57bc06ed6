package card

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMigrateWrapsLegacyStrings(t *testing.T) {
	raw := map[string]any{
		"firstName": "Jean",
		"phone":     "+33612345678",
		"linkedin":  "",
	}

	got := Migrate(raw, Default())

	if got.FirstName != "Jean" {
		t.Errorf("expected firstName Jean, got %q", got.FirstName)
	}
	if diff := cmp.Diff(SocialField{Value: "+33612345678", Enabled: true}, got.Phone); diff != "" {
		t.Errorf("phone mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(SocialField{}, got.LinkedIn); diff != "" {
		t.Errorf("empty legacy string should be disabled (-want +got):\n%s", diff)
	}
}

func TestMigrateCurrentShape(t *testing.T) {
	raw := map[string]any{
		"email":  map[string]any{"value": "jean@example.com", "enabled": false},
		"github": SocialField{Value: "https://github.com/jean", Enabled: true},
	}

	got := Migrate(raw, Default())

	if got.Email != (SocialField{Value: "jean@example.com", Enabled: false}) {
		t.Errorf("unexpected email %+v", got.Email)
	}
	if !got.GitHub.Active() {
		t.Errorf("expected github active, got %+v", got.GitHub)
	}
}

func TestMigrateDropsUnknownKeys(t *testing.T) {
	raw := map[string]any{"myspace": "tom", "lastName": "Dupont"}
	got := Migrate(raw, Default())

	want := Card{LastName: "Dupont"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMigrateKeepsDefaultsOnBadTypes(t *testing.T) {
	defaults := Card{
		FirstName: "Default",
		Phone:     SocialField{Value: "+33600000000", Enabled: true},
	}
	raw := map[string]any{
		"firstName": 42,
		"phone":     true,
		"email":     nil,
		"website":   (*SocialField)(nil),
		"bio":       []any{"a"},
	}

	got := Migrate(raw, defaults)
	if diff := cmp.Diff(defaults, got); diff != "" {
		t.Errorf("defaults should survive (-want +got):\n%s", diff)
	}
}

func TestMigrateMissingKeysTakeDefaults(t *testing.T) {
	defaults := Card{Title: "Engineer", Telegram: SocialField{Value: "@jean", Enabled: true}}
	got := Migrate(map[string]any{}, defaults)
	if diff := cmp.Diff(defaults, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got = Migrate(nil, defaults)
	if diff := cmp.Diff(defaults, got); diff != "" {
		t.Errorf("nil map mismatch (-want +got):\n%s", diff)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	inputs := []map[string]any{
		{},
		{"firstName": "Jean", "phone": "+33612345678"},
		{"phone": map[string]any{"value": "x"}, "email": "", "unknown": 1},
		{"whatsapp": map[string]any{"enabled": true}, "bio": 3.5, "telegram": "@jean"},
	}
	defaults := Default()

	for _, raw := range inputs {
		once := Migrate(raw, defaults)
		twice := Migrate(once.ToMap(), defaults)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("migrate not idempotent for %v (-once +twice):\n%s", raw, diff)
		}
	}
}

func TestDecodeLegacy(t *testing.T) {
	data := []byte(`{"firstName":"Jean","phone":"+33612345678","email":{"value":"j@example.com","enabled":true}}`)

	got, err := DecodeLegacy(data, Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FirstName != "Jean" || !got.Phone.Active() || !got.Email.Active() {
		t.Errorf("unexpected card %+v", got)
	}
}

func TestDecodeLegacyRoundTripsCurrentJSON(t *testing.T) {
	c := Card{
		FirstName: "Jean",
		LastName:  "Dupont",
		Phone:     SocialField{Value: "+33612345678", Enabled: true},
		Telegram:  SocialField{Value: "@jean", Enabled: false},
	}
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := DecodeLegacy(data, Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(c, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeLegacyMalformed(t *testing.T) {
	defaults := Card{FirstName: "Default"}
	got, err := DecodeLegacy([]byte(`{not json`), defaults)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if got != defaults {
		t.Errorf("expected defaults on error, got %+v", got)
	}
}
