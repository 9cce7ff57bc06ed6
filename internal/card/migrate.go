package card

import (
	"encoding/json"
	"fmt"
)

// Migrate converts an arbitrarily shaped decoded record into a Card.
//
// Keys of raw that name a Card attribute overwrite the matching value of
// defaults; every other key is dropped. A bare string stored where a
// SocialField is expected becomes {Value: s, Enabled: s != ""}. Values whose
// type cannot occupy the target slot leave the default untouched, so Migrate
// never fails.
func Migrate(raw map[string]any, defaults Card) Card {
	out := defaults
	for _, f := range IdentityFields {
		v, ok := raw[f.Key()]
		if !ok {
			continue
		}
		if s, ok := v.(string); ok {
			out.SetIdentity(f, s)
		}
	}
	for _, id := range Fields {
		v, ok := raw[id.Key()]
		if !ok {
			continue
		}
		if f, ok := migrateField(v); ok {
			out.SetField(id, f)
		}
	}
	return out
}

func migrateField(v any) (SocialField, bool) {
	switch t := v.(type) {
	case string:
		return SocialField{Value: t, Enabled: t != ""}, true
	case SocialField:
		return t, true
	case *SocialField:
		if t == nil {
			return SocialField{}, false
		}
		return *t, true
	case map[string]any:
		var f SocialField
		if s, ok := t["value"].(string); ok {
			f.Value = s
		}
		if b, ok := t["enabled"].(bool); ok {
			f.Enabled = b
		}
		return f, true
	}
	return SocialField{}, false
}

// DecodeLegacy decodes a cached JSON document of any past shape and migrates it
// onto defaults. The only error is malformed JSON.
func DecodeLegacy(data []byte, defaults Card) (Card, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return defaults, fmt.Errorf("decode card data: %w", err)
	}
	return Migrate(raw, defaults), nil
}
