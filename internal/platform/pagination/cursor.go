package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidCursor indicates the cursor could not be decoded or belongs to a
// different listing.
var ErrInvalidCursor = errors.New("invalid cursor format")

// Cursor is an opaque pagination position: the listing it belongs to and the
// id of the last item of the previous page.
type Cursor struct {
	Type  string
	Value string
}

// Encode returns a URL-safe Base64 representation.
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Type + ":" + c.Value))
}

// DecodeCursor parses a cursor string. The empty string is the first page.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	typ, value, ok := strings.Cut(string(b), ":")
	if !ok {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Type: typ, Value: value}, nil
}

// DecodeCursorFor parses s and rejects cursors issued for another listing.
func DecodeCursorFor(s, cursorType string) (Cursor, error) {
	c, err := DecodeCursor(s)
	if err != nil {
		return Cursor{}, err
	}
	if s != "" && c.Type != cursorType {
		return Cursor{}, ErrInvalidCursor
	}
	return c, nil
}
