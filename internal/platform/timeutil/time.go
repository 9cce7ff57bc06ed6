// Package timeutil fixes the timestamp formats of API payloads and logs.
package timeutil

import (
	"fmt"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
)

const (
	// RFC3339Millis is the API timestamp format: UTC with milliseconds.
	RFC3339Millis = "2006-01-02T15:04:05.000Z"
	// RFC3339Micros is the log timestamp format.
	RFC3339Micros = "2006-01-02T15:04:05.000000Z"
)

// Time is a timestamp that encodes as an RFC3339Millis string in both JSON
// and CBOR, e.g. "2024-01-15T10:30:00.000Z".
//
// Decoding accepts any RFC 3339 variant. A null value leaves t unchanged.
type Time struct {
	time.Time
}

// NewTime wraps t.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// Schema describes Time as a date-time string in the OpenAPI document.
func (Time) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{Type: huma.TypeString, Format: "date-time", Examples: []any{"2024-01-15T10:30:00.000Z"}}
}

func (t Time) String() string {
	return t.UTC().Format(RFC3339Millis)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timeutil: expected JSON string, got %s", data)
	}
	return t.parse(s)
}

// MarshalCBOR writes a text string rather than the binary form time.Time
// would otherwise promote.
func (t Time) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(t.String())
}

func (t *Time) UnmarshalCBOR(data []byte) error {
	var s *string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timeutil: %w", err)
	}
	if s == nil {
		return nil
	}
	return t.parse(*s)
}

func (t *Time) parse(s string) error {
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("timeutil: %w", err)
	}
	t.Time = parsed
	return nil
}
