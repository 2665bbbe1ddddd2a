package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/predicate"
	"github.com/auth-platform/libs/go/kernel/valueobject"
)

// timeFormats are the layouts accepted by ParseTimestamp, tried in order.
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp represents an instant in time, normalized to UTC.
type Timestamp struct {
	valueobject.Base[time.Time]
}

// Now returns the current instant as a Timestamp.
func Now() Timestamp {
	return NewTimestamp(time.Now())
}

// NewTimestamp creates a Timestamp from a time.Time, normalizing to
// UTC. Every instant is valid, including the zero time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{valueobject.MustNew("Timestamp", t.UTC(), nil)}
}

// ParseTimestamp parses an ISO 8601 style string into a Timestamp.
func ParseTimestamp(value string) (Timestamp, error) {
	trimmed := strings.TrimSpace(value)
	if predicate.IsEmpty(trimmed) {
		return Timestamp{}, errors.ArgumentNotProvided("timestamp cannot be empty")
	}
	for _, format := range timeFormats {
		if t, err := time.Parse(format, trimmed); err == nil {
			return NewTimestamp(t), nil
		}
	}
	return Timestamp{}, errors.ArgumentInvalid("invalid timestamp format: " + value)
}

// MustParseTimestamp parses a timestamp string, panicking on invalid
// input.
func MustParseTimestamp(value string) Timestamp {
	return errors.Must(ParseTimestamp(value))
}

// FromUnix creates a Timestamp from seconds since the Unix epoch.
func FromUnix(seconds int64) Timestamp {
	return NewTimestamp(time.Unix(seconds, 0))
}

// FromUnixMilli creates a Timestamp from milliseconds since the Unix
// epoch.
func FromUnixMilli(millis int64) Timestamp {
	return NewTimestamp(time.UnixMilli(millis))
}

// Time returns the underlying time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return t.Value()
}

// Unix returns seconds since the Unix epoch.
func (t Timestamp) Unix() int64 {
	return t.Value().Unix()
}

// UnixMilli returns milliseconds since the Unix epoch.
func (t Timestamp) UnixMilli() int64 {
	return t.Value().UnixMilli()
}

// String returns the RFC 3339 representation.
func (t Timestamp) String() string {
	return t.Value().Format(time.RFC3339)
}

// Format renders the instant with the given layout.
func (t Timestamp) Format(layout string) string {
	return t.Value().Format(layout)
}

// Before reports whether t is earlier than other.
func (t Timestamp) Before(other Timestamp) bool {
	return t.Value().Before(other.Value())
}

// After reports whether t is later than other.
func (t Timestamp) After(other Timestamp) bool {
	return t.Value().After(other.Value())
}

// Add returns the timestamp shifted by d.
func (t Timestamp) Add(d time.Duration) Timestamp {
	return NewTimestamp(t.Value().Add(d))
}

// Sub returns the duration between two timestamps.
func (t Timestamp) Sub(other Timestamp) time.Duration {
	return t.Value().Sub(other.Value())
}

// UnmarshalJSON implements json.Unmarshaler. The incoming value goes
// through the same parsing as ParseTimestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.ArgumentInvalid("timestamp must be a JSON string").WithCause(err)
	}
	parsed, err := ParseTimestamp(value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
