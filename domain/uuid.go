package domain

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/valueobject"
)

const nilUUIDValue = "00000000-0000-0000-0000-000000000000"

// UUID represents an RFC 4122 identifier in canonical textual form.
type UUID struct {
	valueobject.Base[string]
}

// NewUUID generates a random version 4 UUID.
func NewUUID() UUID {
	return UUID{valueobject.MustNew("UUID", uuid.NewString(), validateUUID)}
}

// ParseUUID parses a UUID string. Input is trimmed and lower-cased so
// the stored form is always canonical.
func ParseUUID(value string) (UUID, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	base, err := valueobject.New("UUID", normalized, validateUUID)
	if err != nil {
		return UUID{}, err
	}
	return UUID{base}, nil
}

// MustParseUUID parses a UUID string, panicking on invalid input.
func MustParseUUID(value string) UUID {
	return errors.Must(ParseUUID(value))
}

// NilUUID returns the nil UUID (all zeros).
func NilUUID() UUID {
	return MustParseUUID(nilUUIDValue)
}

func validateUUID(value string) error {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return errors.ArgumentInvalid("invalid UUID format: " + value).WithCause(err)
	}
	if parsed.String() != value {
		return errors.ArgumentInvalid("UUID must be in canonical form: " + value)
	}
	return nil
}

// String returns the canonical textual form.
func (u UUID) String() string {
	return u.Value()
}

// IsNil reports whether this is the nil UUID or an unconstructed value.
func (u UUID) IsNil() bool {
	return u.IsZero() || u.Value() == nilUUIDValue
}

// Bytes returns the identifier as its 16 raw bytes.
func (u UUID) Bytes() [16]byte {
	if u.IsZero() {
		return [16]byte{}
	}
	return [16]byte(uuid.MustParse(u.Value()))
}

// UnmarshalJSON implements json.Unmarshaler. The incoming value goes
// through the same validation as ParseUUID.
func (u *UUID) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.ArgumentInvalid("UUID must be a JSON string").WithCause(err)
	}
	parsed, err := ParseUUID(value)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
