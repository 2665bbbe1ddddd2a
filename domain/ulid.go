package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/valueobject"
)

// ULID represents a Universally Unique Lexicographically Sortable
// Identifier in its canonical 26-character Crockford Base32 form.
type ULID struct {
	valueobject.Base[string]
}

// NewULID generates a ULID for the current instant. Identifiers minted
// within the same millisecond are monotonically increasing.
func NewULID() ULID {
	return ULID{valueobject.MustNew("ULID", ulid.Make().String(), validateULID)}
}

// NewULIDWithTime generates a ULID carrying the given timestamp.
func NewULIDWithTime(t time.Time) ULID {
	id := ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy())
	return ULID{valueobject.MustNew("ULID", id.String(), validateULID)}
}

// ParseULID parses a ULID string. Input is trimmed and upper-cased so
// the stored form is always canonical.
func ParseULID(value string) (ULID, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	base, err := valueobject.New("ULID", normalized, validateULID)
	if err != nil {
		return ULID{}, err
	}
	return ULID{base}, nil
}

// MustParseULID parses a ULID string, panicking on invalid input.
func MustParseULID(value string) ULID {
	return errors.Must(ParseULID(value))
}

func validateULID(value string) error {
	if _, err := ulid.ParseStrict(value); err != nil {
		return errors.ArgumentInvalid("invalid ULID: " + value).WithCause(err)
	}
	return nil
}

// String returns the canonical textual form.
func (u ULID) String() string {
	return u.Value()
}

// Time returns the timestamp encoded in the identifier.
func (u ULID) Time() time.Time {
	if u.IsZero() {
		return time.Time{}
	}
	parsed, err := ulid.ParseStrict(u.Value())
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(parsed.Time()).UTC()
}

// Compare orders two identifiers lexicographically, which is also
// chronological order of their embedded timestamps.
func (u ULID) Compare(other ULID) int {
	return strings.Compare(u.Value(), other.Value())
}

// UnmarshalJSON implements json.Unmarshaler. The incoming value goes
// through the same validation as ParseULID.
func (u *ULID) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.ArgumentInvalid("ULID must be a JSON string").WithCause(err)
	}
	parsed, err := ParseULID(value)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
