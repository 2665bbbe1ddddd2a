package domain

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/validation"
	"github.com/auth-platform/libs/go/kernel/valueobject"
)

// maxEmailLength is the maximum total length per RFC 5321.
const maxEmailLength = 254

// emailRegex is a simplified RFC 5322 compliant pattern.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

var emailRules = validation.And(
	validation.MaxLength(maxEmailLength),
	validation.Matches(emailRegex, "must be a valid email address"),
)

// Email represents a validated email address, normalized to lower case.
type Email struct {
	valueobject.Base[string]
}

// NewEmail creates an Email from a string. Input is trimmed and
// lower-cased before validation.
func NewEmail(value string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	base, err := valueobject.New("Email", normalized, emailRules)
	if err != nil {
		return Email{}, err
	}
	return Email{base}, nil
}

// MustNewEmail creates an Email, panicking on invalid input.
func MustNewEmail(value string) Email {
	return errors.Must(NewEmail(value))
}

// String returns the normalized address.
func (e Email) String() string {
	return e.Value()
}

// LocalPart returns the portion before the @ sign.
func (e Email) LocalPart() string {
	value := e.Value()
	if at := strings.IndexByte(value, '@'); at >= 0 {
		return value[:at]
	}
	return ""
}

// Domain returns the portion after the @ sign.
func (e Email) Domain() string {
	value := e.Value()
	if at := strings.IndexByte(value, '@'); at >= 0 {
		return value[at+1:]
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler.
func (e Email) MarshalText() ([]byte, error) {
	return []byte(e.Value()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The incoming text
// goes through the same validation as NewEmail.
func (e *Email) UnmarshalText(data []byte) error {
	email, err := NewEmail(string(data))
	if err != nil {
		return err
	}
	*e = email
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. The incoming value goes
// through the same validation as NewEmail.
func (e *Email) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.ArgumentInvalid("email must be a JSON string").WithCause(err)
	}
	email, err := NewEmail(value)
	if err != nil {
		return err
	}
	*e = email
	return nil
}
