package domain

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/validation"
	"github.com/auth-platform/libs/go/kernel/valueobject"
)

// e164Regex validates the E.164 international phone number format.
var e164Regex = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

var phoneRules = validation.Matches(e164Regex, "must be an E.164 phone number such as +14155552671")

// PhoneNumber represents a phone number in E.164 format.
type PhoneNumber struct {
	valueobject.Base[string]
}

// NewPhoneNumber creates a PhoneNumber. Separator characters (spaces,
// dashes, dots, parentheses) are stripped before validation.
func NewPhoneNumber(value string) (PhoneNumber, error) {
	base, err := valueobject.New("PhoneNumber", normalizePhone(value), phoneRules)
	if err != nil {
		return PhoneNumber{}, err
	}
	return PhoneNumber{base}, nil
}

// MustNewPhoneNumber creates a PhoneNumber, panicking on invalid input.
func MustNewPhoneNumber(value string) PhoneNumber {
	return errors.Must(NewPhoneNumber(value))
}

// normalizePhone keeps digits and a leading plus, dropping every
// formatting character.
func normalizePhone(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '+' {
			return r
		}
		return -1
	}, value)
}

// String returns the E.164 representation.
func (p PhoneNumber) String() string {
	return p.Value()
}

// CountryCode returns the leading country code digits, at most three.
func (p PhoneNumber) CountryCode() string {
	value := p.Value()
	if len(value) < 2 {
		return ""
	}
	digits := value[1:]
	if len(digits) > 3 {
		digits = digits[:3]
	}
	return digits
}

// UnmarshalJSON implements json.Unmarshaler. The incoming value goes
// through the same validation as NewPhoneNumber.
func (p *PhoneNumber) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.ArgumentInvalid("phone number must be a JSON string").WithCause(err)
	}
	phone, err := NewPhoneNumber(value)
	if err != nil {
		return err
	}
	*p = phone
	return nil
}
