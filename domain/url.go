package domain

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/valueobject"
)

// AllowedSchemes defines the URL schemes accepted at construction.
var AllowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
	"ftps":  true,
}

// URL represents a validated absolute URL with an allowed scheme.
type URL struct {
	valueobject.Base[string]
}

// NewURL creates a URL from a string. The input is trimmed; scheme and
// host must be present.
func NewURL(value string) (URL, error) {
	base, err := valueobject.New("URL", strings.TrimSpace(value), validateURL)
	if err != nil {
		return URL{}, err
	}
	return URL{base}, nil
}

// MustNewURL creates a URL, panicking on invalid input.
func MustNewURL(value string) URL {
	return errors.Must(NewURL(value))
}

func validateURL(value string) error {
	parsed, err := url.Parse(value)
	if err != nil {
		return errors.ArgumentInvalid("invalid URL: " + value).WithCause(err)
	}
	if parsed.Scheme == "" {
		return errors.ArgumentInvalid("URL must include a scheme: " + value)
	}
	if !AllowedSchemes[strings.ToLower(parsed.Scheme)] {
		return errors.ArgumentInvalid("URL scheme not allowed: " + parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.ArgumentInvalid("URL must include a host: " + value)
	}
	return nil
}

// String returns the URL as stored.
func (u URL) String() string {
	return u.Value()
}

// parsed re-parses the stored text. Construction guarantees it parses.
func (u URL) parsed() *url.URL {
	parsed, err := url.Parse(u.Value())
	if err != nil {
		return &url.URL{}
	}
	return parsed
}

// Scheme returns the lower-cased URL scheme.
func (u URL) Scheme() string {
	return strings.ToLower(u.parsed().Scheme)
}

// Host returns the URL host, including any port.
func (u URL) Host() string {
	return u.parsed().Host
}

// Path returns the URL path component.
func (u URL) Path() string {
	return u.parsed().Path
}

// Query returns the parsed query parameters.
func (u URL) Query() url.Values {
	return u.parsed().Query()
}

// IsSecure reports whether the scheme is https or ftps.
func (u URL) IsSecure() bool {
	scheme := u.Scheme()
	return scheme == "https" || scheme == "ftps"
}

// UnmarshalJSON implements json.Unmarshaler. The incoming value goes
// through the same validation as NewURL.
func (u *URL) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.ArgumentInvalid("URL must be a JSON string").WithCause(err)
	}
	parsed, err := NewURL(value)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
