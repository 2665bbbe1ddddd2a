package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/predicate"
	"github.com/auth-platform/libs/go/kernel/valueobject"
)

// durationRegex matches the extended single-unit syntax, adding day and
// week suffixes on top of Go's native units.
var durationRegex = regexp.MustCompile(`^(\d+)(ns|us|µs|ms|s|m|h|d|w)$`)

// Duration wraps a time.Duration with extended parsing and rendering.
type Duration struct {
	valueobject.Base[time.Duration]
}

// NewDuration creates a Duration from a time.Duration. Every duration
// is valid, including zero.
func NewDuration(d time.Duration) Duration {
	return Duration{valueobject.MustNew("Duration", d, nil)}
}

// ParseDuration parses Go duration syntax ("1h30m") plus day and week
// suffixes ("2d", "1w").
func ParseDuration(value string) (Duration, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if predicate.IsEmpty(trimmed) {
		return Duration{}, errors.ArgumentNotProvided("duration cannot be empty")
	}
	if d, err := time.ParseDuration(trimmed); err == nil {
		return NewDuration(d), nil
	}
	match := durationRegex.FindStringSubmatch(trimmed)
	if match == nil {
		return Duration{}, errors.ArgumentInvalid("invalid duration format: " + value)
	}
	num, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return Duration{}, errors.ArgumentInvalid("invalid duration format: " + value).WithCause(err)
	}
	switch match[2] {
	case "d":
		return NewDuration(time.Duration(num) * 24 * time.Hour), nil
	case "w":
		return NewDuration(time.Duration(num) * 7 * 24 * time.Hour), nil
	}
	return Duration{}, errors.ArgumentInvalid("invalid duration format: " + value)
}

// MustParseDuration parses a duration string, panicking on invalid
// input.
func MustParseDuration(value string) Duration {
	return errors.Must(ParseDuration(value))
}

// Seconds creates a Duration of n seconds.
func Seconds(n int64) Duration {
	return NewDuration(time.Duration(n) * time.Second)
}

// Minutes creates a Duration of n minutes.
func Minutes(n int64) Duration {
	return NewDuration(time.Duration(n) * time.Minute)
}

// Hours creates a Duration of n hours.
func Hours(n int64) Duration {
	return NewDuration(time.Duration(n) * time.Hour)
}

// Days creates a Duration of n days.
func Days(n int64) Duration {
	return NewDuration(time.Duration(n) * 24 * time.Hour)
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return d.Value()
}

// Milliseconds returns the duration as whole milliseconds.
func (d Duration) Milliseconds() int64 {
	return d.Value().Milliseconds()
}

// IsPositive reports whether the duration is greater than zero.
func (d Duration) IsPositive() bool {
	return d.Value() > 0
}

// IsNegative reports whether the duration is less than zero.
func (d Duration) IsNegative() bool {
	return d.Value() < 0
}

// Add returns the sum of two durations.
func (d Duration) Add(other Duration) Duration {
	return NewDuration(d.Value() + other.Value())
}

// Multiply returns the duration scaled by an integer factor.
func (d Duration) Multiply(factor int64) Duration {
	return NewDuration(d.Value() * time.Duration(factor))
}

// String returns the Go representation, such as "1h30m0s".
func (d Duration) String() string {
	return d.Value().String()
}

// HumanReadable renders the duration in the largest sensible unit,
// such as "2 days" or "3 hours".
func (d Duration) HumanReadable() string {
	value := d.Value()
	switch {
	case value >= 7*24*time.Hour:
		return pluralize(int64(value/(7*24*time.Hour)), "week")
	case value >= 24*time.Hour:
		return pluralize(int64(value/(24*time.Hour)), "day")
	case value >= time.Hour:
		return pluralize(int64(value/time.Hour), "hour")
	case value >= time.Minute:
		return pluralize(int64(value/time.Minute), "minute")
	case value >= time.Second:
		return pluralize(int64(value/time.Second), "second")
	default:
		return value.String()
	}
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// MarshalJSON implements json.Marshaler, emitting the Go string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. The incoming value goes
// through the same parsing as ParseDuration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.ArgumentInvalid("duration must be a JSON string").WithCause(err)
	}
	parsed, err := ParseDuration(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
