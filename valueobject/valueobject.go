// Package valueobject provides the generic immutable carrier underlying
// domain primitives.
//
// A value object wraps either a primitive value (strings, booleans,
// numbers, time.Time) or a structured value, decided once at
// construction. Construction validates the value: empty input is
// rejected with the empty-argument error code, then an optional
// implementer-supplied hook runs. Once constructed a value object is
// immutable; concurrent readers need no synchronization.
//
// Concrete types embed Base and supply their behavior at construction:
//
//	type Email struct {
//	    valueobject.Base[string]
//	}
//
//	func NewEmail(value string) (Email, error) {
//	    base, err := valueobject.New("Email", value, validateEmail)
//	    if err != nil {
//	        return Email{}, err
//	    }
//	    return Email{base}, nil
//	}
package valueobject

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/predicate"
)

// Any is the non-generic capability surface shared by all value objects.
// Only types embedding Base satisfy it.
type Any interface {
	// TypeName returns the type tag supplied at construction.
	TypeName() string

	isValueObject()
}

// ValueObject is the generic contract: the capability surface plus typed
// access and structural equality.
type ValueObject[T any] interface {
	Any

	// Value projects the stored representation back to T.
	Value() T

	// Equals reports structural equality with another value object.
	Equals(other ValueObject[T]) bool
}

// Base is the concrete immutable carrier. The zero value is the
// "under construction" state; New is the only way to obtain a
// constructed one.
type Base[T any] struct {
	name  string
	kind  storageKind
	value T
}

// New constructs a value object carrying value, tagged with the concrete
// type name. It fails fast with the empty-argument code when value is
// empty, then runs the implementer-supplied validate hook (nil is
// allowed), whose error propagates to the caller untouched. Top-level
// maps and slices are copied on the way in; deeper sharing is by
// convention.
func New[T any](name string, value T, validate func(T) error) (Base[T], error) {
	if strings.TrimSpace(name) == "" {
		return Base[T]{}, errors.ArgumentNotProvided("value object type name cannot be empty")
	}
	if predicate.IsEmpty(value) {
		return Base[T]{}, errors.ArgumentNotProvided(name + " cannot be empty")
	}
	if validate != nil {
		if err := validate(value); err != nil {
			return Base[T]{}, err
		}
	}
	kind := kindStructured
	if predicate.IsPrimitive(value) {
		kind = kindPrimitive
	}
	return Base[T]{name: name, kind: kind, value: copyShared(value)}, nil
}

// MustNew constructs a value object, panicking on invalid input.
func MustNew[T any](name string, value T, validate func(T) error) Base[T] {
	return errors.Must(New(name, value, validate))
}

// Is reports whether candidate is a value object. Nil and typed-nil
// candidates are not.
func Is(candidate any) bool {
	if candidate == nil {
		return false
	}
	if rv := reflect.ValueOf(candidate); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return false
	}
	_, ok := candidate.(Any)
	return ok
}

// Value returns the stored value. Top-level maps and slices are copied
// on the way out to preserve immutability.
func (b Base[T]) Value() T {
	return copyShared(b.value)
}

// TypeName returns the type tag supplied at construction.
func (b Base[T]) TypeName() string {
	return b.name
}

// IsZero reports whether the carrier is the unconstructed zero value.
func (b Base[T]) IsZero() bool {
	return b.kind == kindUnset
}

// Equals reports structural equality: same type tag and deeply equal
// values, with NaN comparing equal to itself so equality stays
// reflexive for every constructed instance. It returns false for nil or
// typed-nil and never panics. An unconstructed zero carrier equals
// nothing.
func (b Base[T]) Equals(other ValueObject[T]) bool {
	if b.kind == kindUnset || other == nil {
		return false
	}
	if rv := reflect.ValueOf(other); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return false
	}
	if b.name != other.TypeName() {
		return false
	}
	return structurallyEqual(b.value, other.Value())
}

// String returns "<TypeName> [<value>]": the primitive text form for
// primitive-wrapped objects, a JSON rendering for structured ones. The
// format is a debugging aid, not a parseable contract.
func (b Base[T]) String() string {
	return b.name + " [" + b.renderValue() + "]"
}

// MarshalJSON emits the unwrapped value. The carrier has no
// UnmarshalJSON; concrete types deserialize through their constructors.
func (b Base[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.value)
}

func (b Base[T]) isValueObject() {}

var _ ValueObject[string] = Base[string]{}

func (b Base[T]) renderValue() string {
	if b.kind == kindPrimitive {
		switch v := any(b.value).(type) {
		case string:
			return v
		case time.Time:
			return v.Format(time.RFC3339Nano)
		default:
			return fmt.Sprintf("%v", b.value)
		}
	}
	data, err := json.Marshal(b.value)
	if err != nil {
		return fmt.Sprintf("%+v", b.value)
	}
	return string(data)
}
