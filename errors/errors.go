// Package errors provides typed domain errors with stable machine-readable
// codes, optional metadata and cause chaining.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/auth-platform/libs/go/kernel/functional"
)

// ErrorCode identifies an error variant. Codes are fixed at declaration
// time and are safe for programmatic branching; messages are not.
type ErrorCode string

// Error codes for the generic domain error family.
const (
	CodeArgumentNotProvided ErrorCode = "generic_argument_not_provided"
	CodeArgumentInvalid     ErrorCode = "generic_argument_invalid"
	CodeArgumentOutOfRange  ErrorCode = "generic_argument_out_of_range"
	CodeNotFound            ErrorCode = "generic_not_found"
	CodeConflict            ErrorCode = "generic_conflict"
	CodeInternal            ErrorCode = "generic_internal_server_error"
)

// SerializedError is the plain serialization shape of a DomainError.
// Field names and presence rules are contract: absent optionals are
// omitted, never emitted as null placeholders.
type SerializedError struct {
	Message  string         `json:"message"`
	Code     ErrorCode      `json:"code"`
	Stack    string         `json:"stack,omitempty"`
	Cause    string         `json:"cause,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// DomainError is the typed error value raised by domain construction and
// validation failures. It is immutable once constructed: the fluent
// With* methods return derived copies and never mutate the receiver.
type DomainError struct {
	code     ErrorCode
	message  string
	metadata map[string]any
	cause    error
	stack    string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the stable error code.
func (e *DomainError) Code() ErrorCode {
	return e.code
}

// Message returns the human-readable message, stored verbatim.
func (e *DomainError) Message() string {
	return e.message
}

// Metadata returns a copy of the attached metadata, nil when none.
func (e *DomainError) Metadata() map[string]any {
	if e.metadata == nil {
		return nil
	}
	cp := make(map[string]any, len(e.metadata))
	for k, v := range e.metadata {
		cp[k] = v
	}
	return cp
}

// MetadataValue looks up a single metadata entry.
func (e *DomainError) MetadataValue(key string) functional.Option[any] {
	if v, ok := e.metadata[key]; ok {
		return functional.Some(v)
	}
	return functional.None[any]()
}

// Cause returns the underlying cause, nil when none.
func (e *DomainError) Cause() error {
	return e.cause
}

// Stack returns the backtrace captured at construction. It is advisory
// only: not stable across runs or platforms, and excluded from equality.
func (e *DomainError) Stack() string {
	return e.stack
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is matches another DomainError by code only. Chained causes never
// change the reported code.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.code == t.code
	}
	return errors.Is(e.cause, target)
}

// WithMetadata returns a copy of the error with the entry added.
func (e *DomainError) WithMetadata(key string, value any) *DomainError {
	cp := e.clone()
	if cp.metadata == nil {
		cp.metadata = make(map[string]any, 1)
	}
	cp.metadata[key] = value
	return cp
}

// WithCause returns a copy of the error with cause attached.
func (e *DomainError) WithCause(cause error) *DomainError {
	cp := e.clone()
	cp.cause = cause
	return cp
}

// Serialize renders the error to its plain serialization shape. The
// cause, when present, is rendered to its textual form.
func (e *DomainError) Serialize() SerializedError {
	s := SerializedError{
		Message: e.message,
		Code:    e.code,
		Stack:   e.stack,
	}
	if e.cause != nil {
		s.Cause = e.cause.Error()
	}
	if len(e.metadata) > 0 {
		s.Metadata = e.Metadata()
	}
	return s
}

// MarshalJSON implements json.Marshaler via the serialized shape.
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Serialize())
}

func (e *DomainError) clone() *DomainError {
	cp := *e
	if e.metadata != nil {
		cp.metadata = make(map[string]any, len(e.metadata))
		for k, v := range e.metadata {
			cp.metadata[k] = v
		}
	}
	return &cp
}
