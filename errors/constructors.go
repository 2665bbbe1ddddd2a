package errors

import "fmt"

// New creates a DomainError with the given code and message. The message
// is stored verbatim. A best-effort backtrace is captured at the call
// site; construction is reported to the installed Recorder.
func New(code ErrorCode, message string) *DomainError {
	e := &DomainError{
		code:    code,
		message: message,
		stack:   captureStack(1),
	}
	recorder.RecordError(code)
	return e
}

// ArgumentNotProvided creates an empty-argument error. It is the variant
// raised when a value object receives empty input.
func ArgumentNotProvided(message string) *DomainError {
	return New(CodeArgumentNotProvided, message)
}

// ArgumentInvalid creates an invalid-argument error.
func ArgumentInvalid(message string) *DomainError {
	return New(CodeArgumentInvalid, message)
}

// ArgumentOutOfRange creates an out-of-range error carrying the violated
// bounds as metadata.
func ArgumentOutOfRange(message string, min, max any) *DomainError {
	return New(CodeArgumentOutOfRange, message).
		WithMetadata("min", min).
		WithMetadata("max", max)
}

// NotFound creates a not-found error.
func NotFound(message string) *DomainError {
	return New(CodeNotFound, message)
}

// Conflict creates a conflict error.
func Conflict(message string) *DomainError {
	return New(CodeConflict, message)
}

// Internal creates an internal error for unexpected failures.
func Internal(message string) *DomainError {
	return New(CodeInternal, message)
}

// Wrap wraps an error with additional context. Wrapping a DomainError
// preserves its code and metadata; any other error becomes the cause of
// an internal error.
func Wrap(err error, message string) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := AsDomain(err); ok {
		return New(domainErr.code, message).
			withMetadataMap(domainErr.metadata).
			WithCause(err)
	}
	return Internal(message).WithCause(err)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...any) *DomainError {
	return Wrap(err, fmt.Sprintf(format, args...))
}

func (e *DomainError) withMetadataMap(metadata map[string]any) *DomainError {
	if len(metadata) == 0 {
		return e
	}
	cp := e.clone()
	if cp.metadata == nil {
		cp.metadata = make(map[string]any, len(metadata))
	}
	for k, v := range metadata {
		cp.metadata[k] = v
	}
	return cp
}
