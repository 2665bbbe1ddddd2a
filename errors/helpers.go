package errors

import "errors"

// AsDomain returns the first DomainError in the chain, if any.
func AsDomain(err error) (*DomainError, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// AsType is a generic error type assertion. It returns the error as type
// T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// CodeOf extracts the error code from an error chain, defaulting to
// CodeInternal for foreign errors.
func CodeOf(err error) ErrorCode {
	if domainErr, ok := AsDomain(err); ok {
		return domainErr.code
	}
	return CodeInternal
}

// IsCode checks whether the error chain carries the given code.
func IsCode(err error, code ErrorCode) bool {
	if domainErr, ok := AsDomain(err); ok {
		return domainErr.code == code
	}
	return false
}

// IsArgumentNotProvided checks for the empty-argument variant.
func IsArgumentNotProvided(err error) bool {
	return IsCode(err, CodeArgumentNotProvided)
}

// IsArgumentInvalid checks for the invalid-argument variant.
func IsArgumentInvalid(err error) bool {
	return IsCode(err, CodeArgumentInvalid)
}

// IsArgumentOutOfRange checks for the out-of-range variant.
func IsArgumentOutOfRange(err error) bool {
	return IsCode(err, CodeArgumentOutOfRange)
}

// IsNotFound checks for the not-found variant.
func IsNotFound(err error) bool {
	return IsCode(err, CodeNotFound)
}

// IsConflict checks for the conflict variant.
func IsConflict(err error) bool {
	return IsCode(err, CodeConflict)
}

// IsInternal checks for the internal variant.
func IsInternal(err error) bool {
	return IsCode(err, CodeInternal)
}

// AllCodes returns all declared error codes for testing.
func AllCodes() []ErrorCode {
	return []ErrorCode{
		CodeArgumentNotProvided,
		CodeArgumentInvalid,
		CodeArgumentOutOfRange,
		CodeNotFound,
		CodeConflict,
		CodeInternal,
	}
}

// Must panics if err is not nil, otherwise returns value.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// RootCause traverses the error chain to find the root cause.
func RootCause(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

// Chain returns all errors in the chain, outermost first.
func Chain(err error) []error {
	var chain []error
	for err != nil {
		chain = append(chain, err)
		err = errors.Unwrap(err)
	}
	return chain
}
