package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/auth-platform/libs/go/kernel/errors"
	"pgregory.net/rapid"
)

// Property 1: Every variant constructor yields its declared code and
// stores the message verbatim.
func TestVariantConstructorsYieldDeclaredCodes(t *testing.T) {
	constructors := map[errors.ErrorCode]func(string) *errors.DomainError{
		errors.CodeArgumentNotProvided: errors.ArgumentNotProvided,
		errors.CodeArgumentInvalid:     errors.ArgumentInvalid,
		errors.CodeNotFound:            errors.NotFound,
		errors.CodeConflict:            errors.Conflict,
		errors.CodeInternal:            errors.Internal,
	}

	rapid.Check(t, func(t *rapid.T) {
		message := rapid.String().Draw(t, "message")
		for code, construct := range constructors {
			err := construct(message)
			if err.Code() != code {
				t.Fatalf("constructor for %s produced %s", code, err.Code())
			}
			if err.Message() != message {
				t.Fatalf("message not stored verbatim: %q != %q", err.Message(), message)
			}
		}

		rangeErr := errors.ArgumentOutOfRange(message, 0, 10)
		if rangeErr.Code() != errors.CodeArgumentOutOfRange {
			t.Fatalf("out-of-range constructor produced %s", rangeErr.Code())
		}
	})
}

// Property 2: Declared codes are unique.
func TestAllCodesHaveNoDuplicates(t *testing.T) {
	seen := make(map[errors.ErrorCode]bool)
	for _, code := range errors.AllCodes() {
		if seen[code] {
			t.Fatalf("duplicate error code: %s", code)
		}
		seen[code] = true
	}
}

// Property 3: Fluent derivation never mutates the receiver.
func TestDerivationImmutability(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		message := rapid.String().Draw(t, "message")
		key := rapid.StringMatching(`[a-z]{1,10}`).Draw(t, "key")
		value := rapid.Int().Draw(t, "value")

		base := errors.ArgumentInvalid(message)
		before := base.Serialize()

		base.WithMetadata(key, value)
		base.WithCause(stderrors.New("cause"))

		after := base.Serialize()
		if before.Message != after.Message || before.Code != after.Code ||
			before.Cause != after.Cause || len(before.Metadata) != len(after.Metadata) {
			t.Fatalf("receiver mutated: %+v != %+v", before, after)
		}
	})
}

// Property 4: Wrapping never changes the reported code.
func TestWrappingPreservesCode(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := rapid.SampledFrom(errors.AllCodes()).Draw(t, "code")
		message := rapid.String().Draw(t, "message")
		context := rapid.String().Draw(t, "context")

		inner := errors.New(code, message)
		wrapped := errors.Wrap(inner, context)

		if errors.CodeOf(wrapped) != code {
			t.Fatalf("wrap changed code: %s -> %s", code, errors.CodeOf(wrapped))
		}
		if wrapped.Message() != context {
			t.Fatalf("wrap message not stored verbatim")
		}
	})
}

// Property 5: Serialization is pure: repeated calls yield identical output.
func TestSerializeIdempotence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		message := rapid.String().Draw(t, "message")
		withCause := rapid.Bool().Draw(t, "withCause")

		err := errors.Conflict(message)
		if withCause {
			err = err.WithCause(stderrors.New("underlying"))
		}

		first := err.Serialize()
		second := err.Serialize()
		if first.Message != second.Message || first.Code != second.Code ||
			first.Stack != second.Stack || first.Cause != second.Cause {
			t.Fatalf("serialization not idempotent: %+v != %+v", first, second)
		}
	})
}
