// Package testutil provides rapid generators shared by the kernel's
// property-based tests.
package testutil

import (
	stderrors "errors"

	"pgregory.net/rapid"

	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/functional"
)

// EmptyValue generates values that are empty per the kernel emptiness
// rule: absent values, the empty string, the "undefined" literal, empty
// structures, and sequences of only-empty elements.
func EmptyValue() *rapid.Generator[any] {
	return rapid.OneOf(
		rapid.Just[any](nil),
		rapid.Just[any](""),
		rapid.Just[any]("undefined"),
		rapid.Just[any]((*string)(nil)),
		rapid.Just[any]((map[string]int)(nil)),
		rapid.Just[any](([]string)(nil)),
		rapid.Just[any](map[string]any{}),
		rapid.Just[any](struct{}{}),
		rapid.Just[any](functional.None[string]()),
		emptySequence(),
	)
}

// emptySequence generates sequences whose elements are all empty.
func emptySequence() *rapid.Generator[any] {
	return rapid.Custom(func(t *rapid.T) any {
		n := rapid.IntRange(0, 8).Draw(t, "len")
		out := make([]any, n)
		for i := range out {
			out[i] = rapid.SampledFrom([]any{"", map[string]string{}, nil}).Draw(t, "elem")
		}
		return out
	})
}

// NonEmptyString generates strings that are non-empty per the kernel
// rule: never zero-length and never the "undefined" literal.
func NonEmptyString() *rapid.Generator[string] {
	return rapid.String().Filter(func(s string) bool {
		return s != "" && s != "undefined"
	})
}

// ErrorCode generates one of the declared kernel error codes.
func ErrorCode() *rapid.Generator[errors.ErrorCode] {
	return rapid.SampledFrom(errors.AllCodes())
}

// DomainError generates kernel errors across all declared codes, with
// optional metadata and cause.
func DomainError() *rapid.Generator[*errors.DomainError] {
	return rapid.Custom(func(t *rapid.T) *errors.DomainError {
		err := errors.New(ErrorCode().Draw(t, "code"), rapid.String().Draw(t, "message"))
		if rapid.Bool().Draw(t, "withMetadata") {
			key := rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "key")
			err = err.WithMetadata(key, metadataValue().Draw(t, "value"))
		}
		if rapid.Bool().Draw(t, "withCause") {
			err = err.WithCause(stderrors.New(rapid.String().Draw(t, "cause")))
		}
		return err
	})
}

// Metadata generates string-keyed metadata payloads.
func Metadata() *rapid.Generator[map[string]any] {
	return rapid.MapOf(rapid.StringMatching(`[a-z_]{1,12}`), metadataValue())
}

// metadataValue stays within the integer range JSON numbers represent
// exactly, so serialized metadata survives decode/encode cycles intact.
func metadataValue() *rapid.Generator[any] {
	return rapid.IntRange(-1_000_000_000, 1_000_000_000).AsAny()
}

// OptionOf generates Options mixing Some values from elem with None.
func OptionOf[T any](elem *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		if rapid.Bool().Draw(t, "some") {
			return functional.Some(elem.Draw(t, "value"))
		}
		return functional.None[T]()
	})
}
