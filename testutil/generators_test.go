package testutil_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/predicate"
	"github.com/auth-platform/libs/go/kernel/testutil"
)

func TestEmptyValueGeneratesOnlyEmptyInputs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := testutil.EmptyValue().Draw(t, "empty")
		if !predicate.IsEmpty(value) {
			t.Fatalf("generated value %#v is not empty", value)
		}
	})
}

func TestNonEmptyStringIsNeverEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := testutil.NonEmptyString().Draw(t, "s")
		if predicate.IsEmpty(s) {
			t.Fatalf("generated string %q is empty", s)
		}
	})
}

func TestDomainErrorCarriesDeclaredCode(t *testing.T) {
	declared := make(map[errors.ErrorCode]bool)
	for _, code := range errors.AllCodes() {
		declared[code] = true
	}

	rapid.Check(t, func(t *rapid.T) {
		err := testutil.DomainError().Draw(t, "err")
		if !declared[err.Code()] {
			t.Fatalf("generated error carries undeclared code %s", err.Code())
		}
	})
}

func TestOptionOfCoversBothStates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		opt := testutil.OptionOf(rapid.Int()).Draw(t, "opt")
		if opt.IsSome() == opt.IsNone() {
			t.Fatalf("option must be exactly one of Some or None")
		}
	})
}
