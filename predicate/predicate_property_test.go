package predicate_test

import (
	"testing"

	"github.com/auth-platform/libs/go/kernel/predicate"
	"pgregory.net/rapid"
)

// Property 1: Numbers and booleans are never empty.
func TestNumbersAndBooleansNeverEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		if predicate.IsEmpty(rapid.Int().Draw(t, "int")) {
			t.Fatalf("int must never be empty")
		}
		if predicate.IsEmpty(rapid.Float64().Draw(t, "float")) {
			t.Fatalf("float must never be empty")
		}
		if predicate.IsEmpty(rapid.Bool().Draw(t, "bool")) {
			t.Fatalf("bool must never be empty")
		}
	})
}

// Property 2: A string is empty exactly when it has zero length or is the
// literal "undefined".
func TestStringEmptinessRule(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		want := len(s) == 0 || s == "undefined"
		if predicate.IsEmpty(s) != want {
			t.Fatalf("IsEmpty(%q) = %v, want %v", s, predicate.IsEmpty(s), want)
		}
	})
}

// Property 3: A slice of empty elements is empty; adding a single
// non-empty element makes it non-empty regardless of position.
func TestSliceEmptinessRecursion(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(t, "n")
		empties := make([]any, n)
		for i := range empties {
			empties[i] = map[string]any{}
		}
		if !predicate.IsEmpty(empties) {
			t.Fatalf("slice of %d empty elements must be empty", n)
		}

		if n == 0 {
			return
		}
		pos := rapid.IntRange(0, n-1).Draw(t, "pos")
		empties[pos] = rapid.IntRange(1, 100).Draw(t, "value")
		if predicate.IsEmpty(empties) {
			t.Fatalf("slice with non-empty element at %d must not be empty", pos)
		}
	})
}

// Property 4: The helpers are total: no generated input may panic them.
func TestPredicatesNeverPanic(t *testing.T) {
	gen := rapid.OneOf(
		rapid.String().AsAny(),
		rapid.Int().AsAny(),
		rapid.Float64().AsAny(),
		rapid.Bool().AsAny(),
		rapid.SliceOf(rapid.String()).AsAny(),
		rapid.MapOf(rapid.String(), rapid.Int()).AsAny(),
		rapid.Just[any](nil),
		rapid.Ptr(rapid.String(), true).AsAny(),
	)
	rapid.Check(t, func(t *rapid.T) {
		value := gen.Draw(t, "value")
		// Totality: calls must return without panicking.
		predicate.IsNullish(value)
		predicate.IsEmpty(value)
		predicate.IsPrimitive(value)
	})
}

// Property 5: Every nullish value is empty and primitive.
func TestNullishImpliesEmptyAndPrimitive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.OneOf(
			rapid.Just[any](nil),
			rapid.Just[any]("undefined"),
			rapid.Just[any]((*int)(nil)),
			rapid.Just[any]((map[string]int)(nil)),
			rapid.Just[any](([]string)(nil)),
		).Draw(t, "nullish")

		if !predicate.IsNullish(value) {
			t.Fatalf("expected %#v to be nullish", value)
		}
		if !predicate.IsEmpty(value) {
			t.Fatalf("nullish value %#v must be empty", value)
		}
		if !predicate.IsPrimitive(value) {
			t.Fatalf("nullish value %#v must be primitive", value)
		}
	})
}
