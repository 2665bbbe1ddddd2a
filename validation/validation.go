// Package validation provides composable validation rules that report
// failures as kernel domain errors. Rules are the natural validate
// hooks for value objects.
package validation

import (
	stderrors "errors"
	"fmt"
	"regexp"

	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/predicate"
)

// Rule validates a value, returning nil when it passes.
type Rule[T any] func(T) error

// And combines rules; the first failure wins.
func And[T any](rules ...Rule[T]) Rule[T] {
	return func(v T) error {
		for _, rule := range rules {
			if err := rule(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Or passes when at least one rule passes, otherwise reports the last
// failure.
func Or[T any](rules ...Rule[T]) Rule[T] {
	return func(v T) error {
		var lastErr error
		for _, rule := range rules {
			err := rule(v)
			if err == nil {
				return nil
			}
			lastErr = err
		}
		return lastErr
	}
}

// Not inverts a rule, failing with the given message when it passes.
func Not[T any](rule Rule[T], message string) Rule[T] {
	return func(v T) error {
		if err := rule(v); err == nil {
			return errors.ArgumentInvalid(message)
		}
		return nil
	}
}

// All runs every rule and joins the failures, for callers that want
// the full picture instead of the first violation.
func All[T any](value T, rules ...Rule[T]) error {
	failures := make([]error, 0, len(rules))
	for _, rule := range rules {
		if err := rule(value); err != nil {
			failures = append(failures, err)
		}
	}
	return stderrors.Join(failures...)
}

// Required fails with the empty-argument code when the value is empty
// per the kernel emptiness rule.
func Required[T any]() Rule[T] {
	return func(v T) error {
		if predicate.IsEmpty(v) {
			return errors.ArgumentNotProvided("value is required")
		}
		return nil
	}
}

// MinLength checks minimum string length.
func MinLength(min int) Rule[string] {
	return func(s string) error {
		if len(s) < min {
			return errors.New(errors.CodeArgumentOutOfRange,
				fmt.Sprintf("must be at least %d characters", min)).
				WithMetadata("min", min)
		}
		return nil
	}
}

// MaxLength checks maximum string length.
func MaxLength(max int) Rule[string] {
	return func(s string) error {
		if len(s) > max {
			return errors.New(errors.CodeArgumentOutOfRange,
				fmt.Sprintf("must be at most %d characters", max)).
				WithMetadata("max", max)
		}
		return nil
	}
}

// Matches fails unless the value matches pattern; description names the
// expected shape in the failure message.
func Matches(pattern *regexp.Regexp, description string) Rule[string] {
	return func(s string) error {
		if !pattern.MatchString(s) {
			return errors.ArgumentInvalid(description)
		}
		return nil
	}
}

// OneOf checks the value is one of the allowed values.
func OneOf[T comparable](allowed ...T) Rule[T] {
	return func(v T) error {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return errors.ArgumentInvalid(fmt.Sprintf("%v is not an allowed value", v))
	}
}

// Min checks a minimum numeric value.
func Min[T ~int | ~int64 | ~float64](min T) Rule[T] {
	return func(v T) error {
		if v < min {
			return errors.New(errors.CodeArgumentOutOfRange,
				fmt.Sprintf("must be at least %v", min)).
				WithMetadata("min", min)
		}
		return nil
	}
}

// Max checks a maximum numeric value.
func Max[T ~int | ~int64 | ~float64](max T) Rule[T] {
	return func(v T) error {
		if v > max {
			return errors.New(errors.CodeArgumentOutOfRange,
				fmt.Sprintf("must be at most %v", max)).
				WithMetadata("max", max)
		}
		return nil
	}
}

// InRange checks the value is within [min, max].
func InRange[T ~int | ~int64 | ~float64](min, max T) Rule[T] {
	return func(v T) error {
		if v < min || v > max {
			return errors.ArgumentOutOfRange(
				fmt.Sprintf("must be between %v and %v", min, max), min, max)
		}
		return nil
	}
}

// MinSize checks minimum collection size.
func MinSize[T any](min int) Rule[[]T] {
	return func(s []T) error {
		if len(s) < min {
			return errors.New(errors.CodeArgumentOutOfRange,
				fmt.Sprintf("must have at least %d elements", min)).
				WithMetadata("min", min)
		}
		return nil
	}
}

// MaxSize checks maximum collection size.
func MaxSize[T any](max int) Rule[[]T] {
	return func(s []T) error {
		if len(s) > max {
			return errors.New(errors.CodeArgumentOutOfRange,
				fmt.Sprintf("must have at most %d elements", max)).
				WithMetadata("max", max)
		}
		return nil
	}
}

// UniqueElements checks all elements are distinct.
func UniqueElements[T comparable]() Rule[[]T] {
	return func(s []T) error {
		seen := make(map[T]bool, len(s))
		for _, v := range s {
			if seen[v] {
				return errors.ArgumentInvalid(fmt.Sprintf("duplicate element: %v", v))
			}
			seen[v] = true
		}
		return nil
	}
}

// Custom builds a rule from a predicate.
func Custom[T any](check func(T) bool, message string) Rule[T] {
	return func(v T) error {
		if !check(v) {
			return errors.ArgumentInvalid(message)
		}
		return nil
	}
}
