// Package predicate provides pure classification helpers over arbitrary values.
// All functions are total: they never panic and have no side effects.
package predicate

import (
	"reflect"
	"time"
)

// noneChecker is the structural shape of an optional value in its absent
// state. functional.Option satisfies it without predicate importing it.
type noneChecker interface {
	IsNone() bool
}

// IsNullish reports whether value represents absence: the nil interface,
// a nil value of a nil-able kind, an optional in its None state, or the
// literal string "undefined" (tolerance for stringified payloads).
func IsNullish(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String() == "undefined"
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return true
		}
	}
	if opt, ok := value.(noneChecker); ok && opt.IsNone() {
		return true
	}
	return false
}

// IsEmpty reports whether value is empty:
//
//   - nullish values are empty;
//   - numbers and booleans are never empty;
//   - time.Time is never empty, including the zero instant;
//   - the empty string is empty;
//   - a map with zero entries is empty (entry values are not inspected);
//   - a struct with zero fields is empty (field values are not inspected);
//   - a slice or array is empty when it has zero elements or every element
//     is itself empty;
//   - non-nil pointers are classified by their pointee;
//   - everything else is non-empty.
func IsEmpty(value any) bool {
	if IsNullish(value) {
		return true
	}
	if _, ok := value.(time.Time); ok {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Ptr:
		return IsEmpty(rv.Elem().Interface())
	case reflect.Map:
		return rv.Len() == 0
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return true
		}
		for i := 0; i < rv.Len(); i++ {
			if !IsEmpty(rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	case reflect.Struct:
		return rv.NumField() == 0
	}
	return false
}

// IsPrimitive reports whether value is a primitive: a string, boolean,
// number, time.Time, or an absent value per IsNullish. Maps, slices,
// arrays, non-time structs, channels, functions and non-nil pointers
// are not primitive.
func IsPrimitive(value any) bool {
	if IsNullish(value) {
		return true
	}
	if _, ok := value.(time.Time); ok {
		return true
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
