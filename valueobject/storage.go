package valueobject

import "reflect"

// storageKind tags how the carrier stores its value. The branch is
// decided once at construction and never re-evaluated.
type storageKind uint8

const (
	kindUnset storageKind = iota
	kindPrimitive
	kindStructured
)

// copyShared returns value with top-level maps and slices copied, so
// neither the caller nor the carrier can mutate the other's view.
// Deeper levels are shared; immutability there is by convention.
func copyShared[T any](value T) T {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return value
		}
		cp := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			cp.SetMapIndex(iter.Key(), iter.Value())
		}
		return cp.Interface().(T)
	case reflect.Slice:
		if rv.IsNil() {
			return value
		}
		cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(cp, rv)
		return cp.Interface().(T)
	}
	return value
}
