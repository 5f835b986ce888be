package hook

import "reflect"

// Identical reports whether two values are the same by reference or
// primitive identity. This is the engine's change-detection equality: a
// write only counts as a change when Identical(old, new) is false.
//
// Rules, in order:
//   - two nils are identical; nil and non-nil are not
//   - values of different dynamic types are never identical
//   - slices are identical when they share a backing array and length
//   - maps, funcs, channels, pointers compare by address
//   - comparable values (numbers, strings, bools, comparable structs)
//     compare with ==
//   - non-comparable values that are not references (e.g. structs with
//     slice fields) are never identical
//
// Deep equality is deliberately NOT used: a freshly built slice equal in
// content to the stored one is a change.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}

	switch ta.Kind() {
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	default:
		if !ta.Comparable() {
			return false
		}
		return a == b
	}
}

// DepsChanged reports whether an effect's dependency list changed relative
// to the stored list. A nil next list means no list was supplied and is
// always treated as changed. Otherwise the lists differ when their lengths
// differ or any element at the same position fails Identical.
func DepsChanged(stored, next []any) bool {
	if next == nil {
		return true
	}
	if len(stored) != len(next) {
		return true
	}
	for i := range next {
		if !Identical(stored[i], next[i]) {
			return true
		}
	}
	return false
}
