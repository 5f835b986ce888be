package snapshot

import (
	"reflect"
	"time"
)

// Clone deep-copies a value over a closed set of cases:
//
//   - ordered sequences (any slice type) are cloned element by element
//   - key-value mappings (any map type) are cloned entry by entry; set-like
//     maps (map[T]struct{}) fall out of this case
//   - *time.Time clones the pointee; time.Time values pass through (they
//     are already value-copied)
//   - primitives pass through unchanged
//   - everything else (structs, funcs, channels, other pointers) is copied
//     by reference
//
// The last case is an intentional limitation, not an oversight: hook
// values may hold opaque references the engine has no business cloning.
func Clone(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		return x
	case *time.Time:
		if x == nil {
			return x
		}
		t := *x
		return &t
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			setCloned(out.Index(i), rv.Index(i))
		}
		return out.Interface()

	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			ev := reflect.New(rv.Type().Elem()).Elem()
			setCloned(ev, iter.Value())
			out.SetMapIndex(iter.Key(), ev)
		}
		return out.Interface()

	default:
		return v
	}
}

// setCloned assigns the clone of src into dst, preserving dst's static
// type. Nil interface elements stay zero.
func setCloned(dst, src reflect.Value) {
	if src.Kind() == reflect.Interface && src.IsNil() {
		return
	}
	c := Clone(src.Interface())
	if c == nil {
		return
	}
	dst.Set(reflect.ValueOf(c))
}

// cloneDeps copies an effect dependency list, preserving nil (which the
// engine reads as "no list supplied").
func cloneDeps(deps []any) []any {
	if deps == nil {
		return nil
	}
	out := make([]any, len(deps))
	for i, d := range deps {
		out[i] = Clone(d)
	}
	return out
}
